package model

import (
	"time"

	"github.com/dbk/assets-ms-go/internal/db"
)

// Owner kinds an asset can be attached to.
const (
	OwnerTypeProduct    = "product"
	OwnerTypeHome       = "home"
	OwnerTypeCollection = "collection"
)

// Asset is one stored file plus its public identity. The record is never
// updated after creation: replacing an owner's asset creates a new row and
// deletes the old one.
type Asset struct {
	ID        db.UUID   `json:"id"`
	URL       string    `json:"url"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	MimeType  *string   `json:"mime_type"`
	OwnerType string    `json:"owner_type"`
	OwnerID   string    `json:"owner_id"`
	Banner    *Banner   `json:"banner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Banner carries the collection-banner business fields. Nil for assets that
// are not store banners.
type Banner struct {
	Alt      *string    `json:"alt"`
	Priority int        `json:"priority"`
	IsActive bool       `json:"is_active"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

// Owner identifies a single logical attachment point, e.g. one product's
// video slot.
type Owner struct {
	Type string
	ID   string
}

func (o Owner) String() string {
	return o.Type + "/" + o.ID
}

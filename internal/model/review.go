package model

import (
	"time"

	"github.com/dbk/assets-ms-go/internal/db"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// IsValidReviewStatus reports whether s is one of the three known statuses.
func IsValidReviewStatus(s ReviewStatus) bool {
	return s == ReviewStatusPending || s == ReviewStatusApproved || s == ReviewStatusRejected
}

type Review struct {
	ID         db.UUID      `json:"id"`
	Title      *string      `json:"title"`
	Content    string       `json:"content"`
	Rating     int          `json:"rating"`
	ProductID  string       `json:"product_id"`
	CustomerID *string      `json:"customer_id"`
	FirstName  string       `json:"first_name"`
	LastName   string       `json:"last_name"`
	Status     ReviewStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

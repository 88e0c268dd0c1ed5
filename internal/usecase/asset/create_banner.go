package asset

import (
	"context"
	"fmt"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	"github.com/dbk/assets-ms-go/internal/workflow"
)

type bannerCreatorSrv struct {
	repo  port.BannerRepository
	strg  port.BlobStore
	newID port.UUIDGen
}

// compile-time check: *bannerCreatorSrv must satisfy port.BannerCreator
var _ port.BannerCreator = (*bannerCreatorSrv)(nil)

// NewBannerCreator constructs a BannerCreator implementation.
func NewBannerCreator(repo port.BannerRepository, strg port.BlobStore, newID port.UUIDGen) port.BannerCreator {
	return &bannerCreatorSrv{repo: repo, strg: strg, newID: newID}
}

// CreateBanner uploads the image and creates the banner record as a
// compensable workflow: a record failure deletes the just-written blob, so
// the record+blob pairing never ends up half-made. Collection banners are
// many-per-collection and carry no owner link.
func (s *bannerCreatorSrv) CreateBanner(ctx context.Context, in port.CreateBannerInput) (*model.Asset, error) {
	if in.CollectionHandle == "" {
		return nil, fmt.Errorf("%w: collection_handle is required", ErrValidation)
	}
	if in.Content == nil || in.Size <= 0 {
		return nil, fmt.Errorf("%w: empty content", ErrValidation)
	}

	id := s.newID()
	owner := model.Owner{Type: model.OwnerTypeCollection, ID: in.CollectionHandle}
	filePath := derivePath(owner, id, in.FileName, in.MimeType)

	banner := in.Banner
	newAsset := &model.Asset{
		ID:        id,
		URL:       s.strg.PublicURL(filePath),
		FileName:  in.FileName,
		FilePath:  filePath,
		MimeType:  in.MimeType,
		OwnerType: owner.Type,
		OwnerID:   owner.ID,
		Banner:    &banner,
	}

	steps := []workflow.Step{
		{
			Name: "upload-banner-blob",
			Forward: func(ctx context.Context) (any, any, error) {
				opts := map[string]string{}
				if in.MimeType != nil {
					opts["Content-Type"] = *in.MimeType
				}
				if err := s.strg.SaveFile(ctx, filePath, in.Content, in.Size, opts); err != nil {
					return nil, nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
				}
				return nil, filePath, nil
			},
			Compensate: func(ctx context.Context, compInput any) error {
				return s.strg.RemoveFile(ctx, compInput.(string))
			},
		},
		{
			Name: "create-banner-record",
			Forward: func(ctx context.Context) (any, any, error) {
				if err := s.repo.Create(ctx, newAsset); err != nil {
					return nil, nil, fmt.Errorf("%w: %v", ErrRecordFailed, err)
				}
				return newAsset, newAsset.ID, nil
			},
			Compensate: func(ctx context.Context, compInput any) error {
				return s.repo.Delete(ctx, compInput.(db.UUID))
			},
		},
	}

	if _, err := workflow.Run(ctx, steps); err != nil {
		return nil, err
	}
	return newAsset, nil
}

package review

import (
	"context"
	"fmt"
	"log"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	"github.com/dbk/assets-ms-go/internal/validation"
	"github.com/dbk/assets-ms-go/internal/workflow"
)

type creatorSrv struct {
	repo  port.ReviewRepository
	cache port.Cache
	newID port.UUIDGen
}

// compile-time check: *creatorSrv must satisfy port.ReviewCreator
var _ port.ReviewCreator = (*creatorSrv)(nil)

// NewReviewCreator constructs a ReviewCreator implementation.
func NewReviewCreator(repo port.ReviewRepository, cache port.Cache, newID port.UUIDGen) port.ReviewCreator {
	return &creatorSrv{repo: repo, cache: cache, newID: newID}
}

// CreateReview persists a new review as a compensable workflow step: the
// forward action creates the record and captures its id, the compensation
// deletes by that id. No partial review is ever visible to the caller.
func (s *creatorSrv) CreateReview(ctx context.Context, in port.CreateReviewInput) (*model.Review, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	status := model.ReviewStatusPending
	if in.Privileged && model.IsValidReviewStatus(in.Status) {
		status = in.Status
	}

	rev := &model.Review{
		ID:         s.newID(),
		Title:      in.Title,
		Content:    in.Content,
		Rating:     in.Rating,
		ProductID:  in.ProductID,
		CustomerID: in.CustomerID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Status:     status,
	}

	steps := []workflow.Step{
		{
			Name: "create-review",
			Forward: func(ctx context.Context) (any, any, error) {
				if err := s.repo.Create(ctx, rev); err != nil {
					return nil, nil, err
				}
				return rev, rev.ID, nil
			},
			Compensate: func(ctx context.Context, compInput any) error {
				return s.repo.Delete(ctx, compInput.(db.UUID))
			},
		},
	}
	if _, err := workflow.Run(ctx, steps); err != nil {
		return nil, err
	}

	if err := s.cache.DeleteProductRating(ctx, rev.ProductID); err != nil {
		log.Printf("failed invalidating rating cache for product %q: %v", rev.ProductID, err)
	}

	return rev, nil
}

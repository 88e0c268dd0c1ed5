package review

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	"github.com/dbk/assets-ms-go/internal/workflow"
)

type bulkUpdaterSrv struct {
	repo  port.ReviewRepository
	cache port.Cache
}

// compile-time check: *bulkUpdaterSrv must satisfy port.ReviewBulkUpdater
var _ port.ReviewBulkUpdater = (*bulkUpdaterSrv)(nil)

// NewReviewBulkUpdater constructs a ReviewBulkUpdater implementation.
func NewReviewBulkUpdater(repo port.ReviewRepository, cache port.Cache) port.ReviewBulkUpdater {
	return &bulkUpdaterSrv{repo: repo, cache: cache}
}

// statusPrior is the compensation input of the update step: the exact
// status each touched review held before the bulk update.
type statusPrior struct {
	ID     db.UUID
	Status model.ReviewStatus
}

// BulkUpdateStatus applies one status to many reviews as a single
// compensable step. The forward action captures every prior {id, status}
// pair before writing; any mid-apply failure restores the already-touched
// reviews to their captured priors, so the caller observes all-or-nothing.
// Ids that no longer exist are reported in the output, never fatal.
func (s *bulkUpdaterSrv) BulkUpdateStatus(ctx context.Context, in port.BulkUpdateStatusInput) (*port.BulkUpdateStatusOutput, error) {
	if len(in.IDs) == 0 {
		return nil, fmt.Errorf("%w: ids are required", ErrValidation)
	}
	if !model.IsValidReviewStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}

	var out *port.BulkUpdateStatusOutput
	steps := []workflow.Step{
		{
			Name: "update-reviews-status",
			Forward: func(ctx context.Context) (any, any, error) {
				existing, err := s.repo.ListByIDs(ctx, in.IDs)
				if err != nil {
					return nil, nil, err
				}

				found := make(map[db.UUID]*model.Review, len(existing))
				priors := make([]statusPrior, 0, len(existing))
				for _, rev := range existing {
					found[rev.ID] = rev
					priors = append(priors, statusPrior{ID: rev.ID, Status: rev.Status})
				}

				var notFound []db.UUID
				for _, id := range in.IDs {
					if _, ok := found[id]; !ok {
						notFound = append(notFound, id)
					}
				}

				for i, rev := range existing {
					if err := s.repo.UpdateStatus(ctx, rev.ID, in.Status); err != nil {
						// Partial results must not survive a failed forward.
						s.restorePriors(ctx, priors[:i])
						return nil, nil, err
					}
					rev.Status = in.Status
				}

				out = &port.BulkUpdateStatusOutput{Reviews: existing, NotFound: notFound}
				return out, priors, nil
			},
			Compensate: func(ctx context.Context, compInput any) error {
				s.restorePriors(ctx, compInput.([]statusPrior))
				return nil
			},
		},
	}
	if _, err := workflow.Run(ctx, steps); err != nil {
		return nil, err
	}

	for _, productID := range touchedProducts(out.Reviews) {
		if err := s.cache.DeleteProductRating(ctx, productID); err != nil {
			log.Printf("failed invalidating rating cache for product %q: %v", productID, err)
		}
	}

	return out, nil
}

// restorePriors re-applies captured statuses. Reviews deleted in the
// meantime are skipped; other failures are logged and the sweep continues.
func (s *bulkUpdaterSrv) restorePriors(ctx context.Context, priors []statusPrior) {
	for i := len(priors) - 1; i >= 0; i-- {
		p := priors[i]
		if err := s.repo.UpdateStatus(ctx, p.ID, p.Status); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			log.Printf("failed restoring review #%s to status %q: %v", p.ID, p.Status, err)
		}
	}
}

func touchedProducts(reviews []*model.Review) []string {
	seen := make(map[string]bool, len(reviews))
	var out []string
	for _, rev := range reviews {
		if !seen[rev.ProductID] {
			seen[rev.ProductID] = true
			out = append(out, rev.ProductID)
		}
	}
	return out
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	reviewService "github.com/dbk/assets-ms-go/internal/usecase/review"
)

type ReviewRepository struct {
	mu      sync.RWMutex
	reviews map[db.UUID]*model.Review
}

// compile-time check: *ReviewRepository must satisfy port.ReviewRepository
var _ port.ReviewRepository = (*ReviewRepository)(nil)

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{reviews: make(map[db.UUID]*model.Review)}
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *review
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.reviews[cp.ID] = &cp
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id db.UUID) (*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, reviewService.ErrNotFound
	}
	cp := *review
	return &cp, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id db.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.reviews, id)
	return nil
}

func (r *ReviewRepository) ListByIDs(ctx context.Context, ids []db.UUID) ([]*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Review, 0, len(ids))
	for _, id := range ids {
		if review, ok := r.reviews[id]; ok {
			cp := *review
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string, approvedOnly bool) ([]*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.Review
	for _, review := range r.reviews {
		if review.ProductID != productID {
			continue
		}
		if approvedOnly && review.Status != model.ReviewStatusApproved {
			continue
		}
		cp := *review
		out = append(out, &cp)
	}
	return out, nil
}

func (r *ReviewRepository) UpdateStatus(ctx context.Context, id db.UUID, status model.ReviewStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review, ok := r.reviews[id]
	if !ok {
		return reviewService.ErrNotFound
	}
	review.Status = status
	review.UpdatedAt = time.Now()
	return nil
}

func (r *ReviewRepository) AverageRating(ctx context.Context, productID string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum, count int
	for _, review := range r.reviews {
		if review.ProductID == productID && review.Status == model.ReviewStatusApproved {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

package review

import (
	"context"
	"time"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
)

type statusChange struct {
	ID     db.UUID
	Status model.ReviewStatus
}

type mockRepo struct {
	reviews map[db.UUID]*model.Review

	createErr error
	getErr    error
	deleteErr error
	listErr   error
	avgOut    float64
	avgErr    error

	// updateErrOn fails UpdateStatus for one specific review, letting tests
	// simulate a partial bulk failure.
	updateErrOn map[db.UUID]error

	created    []*model.Review
	deletedIDs []db.UUID
	updates    []statusChange
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		reviews:     make(map[db.UUID]*model.Review),
		updateErrOn: make(map[db.UUID]error),
	}
}

func (m *mockRepo) Create(ctx context.Context, rev *model.Review) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, rev)
	m.reviews[rev.ID] = rev
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id db.UUID) (*model.Review, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	rev, ok := m.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rev, nil
}

func (m *mockRepo) Delete(ctx context.Context, id db.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, id)
	delete(m.reviews, id)
	return nil
}

func (m *mockRepo) ListByIDs(ctx context.Context, ids []db.UUID) ([]*model.Review, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*model.Review, 0, len(ids))
	for _, id := range ids {
		if rev, ok := m.reviews[id]; ok {
			cp := *rev
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByProduct(ctx context.Context, productID string, approvedOnly bool) ([]*model.Review, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*model.Review
	for _, rev := range m.reviews {
		if rev.ProductID != productID {
			continue
		}
		if approvedOnly && rev.Status != model.ReviewStatusApproved {
			continue
		}
		out = append(out, rev)
	}
	return out, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id db.UUID, status model.ReviewStatus) error {
	if err, ok := m.updateErrOn[id]; ok {
		return err
	}
	rev, ok := m.reviews[id]
	if !ok {
		return ErrNotFound
	}
	m.updates = append(m.updates, statusChange{ID: id, Status: status})
	rev.Status = status
	return nil
}

func (m *mockRepo) AverageRating(ctx context.Context, productID string) (float64, error) {
	if m.avgErr != nil {
		return 0, m.avgErr
	}
	return m.avgOut, nil
}

type mockCache struct {
	deleteErr error

	deletedProducts []string
}

func (m *mockCache) GetProductRating(ctx context.Context, productID string) ([]byte, error) {
	return nil, nil
}
func (m *mockCache) GetEtagProductRating(ctx context.Context, productID string) (string, error) {
	return "", nil
}
func (m *mockCache) SetProductRating(ctx context.Context, productID string, data []byte, validUntil time.Time) {
}
func (m *mockCache) SetEtagProductRating(ctx context.Context, productID string, etag string, validUntil time.Time) {
}
func (m *mockCache) DeleteProductRating(ctx context.Context, productID string) error {
	m.deletedProducts = append(m.deletedProducts, productID)
	return m.deleteErr
}

package review

import (
	"context"
	"errors"
	"testing"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
)

func validInput() port.CreateReviewInput {
	return port.CreateReviewInput{
		Content:   "Great product, sturdy build.",
		Rating:    4,
		ProductID: "P1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestCreateReview_Success(t *testing.T) {
	repo := newMockRepo()
	cache := &mockCache{}
	svc := NewReviewCreator(repo, cache, db.NewUUID)

	got, err := svc.CreateReview(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.ReviewStatusPending {
		t.Errorf("status = %q; want pending", got.Status)
	}
	if len(repo.created) != 1 {
		t.Fatal("expected one created review")
	}
	if len(cache.deletedProducts) != 1 || cache.deletedProducts[0] != "P1" {
		t.Errorf("rating cache for P1 should be invalidated, got %v", cache.deletedProducts)
	}
}

func TestCreateReview_RatingBounds(t *testing.T) {
	svc := NewReviewCreator(newMockRepo(), &mockCache{}, db.NewUUID)
	ctx := context.Background()

	for _, rating := range []int{1, 5} {
		in := validInput()
		in.Rating = rating
		if _, err := svc.CreateReview(ctx, in); err != nil {
			t.Errorf("rating %d should be accepted, got %v", rating, err)
		}
	}
	for _, rating := range []int{0, -1, 6, 42} {
		in := validInput()
		in.Rating = rating
		if _, err := svc.CreateReview(ctx, in); !errors.Is(err, ErrValidation) {
			t.Errorf("rating %d should be rejected with ErrValidation, got %v", rating, err)
		}
	}
}

func TestCreateReview_MissingFieldsRejected(t *testing.T) {
	svc := NewReviewCreator(newMockRepo(), &mockCache{}, db.NewUUID)
	ctx := context.Background()

	in := validInput()
	in.Content = ""
	if _, err := svc.CreateReview(ctx, in); !errors.Is(err, ErrValidation) {
		t.Errorf("empty content should be rejected, got %v", err)
	}

	in = validInput()
	in.ProductID = ""
	if _, err := svc.CreateReview(ctx, in); !errors.Is(err, ErrValidation) {
		t.Errorf("missing product_id should be rejected, got %v", err)
	}
}

func TestCreateReview_StatusRequiresPrivilege(t *testing.T) {
	svc := NewReviewCreator(newMockRepo(), &mockCache{}, db.NewUUID)
	ctx := context.Background()

	in := validInput()
	in.Status = model.ReviewStatusApproved
	got, err := svc.CreateReview(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.ReviewStatusPending {
		t.Errorf("unprivileged caller must get pending, got %q", got.Status)
	}

	in.Privileged = true
	got, err = svc.CreateReview(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.ReviewStatusApproved {
		t.Errorf("privileged caller should keep approved, got %q", got.Status)
	}
}

func TestCreateReview_RepoFailureSurfaces(t *testing.T) {
	repo := newMockRepo()
	repo.createErr = errors.New("db down")
	cache := &mockCache{}
	svc := NewReviewCreator(repo, cache, db.NewUUID)

	if _, err := svc.CreateReview(context.Background(), validInput()); err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(cache.deletedProducts) != 0 {
		t.Error("cache must not be invalidated for a failed create")
	}
}

func TestCreateReview_CacheFailureIsNonFatal(t *testing.T) {
	repo := newMockRepo()
	cache := &mockCache{deleteErr: errors.New("redis down")}
	svc := NewReviewCreator(repo, cache, db.NewUUID)

	if _, err := svc.CreateReview(context.Background(), validInput()); err != nil {
		t.Fatalf("cache invalidation is best-effort, got %v", err)
	}
}

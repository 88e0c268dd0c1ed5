package review

import (
	"context"
	"errors"
	"testing"
)

func TestGetProductRating_Success(t *testing.T) {
	repo := newMockRepo()
	repo.avgOut = 4.3333333
	svc := NewRatingGetter(repo)

	out, err := svc.GetProductRating(context.Background(), "P1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ProductID != "P1" {
		t.Errorf("expected product id 'P1', got %q", out.ProductID)
	}
	if out.AverageRating != 4.33 {
		t.Errorf("expected average rounded to 4.33, got %v", out.AverageRating)
	}
}

func TestGetProductRating_NoReviews(t *testing.T) {
	svc := NewRatingGetter(newMockRepo())

	out, err := svc.GetProductRating(context.Background(), "P1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AverageRating != 0 {
		t.Errorf("expected 0 for a product without reviews, got %v", out.AverageRating)
	}
}

func TestGetProductRating_EmptyProductID(t *testing.T) {
	svc := NewRatingGetter(newMockRepo())

	if _, err := svc.GetProductRating(context.Background(), ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestGetProductRating_RepoError(t *testing.T) {
	repo := newMockRepo()
	repo.avgErr = errors.New("db down")
	svc := NewRatingGetter(repo)

	if _, err := svc.GetProductRating(context.Background(), "P1"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	reviewService "github.com/dbk/assets-ms-go/internal/usecase/review"
)

type ReviewRepository struct {
	db *sql.DB
}

// compile-time check: *ReviewRepository must satisfy port.ReviewRepository
var _ port.ReviewRepository = (*ReviewRepository)(nil)

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `id, title, content, rating, product_id, customer_id, first_name, last_name, status, created_at, updated_at`

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	log.Printf("creating database record for review #%s, at status %q...", review.ID, review.Status)

	const query = `
      INSERT INTO reviews
        (id, title, content, rating, product_id, customer_id, first_name, last_name, status)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		review.ID, review.Title, review.Content, review.Rating,
		review.ProductID, review.CustomerID,
		review.FirstName, review.LastName, review.Status,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id db.UUID) (*model.Review, error) {
	log.Printf("fetching review #%s from the database...", id)

	const query = `
      SELECT ` + reviewColumns + `
      FROM reviews
      WHERE id = ?
    `
	review, err := scanReview(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reviewService.ErrNotFound
		}
		return nil, err
	}

	return review, nil
}

// Delete removes a review record. Unknown ids are a no-op success.
func (r *ReviewRepository) Delete(ctx context.Context, id db.UUID) error {
	log.Printf("deleting database record for review #%s...", id)

	const query = `DELETE FROM reviews WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// ListByIDs returns the reviews that exist among ids, in query order.
// Missing ids are simply absent from the result.
func (r *ReviewRepository) ListByIDs(ctx context.Context, ids []db.UUID) ([]*model.Review, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
      SELECT ` + reviewColumns + `
      FROM reviews
      WHERE id IN (` + placeholders(len(ids)) + `)
    `
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	byID := make(map[db.UUID]*model.Review, len(ids))
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		byID[review.ID] = review
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]*model.Review, 0, len(byID))
	for _, id := range ids {
		if review, ok := byID[id]; ok {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string, approvedOnly bool) ([]*model.Review, error) {
	query := `
      SELECT ` + reviewColumns + `
      FROM reviews
      WHERE product_id = ?
    `
	args := []any{productID}
	if approvedOnly {
		query += ` AND status = ?`
		args = append(args, model.ReviewStatusApproved)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, review)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReviewRepository) UpdateStatus(ctx context.Context, id db.UUID, status model.ReviewStatus) error {
	log.Printf("updating review #%s to status %q...", id, status)

	const query = `UPDATE reviews SET status = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either the review vanished or it already holds this status;
		// disambiguate so compensations can skip deleted reviews.
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM reviews WHERE id = ?`, id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return reviewService.ErrNotFound
			}
			return err
		}
	}
	return nil
}

// AverageRating averages approved ratings for a product. A product with no
// approved reviews averages 0.
func (r *ReviewRepository) AverageRating(ctx context.Context, productID string) (float64, error) {
	const query = `
      SELECT COALESCE(AVG(rating), 0)
      FROM reviews
      WHERE product_id = ? AND status = ?
    `
	var avg float64
	if err := r.db.QueryRowContext(ctx, query, productID, model.ReviewStatusApproved).Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

func scanReview(row rowScanner) (*model.Review, error) {
	var review model.Review
	if err := row.Scan(
		&review.ID, &review.Title, &review.Content, &review.Rating,
		&review.ProductID, &review.CustomerID,
		&review.FirstName, &review.LastName, &review.Status,
		&review.CreatedAt, &review.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &review, nil
}

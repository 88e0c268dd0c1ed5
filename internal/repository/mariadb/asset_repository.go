package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	assetService "github.com/dbk/assets-ms-go/internal/usecase/asset"
)

type AssetRepository struct {
	db *sql.DB
}

// compile-time check: *AssetRepository must satisfy port.BannerRepository
var _ port.BannerRepository = (*AssetRepository)(nil)

func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

const assetColumns = `id, url, file_name, file_path, mime_type, owner_type, owner_id, banner_alt, banner_priority, banner_is_active, banner_starts_at, banner_ends_at, created_at, updated_at`

func (r *AssetRepository) Create(ctx context.Context, asset *model.Asset) error {
	log.Printf("creating database record for asset #%s, owned by %q...", asset.ID, asset.OwnerType+"/"+asset.OwnerID)

	const query = `
      INSERT INTO assets
        (id, url, file_name, file_path, mime_type, owner_type, owner_id, banner_alt, banner_priority, banner_is_active, banner_starts_at, banner_ends_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	var (
		alt      *string
		priority int
		isActive bool
		startsAt *time.Time
		endsAt   *time.Time
	)
	if asset.Banner != nil {
		alt = asset.Banner.Alt
		priority = asset.Banner.Priority
		isActive = asset.Banner.IsActive
		startsAt = asset.Banner.StartsAt
		endsAt = asset.Banner.EndsAt
	}
	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.URL, asset.FileName, asset.FilePath,
		asset.MimeType, asset.OwnerType, asset.OwnerID,
		alt, priority, isActive, startsAt, endsAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id db.UUID) (*model.Asset, error) {
	log.Printf("fetching asset #%s from the database...", id)

	const query = `
      SELECT ` + assetColumns + `
      FROM assets
      WHERE id = ?
    `
	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, assetService.ErrNotFound
		}
		return nil, err
	}

	return asset, nil
}

// Delete removes an asset record. Deleting an id that no longer exists is a
// no-op success, so compensations and sweeps stay idempotent.
func (r *AssetRepository) Delete(ctx context.Context, id db.UUID) error {
	log.Printf("deleting database record for asset #%s...", id)

	const query = `DELETE FROM assets WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *AssetRepository) ListByOwner(ctx context.Context, owner model.Owner) ([]*model.Asset, error) {
	const query = `
      SELECT ` + assetColumns + `
      FROM assets
      WHERE owner_type = ? AND owner_id = ?
      ORDER BY created_at DESC
    `
	rows, err := r.db.QueryContext(ctx, query, owner.Type, owner.ID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectAssets(rows)
}

// ListUnlinkedCreatedBefore finds asset records no owner link points at,
// created before the cutoff. These are the orphans a sweep may reclaim.
func (r *AssetRepository) ListUnlinkedCreatedBefore(ctx context.Context, before time.Time) ([]*model.Asset, error) {
	const query = `
      SELECT ` + assetColumns + `
      FROM assets a
      LEFT JOIN asset_links l ON l.asset_id = a.id
      WHERE l.asset_id IS NULL
        AND a.owner_type != ?
        AND a.created_at < ?
    `
	rows, err := r.db.QueryContext(ctx, query, model.OwnerTypeCollection, before)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectAssets(rows)
}

func (r *AssetRepository) ListBanners(ctx context.Context, filter port.BannerFilter) ([]*model.Asset, error) {
	query := `
      SELECT ` + assetColumns + `
      FROM assets
      WHERE owner_type = ?
    `
	args := []any{model.OwnerTypeCollection}
	if filter.CollectionHandle != "" {
		query += ` AND owner_id = ?`
		args = append(args, filter.CollectionHandle)
	}
	if filter.OnlyActive {
		query += `
      AND banner_is_active = TRUE
      AND (banner_starts_at IS NULL OR banner_starts_at <= NOW())
      AND (banner_ends_at IS NULL OR banner_ends_at >= NOW())
    `
	}
	query += ` ORDER BY banner_priority ASC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectAssets(rows)
}

// UpdateBanner rewrites the business fields of a banner row.
func (r *AssetRepository) UpdateBanner(ctx context.Context, id db.UUID, banner *model.Banner) error {
	log.Printf("updating banner fields for asset #%s...", id)

	const query = `
      UPDATE assets
      SET
        banner_alt       = ?,
        banner_priority  = ?,
        banner_is_active = ?,
        banner_starts_at = ?,
        banner_ends_at   = ?
      WHERE id = ?
    `
	res, err := r.db.ExecContext(ctx, query,
		banner.Alt, banner.Priority, banner.IsActive,
		banner.StartsAt, banner.EndsAt,
		id, // WHERE clause
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM assets WHERE id = ?`, id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return assetService.ErrNotFound
			}
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*model.Asset, error) {
	var (
		asset    model.Asset
		alt      sql.NullString
		priority sql.NullInt64
		isActive sql.NullBool
		startsAt sql.NullTime
		endsAt   sql.NullTime
	)
	if err := row.Scan(
		&asset.ID, &asset.URL, &asset.FileName, &asset.FilePath,
		&asset.MimeType, &asset.OwnerType, &asset.OwnerID,
		&alt, &priority, &isActive, &startsAt, &endsAt,
		&asset.CreatedAt, &asset.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if asset.OwnerType == model.OwnerTypeCollection {
		banner := &model.Banner{
			Priority: int(priority.Int64),
			IsActive: isActive.Bool,
		}
		if alt.Valid {
			banner.Alt = &alt.String
		}
		if startsAt.Valid {
			banner.StartsAt = &startsAt.Time
		}
		if endsAt.Valid {
			banner.EndsAt = &endsAt.Time
		}
		asset.Banner = banner
	}

	return &asset, nil
}

func collectAssets(rows *sql.Rows) ([]*model.Asset, error) {
	var out []*model.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

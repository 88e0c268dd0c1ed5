package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
)

type LinkStore struct {
	db *sql.DB
}

// compile-time check: *LinkStore must satisfy port.LinkStore
var _ port.LinkStore = (*LinkStore)(nil)

func NewLinkStore(db *sql.DB) *LinkStore {
	return &LinkStore{db: db}
}

func (s *LinkStore) Get(ctx context.Context, owner model.Owner) (*db.UUID, error) {
	const query = `SELECT asset_id FROM asset_links WHERE owner_type = ? AND owner_id = ?`

	var assetID db.UUID
	if err := s.db.QueryRowContext(ctx, query, owner.Type, owner.ID).Scan(&assetID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &assetID, nil
}

// Set points the owner's slot at assetID, or clears it when assetID is nil,
// and returns the id the slot held before. The row is locked for the whole
// swap, so concurrent Sets on one owner serialise and each previous id is
// handed out exactly once.
func (s *LinkStore) Set(ctx context.Context, owner model.Owner, assetID *db.UUID) (*db.UUID, error) {
	log.Printf("repointing link for owner %q...", owner)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var prev *db.UUID
	var current db.UUID
	err = tx.QueryRowContext(ctx,
		`SELECT asset_id FROM asset_links WHERE owner_type = ? AND owner_id = ? FOR UPDATE`,
		owner.Type, owner.ID,
	).Scan(&current)
	switch {
	case err == nil:
		prev = &current
	case errors.Is(err, sql.ErrNoRows):
		// empty slot
	default:
		return nil, err
	}

	if assetID == nil {
		if prev != nil {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM asset_links WHERE owner_type = ? AND owner_id = ?`,
				owner.Type, owner.ID,
			); err != nil {
				return nil, err
			}
		}
	} else {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO asset_links (owner_type, owner_id, asset_id)
             VALUES (?, ?, ?)
             ON DUPLICATE KEY UPDATE asset_id = VALUES(asset_id)`,
			owner.Type, owner.ID, *assetID,
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing link swap for owner %q: %w", owner, err)
	}
	return prev, nil
}

package asset

import (
	"context"
	"time"

	"github.com/dbk/assets-ms-go/internal/logger"
	"github.com/dbk/assets-ms-go/internal/port"
)

type orphanSweeperSrv struct {
	repo  port.AssetRepository
	strg  port.BlobStore
	grace time.Duration
}

// compile-time check: *orphanSweeperSrv must satisfy port.OrphanSweeper
var _ port.OrphanSweeper = (*orphanSweeperSrv)(nil)

// NewOrphanSweeper constructs an OrphanSweeper implementation.
func NewOrphanSweeper(repo port.AssetRepository, strg port.BlobStore, grace time.Duration) port.OrphanSweeper {
	return &orphanSweeperSrv{repo: repo, strg: strg, grace: grace}
}

// SweepOrphans reclaims single-slot assets that no owner link points to and
// that are older than the grace period. Such records are left behind by a
// cancelled replace or a failed link repoint; the grace period keeps the
// sweep from racing an in-flight replace.
func (s *orphanSweeperSrv) SweepOrphans(ctx context.Context) error {
	cutoff := time.Now().Add(-s.grace)
	orphans, err := s.repo.ListUnlinkedCreatedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if len(orphans) == 0 {
		logger.Info(ctx, "no orphaned assets to sweep")
		return nil
	}

	for _, orphan := range orphans {
		logger.Infof(ctx, "sweeping orphaned asset #%s (%s)", orphan.ID, orphan.FilePath)
		if err := s.strg.RemoveFile(ctx, orphan.FilePath); err != nil {
			logger.Warnf(ctx, "failed to remove orphan blob %q: %v", orphan.FilePath, err)
			continue
		}
		if err := s.repo.Delete(ctx, orphan.ID); err != nil {
			logger.Warnf(ctx, "failed to delete orphan record #%s: %v", orphan.ID, err)
		}
	}
	return nil
}

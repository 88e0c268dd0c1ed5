package asset

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
)

type replacerSrv struct {
	repo  port.AssetRepository
	links port.LinkStore
	strg  port.BlobStore
	newID port.UUIDGen
	locks *ownerLocks
}

// compile-time check: *replacerSrv must satisfy port.AssetReplacer
var _ port.AssetReplacer = (*replacerSrv)(nil)

// NewAssetReplacer constructs an AssetReplacer implementation.
func NewAssetReplacer(repo port.AssetRepository, links port.LinkStore, strg port.BlobStore, newID port.UUIDGen) port.AssetReplacer {
	return &replacerSrv{repo: repo, links: links, strg: strg, newID: newID, locks: newOwnerLocks()}
}

// ReplaceAsset swaps the asset attached to a single-slot owner.
//
// The ordering is load-bearing: the owner link is repointed before the old
// asset is touched, so the owner resolves to a valid asset at every
// observable instant. A window where old and new assets coexist is expected;
// a window where the link points at nothing is not. Failures before the
// repoint roll back; failures after it are logged and swallowed, because the
// repoint is already externally visible.
func (s *replacerSrv) ReplaceAsset(ctx context.Context, in port.ReplaceAssetInput) (*model.Asset, error) {
	if err := validateOwner(in.Owner); err != nil {
		return nil, err
	}
	if in.Content == nil || in.Size <= 0 {
		return nil, fmt.Errorf("%w: empty content", ErrValidation)
	}

	unlock := s.locks.lock(in.Owner)
	defer unlock()

	id := s.newID()
	filePath := derivePath(in.Owner, id, in.FileName, in.MimeType)

	opts := map[string]string{}
	if in.MimeType != nil {
		opts["Content-Type"] = *in.MimeType
	}
	if err := s.strg.SaveFile(ctx, filePath, in.Content, in.Size, opts); err != nil {
		// Owner state untouched, nothing to undo.
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	newAsset := &model.Asset{
		ID:        id,
		URL:       s.strg.PublicURL(filePath),
		FileName:  in.FileName,
		FilePath:  filePath,
		MimeType:  in.MimeType,
		OwnerType: in.Owner.Type,
		OwnerID:   in.Owner.ID,
	}
	if err := s.repo.Create(ctx, newAsset); err != nil {
		if rmErr := s.strg.RemoveFile(ctx, filePath); rmErr != nil {
			log.Printf("cleanup of blob %q after record failure failed: %v", filePath, rmErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrRecordFailed, err)
	}

	// The previous id returned here is the sole authority on what to delete;
	// a value read any earlier could belong to a competing replace.
	prevID, err := s.links.Set(ctx, in.Owner, &id)
	if err != nil {
		log.Printf("link repoint for owner %q failed, asset #%s is orphaned: %v", in.Owner, id, err)
		return nil, fmt.Errorf("%w: %v", ErrLinkFailed, err)
	}

	if prevID != nil && *prevID != id {
		s.disposeAsset(ctx, *prevID)
	}

	return newAsset, nil
}

// DetachAsset clears the owner slot, then disposes of the previously linked
// asset best-effort. Detaching an empty slot is a no-op.
func (s *replacerSrv) DetachAsset(ctx context.Context, owner model.Owner) error {
	if err := validateOwner(owner); err != nil {
		return err
	}

	unlock := s.locks.lock(owner)
	defer unlock()

	prevID, err := s.links.Set(ctx, owner, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLinkFailed, err)
	}
	if prevID == nil {
		return nil
	}

	s.disposeAsset(ctx, *prevID)
	return nil
}

// disposeAsset deletes an asset's blob and record. All failures are logged
// and swallowed: an orphaned file is a recoverable leak the background sweep
// picks up, while failing the caller here would undo nothing.
func (s *replacerSrv) disposeAsset(ctx context.Context, id db.UUID) {
	old, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return
	}
	if err != nil {
		log.Printf("could not load old asset #%s for cleanup: %v", id, err)
		return
	}

	if err := s.strg.RemoveFile(ctx, old.FilePath); err != nil {
		log.Printf("failed to remove old blob %q: %v", old.FilePath, err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Printf("failed to delete old asset record #%s: %v", id, err)
	}
}

func validateOwner(owner model.Owner) error {
	if owner.Type == "" || owner.ID == "" {
		return fmt.Errorf("%w: owner type and id are required", ErrValidation)
	}
	return nil
}

func derivePath(owner model.Owner, id db.UUID, fileName string, mimeType *string) string {
	ext := path.Ext(fileName)
	if ext == "" && mimeType != nil {
		if e, err := MimeTypeToExtension(*mimeType); err == nil {
			ext = e
		}
	}
	return fmt.Sprintf("%s/%s/%s%s", owner.Type, owner.ID, id, ext)
}

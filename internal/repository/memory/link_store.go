package memory

import (
	"context"
	"sync"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
)

type LinkStore struct {
	mu    sync.Mutex
	slots map[string]db.UUID
}

// compile-time check: *LinkStore must satisfy port.LinkStore
var _ port.LinkStore = (*LinkStore)(nil)

func NewLinkStore() *LinkStore {
	return &LinkStore{slots: make(map[string]db.UUID)}
}

func (s *LinkStore) Get(ctx context.Context, owner model.Owner) (*db.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.slots[owner.String()]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

// Set swaps the owner's slot under one lock, so each previous id is handed
// out to exactly one caller.
func (s *LinkStore) Set(ctx context.Context, owner model.Owner, assetID *db.UUID) (*db.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prev *db.UUID
	if id, ok := s.slots[owner.String()]; ok {
		prev = &id
	}
	if assetID == nil {
		delete(s.slots, owner.String())
	} else {
		s.slots[owner.String()] = *assetID
	}
	return prev, nil
}

// linkedIDs snapshots every asset id currently pointed at by a slot.
func (s *LinkStore) linkedIDs() map[db.UUID]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[db.UUID]bool, len(s.slots))
	for _, id := range s.slots {
		out[id] = true
	}
	return out
}

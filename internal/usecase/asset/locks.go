package asset

import (
	"sync"

	"github.com/dbk/assets-ms-go/internal/model"
)

// ownerLocks serializes replace/detach per owner slot. Different owners
// proceed independently; the lock is never held across operations.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *ownerLocks) lock(owner model.Owner) func() {
	l.mu.Lock()
	m, ok := l.locks[owner.String()]
	if !ok {
		m = &sync.Mutex{}
		l.locks[owner.String()] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

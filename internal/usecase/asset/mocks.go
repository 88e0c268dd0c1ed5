package asset

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
)

type mockRepo struct {
	records map[db.UUID]*model.Asset

	createErr error
	getErr    error
	deleteErr error
	listErr   error
	updateErr error

	created    []*model.Asset
	deletedIDs []db.UUID

	banners    []*model.Asset
	bannersErr error

	orphans    []*model.Asset
	orphansErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[db.UUID]*model.Asset)}
}

func (m *mockRepo) Create(ctx context.Context, a *model.Asset) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, a)
	m.records[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id db.UUID) (*model.Asset, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	a, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

func (m *mockRepo) Delete(ctx context.Context, id db.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, id)
	delete(m.records, id)
	return nil
}

func (m *mockRepo) ListByOwner(ctx context.Context, owner model.Owner) ([]*model.Asset, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*model.Asset
	for _, a := range m.records {
		if a.OwnerType == owner.Type && a.OwnerID == owner.ID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRepo) ListUnlinkedCreatedBefore(ctx context.Context, before time.Time) ([]*model.Asset, error) {
	if m.orphansErr != nil {
		return nil, m.orphansErr
	}
	return m.orphans, nil
}

func (m *mockRepo) ListBanners(ctx context.Context, filter port.BannerFilter) ([]*model.Asset, error) {
	if m.bannersErr != nil {
		return nil, m.bannersErr
	}
	return m.banners, nil
}

func (m *mockRepo) UpdateBanner(ctx context.Context, id db.UUID, banner *model.Banner) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	a, ok := m.records[id]
	if !ok {
		return ErrNotFound
	}
	a.Banner = banner
	return nil
}

type mockLinks struct {
	entries map[string]*db.UUID

	getErr error
	setErr error

	setCalls []model.Owner
}

func newMockLinks() *mockLinks {
	return &mockLinks{entries: make(map[string]*db.UUID)}
}

func (m *mockLinks) Get(ctx context.Context, owner model.Owner) (*db.UUID, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.entries[owner.String()], nil
}

func (m *mockLinks) Set(ctx context.Context, owner model.Owner, assetID *db.UUID) (*db.UUID, error) {
	if m.setErr != nil {
		return nil, m.setErr
	}
	m.setCalls = append(m.setCalls, owner)
	prev := m.entries[owner.String()]
	if assetID == nil {
		delete(m.entries, owner.String())
	} else {
		id := *assetID
		m.entries[owner.String()] = &id
	}
	return prev, nil
}

type mockBlob struct {
	files map[string][]byte

	saveErr   error
	removeErr error
	getErr    error

	savedPaths   []string
	removedPaths []string
}

func newMockBlob() *mockBlob {
	return &mockBlob{files: make(map[string][]byte)}
}

func (m *mockBlob) SaveFile(ctx context.Context, filePath string, reader io.Reader, fileSize int64, opts map[string]string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.savedPaths = append(m.savedPaths, filePath)
	m.files[filePath] = data
	return nil
}

func (m *mockBlob) RemoveFile(ctx context.Context, filePath string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removedPaths = append(m.removedPaths, filePath)
	delete(m.files, filePath)
	return nil
}

func (m *mockBlob) GetFile(ctx context.Context, filePath string) (io.ReadSeekCloser, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	data, ok := m.files[filePath]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return nopReadSeekCloser{bytes.NewReader(data)}, nil
}

func (m *mockBlob) FileExists(ctx context.Context, filePath string) (bool, error) {
	_, ok := m.files[filePath]
	return ok, nil
}

func (m *mockBlob) StatFile(ctx context.Context, filePath string) (port.FileInfo, error) {
	data, ok := m.files[filePath]
	if !ok {
		return port.FileInfo{}, ErrObjectNotFound
	}
	return port.FileInfo{SizeBytes: int64(len(data))}, nil
}

func (m *mockBlob) PublicURL(filePath string) string {
	return "https://cdn.test/" + filePath
}

type nopReadSeekCloser struct{ *bytes.Reader }

func (nopReadSeekCloser) Close() error { return nil }

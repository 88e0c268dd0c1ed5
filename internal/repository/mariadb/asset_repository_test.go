package mariadb

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	assetService "github.com/dbk/assets-ms-go/internal/usecase/asset"
)

var testAssetID = db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))

func assetRows(ownerType string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "url", "file_name", "file_path", "mime_type", "owner_type", "owner_id",
		"banner_alt", "banner_priority", "banner_is_active", "banner_starts_at", "banner_ends_at",
		"created_at", "updated_at",
	}).AddRow(
		testAssetID[:], "https://cdn.test/p/1/a.mp4", "a.mp4", "product/1/a.mp4", "video/mp4",
		ownerType, "1",
		nil, 0, false, nil, nil,
		now, now,
	)
}

func TestAssetRepository_Create_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewAssetRepository(sqlDB)

	mime := "video/mp4"
	a := &model.Asset{
		ID:        testAssetID,
		URL:       "https://cdn.test/product/1/a.mp4",
		FileName:  "a.mp4",
		FilePath:  "product/1/a.mp4",
		MimeType:  &mime,
		OwnerType: model.OwnerTypeProduct,
		OwnerID:   "1",
	}

	mock.ExpectExec("INSERT INTO assets").
		WithArgs(
			a.ID, a.URL, a.FileName, a.FilePath, a.MimeType,
			a.OwnerType, a.OwnerID,
			nil, 0, false, nil, nil,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), a); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestAssetRepository_Create_WithBannerFields(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewAssetRepository(sqlDB)

	alt := "summer sale"
	a := &model.Asset{
		ID:        testAssetID,
		URL:       "https://cdn.test/collection/summer/b.png",
		FileName:  "b.png",
		FilePath:  "collection/summer/b.png",
		OwnerType: model.OwnerTypeCollection,
		OwnerID:   "summer",
		Banner:    &model.Banner{Alt: &alt, Priority: 2, IsActive: true},
	}

	mock.ExpectExec("INSERT INTO assets").
		WithArgs(
			a.ID, a.URL, a.FileName, a.FilePath, nil,
			a.OwnerType, a.OwnerID,
			&alt, 2, true, nil, nil,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), a); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestAssetRepository_GetByID_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewAssetRepository(sqlDB)

	mock.ExpectQuery("SELECT (.+) FROM assets").
		WithArgs(testAssetID).
		WillReturnRows(assetRows(model.OwnerTypeProduct))

	a, err := repo.GetByID(context.Background(), testAssetID)
	if err != nil {
		t.Fatalf("GetByID() returned unexpected error: %v", err)
	}
	if a.FileName != "a.mp4" {
		t.Errorf("expected file name 'a.mp4', got %q", a.FileName)
	}
	if a.Banner != nil {
		t.Error("a product asset should carry no banner fields")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestAssetRepository_GetByID_NotFound(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewAssetRepository(sqlDB)

	mock.ExpectQuery("SELECT (.+) FROM assets").
		WithArgs(testAssetID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), testAssetID); !errors.Is(err, assetService.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAssetRepository_ListUnlinkedCreatedBefore(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewAssetRepository(sqlDB)

	cutoff := time.Now().Add(-time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN asset_links l ON l.asset_id = a.id")).
		WithArgs(model.OwnerTypeCollection, cutoff).
		WillReturnRows(assetRows(model.OwnerTypeProduct))

	orphans, err := repo.ListUnlinkedCreatedBefore(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("ListUnlinkedCreatedBefore() returned unexpected error: %v", err)
	}
	if len(orphans) != 1 || orphans[0].ID != testAssetID {
		t.Errorf("expected the single orphan back, got %v", orphans)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestAssetRepository_ListBanners_OnlyActive(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewAssetRepository(sqlDB)

	mock.ExpectQuery(regexp.QuoteMeta("banner_is_active = TRUE")).
		WithArgs(model.OwnerTypeCollection, "summer").
		WillReturnRows(assetRows(model.OwnerTypeCollection))

	banners, err := repo.ListBanners(context.Background(), port.BannerFilter{
		CollectionHandle: "summer",
		OnlyActive:       true,
	})
	if err != nil {
		t.Fatalf("ListBanners() returned unexpected error: %v", err)
	}
	if len(banners) != 1 {
		t.Fatalf("expected 1 banner, got %d", len(banners))
	}
	if banners[0].Banner == nil {
		t.Error("a collection asset should carry banner fields")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

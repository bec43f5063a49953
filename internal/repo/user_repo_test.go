package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
)

// newRepoTestDB opens a throwaway file-backed SQLite DB and migrates the
// requested models. Shared by all repo tests in this package.
func newRepoTestDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestGetUserByTelegramID_NotFound(t *testing.T) {
	db := newRepoTestDB(t, &domain.User{})
	u, err := GetUserByTelegramID(context.Background(), db, "999")
	if u != nil || !IsNotFound(err) {
		t.Fatalf("expected not-found, got user=%v err=%v", u, err)
	}
}

func TestUpsertUser_CreatesThenRefreshes(t *testing.T) {
	db := newRepoTestDB(t, &domain.User{})
	ctx := context.Background()

	first, err := UpsertUser(ctx, db, "42", "alice", "Alice", "")
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.ID == "" || first.TelegramID != "42" || first.Username != "alice" {
		t.Fatalf("unexpected user fields: %+v", first)
	}

	second, err := UpsertUser(ctx, db, "42", "alice_new", "Alice", "Smith")
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("internal id changed across upserts: %q -> %q", first.ID, second.ID)
	}
	if second.Username != "alice_new" || second.LastName != "Smith" {
		t.Fatalf("profile not refreshed: %+v", second)
	}

	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row, got %d", count)
	}
}

func TestUpsertUser_DistinctTelegramIDs(t *testing.T) {
	db := newRepoTestDB(t, &domain.User{})
	ctx := context.Background()

	a, err := UpsertUser(ctx, db, "1", "", "", "")
	if err != nil {
		t.Fatalf("upsert a: %v", err)
	}
	b, err := UpsertUser(ctx, db, "2", "", "", "")
	if err != nil {
		t.Fatalf("upsert b: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("distinct telegram ids mapped to the same row: %q", a.ID)
	}
}

func TestListUsers_LimitAndOrder(t *testing.T) {
	db := newRepoTestDB(t, &domain.User{})
	ctx := context.Background()

	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	seed := []domain.User{
		{ID: "u1", TelegramID: "1", CreatedAt: t1, UpdatedAt: t1},
		{ID: "u2", TelegramID: "2", CreatedAt: t1.Add(time.Hour), UpdatedAt: t1},
		{ID: "u3", TelegramID: "3", CreatedAt: t1.Add(2 * time.Hour), UpdatedAt: t1},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := ListUsers(ctx, db, 2)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(got) != 2 || got[0].ID != "u3" || got[1].ID != "u2" {
		t.Fatalf("unexpected order/limit: %+v", got)
	}
}

package repo

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
)

func TestCreateStrategy_PersistsAndSetsFields(t *testing.T) {
	db := newRepoTestDB(t, &domain.Strategy{})
	ctx := context.Background()

	start := time.Now().UTC().Add(-time.Minute)
	fields := datatypes.JSON(`[{"name":"RSI","type":"number"}]`)
	s, err := CreateStrategy(ctx, db, "u1", "42", "Breakout", "momentum entry", fields, false)
	if err != nil {
		t.Fatalf("CreateStrategy: %v", err)
	}
	if s.ID == "" || s.UserID != "u1" || s.TelegramUserID != "42" || s.Name != "Breakout" {
		t.Fatalf("unexpected fields: %+v", s)
	}
	if s.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt seems unset: %v", s.CreatedAt)
	}

	var got domain.Strategy
	if err := db.First(&got, "id = ?", s.ID).Error; err != nil {
		t.Fatalf("load created strategy: %v", err)
	}
	if got.Description != "momentum entry" || string(got.Fields) != string(fields) {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestListStrategiesByUser_OrderDescendingAndFilter(t *testing.T) {
	db := newRepoTestDB(t, &domain.Strategy{})
	ctx := context.Background()

	t1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	seed := []domain.Strategy{
		{ID: "s1", UserID: "u1", TelegramUserID: "42", Name: "oldest", CreatedAt: t1, UpdatedAt: t1},
		{ID: "s2", UserID: "u1", TelegramUserID: "42", Name: "newest", CreatedAt: t1.Add(2 * time.Hour), UpdatedAt: t1},
		{ID: "s3", UserID: "u1", TelegramUserID: "42", Name: "middle", CreatedAt: t1.Add(time.Hour), UpdatedAt: t1},
		{ID: "s4", UserID: "u2", TelegramUserID: "77", Name: "other", CreatedAt: t1.Add(3 * time.Hour), UpdatedAt: t1},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := ListStrategiesByUser(ctx, db, "u1", 0)
	if err != nil {
		t.Fatalf("ListStrategiesByUser: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	if got[0].ID != "s2" || got[1].ID != "s3" || got[2].ID != "s1" {
		t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestListPublicStrategies_FiltersPrivate(t *testing.T) {
	db := newRepoTestDB(t, &domain.Strategy{})
	ctx := context.Background()

	now := time.Now().UTC()
	seed := []domain.Strategy{
		{ID: "pub", UserID: "u1", TelegramUserID: "42", Name: "shared", IsPublic: true, CreatedAt: now, UpdatedAt: now},
		{ID: "priv", UserID: "u1", TelegramUserID: "42", Name: "secret", IsPublic: false, CreatedAt: now, UpdatedAt: now},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := ListPublicStrategies(ctx, db, 0)
	if err != nil {
		t.Fatalf("ListPublicStrategies: %v", err)
	}
	if len(got) != 1 || got[0].ID != "pub" {
		t.Fatalf("expected only the public row, got %+v", got)
	}
}

func TestReplaceStrategy_FullReplace(t *testing.T) {
	db := newRepoTestDB(t, &domain.Strategy{})
	ctx := context.Background()

	s, err := CreateStrategy(ctx, db, "u1", "42", "Breakout", "desc", datatypes.JSON(`[{"a":1}]`), true)
	if err != nil {
		t.Fatalf("CreateStrategy: %v", err)
	}

	// Omitting description and fields must reset them, not merge.
	updated, err := ReplaceStrategy(ctx, db, s.ID, "Renamed", "", nil, false)
	if err != nil {
		t.Fatalf("ReplaceStrategy: %v", err)
	}
	if updated.Name != "Renamed" || updated.Description != "" || updated.IsPublic {
		t.Fatalf("full-replace not applied: %+v", updated)
	}
	if len(updated.Fields) != 0 {
		t.Fatalf("fields should have been reset, got %s", updated.Fields)
	}
	if updated.UserID != "u1" {
		t.Fatalf("owner must not change on replace: %+v", updated)
	}
}

func TestReplaceStrategy_Missing(t *testing.T) {
	db := newRepoTestDB(t, &domain.Strategy{})
	got, err := ReplaceStrategy(context.Background(), db, "no-such-id", "n", "", nil, false)
	if got != nil || !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v err=%v", got, err)
	}
}

func TestDeleteStrategy_Idempotent(t *testing.T) {
	db := newRepoTestDB(t, &domain.Strategy{})
	ctx := context.Background()

	s, err := CreateStrategy(ctx, db, "u1", "42", "Breakout", "", nil, false)
	if err != nil {
		t.Fatalf("CreateStrategy: %v", err)
	}

	if err := DeleteStrategy(ctx, db, s.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := DeleteStrategy(ctx, db, s.ID); err != nil {
		t.Fatalf("repeated delete must succeed: %v", err)
	}

	if _, err := GetStrategy(ctx, db, s.ID); !IsNotFound(err) {
		t.Fatalf("row should be gone, err=%v", err)
	}
}

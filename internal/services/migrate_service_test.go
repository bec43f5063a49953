package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
)

func TestMigrateImport_EmptyBatchRejected(t *testing.T) {
	svc := &MigrateService{DB: newServiceTestDB(t)}
	if _, err := svc.Import(context.Background(), ImportBatch{}); !errors.Is(err, ErrInvalidImport) {
		t.Fatalf("expected ErrInvalidImport, got %v", err)
	}
}

func TestMigrateImport_AssignsIDsAndNormalizes(t *testing.T) {
	db := newServiceTestDB(t)
	svc := &MigrateService{DB: db}
	ctx := context.Background()

	now := time.Now().UTC()
	batch := ImportBatch{
		Users: []domain.User{
			{TelegramID: " 42 ", Username: "alice", CreatedAt: now, UpdatedAt: now},
		},
		Strategies: []domain.Strategy{
			{UserID: "u-ext", TelegramUserID: "42", Name: "imported", CreatedAt: now, UpdatedAt: now},
		},
	}
	res, err := svc.Import(ctx, batch)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Users != 1 || res.Strategies != 1 || res.Analyses != 0 {
		t.Fatalf("unexpected counts: %+v", res)
	}

	// The imported user must be reachable through the normalized id, so later
	// upserts merge instead of duplicating.
	users := &UserService{DB: db}
	got, err := users.Lookup(ctx, "42")
	if err != nil || len(got) != 1 {
		t.Fatalf("lookup after import: got=%+v err=%v", got, err)
	}
	if got[0].ID == "" {
		t.Fatalf("imported user has no assigned id: %+v", got[0])
	}
}

func TestMigrateImport_ReplayKeepsCounts(t *testing.T) {
	svc := &MigrateService{DB: newServiceTestDB(t)}
	ctx := context.Background()

	now := time.Now().UTC()
	batch := ImportBatch{
		Users: []domain.User{
			{ID: "u1", TelegramID: "42", CreatedAt: now, UpdatedAt: now},
		},
		Strategies: []domain.Strategy{
			{ID: "s1", UserID: "u1", TelegramUserID: "42", Name: "a", CreatedAt: now, UpdatedAt: now},
		},
		Analyses: []domain.Analysis{
			{ID: "a1", UserID: "u1", TelegramUserID: "42", Coin: "BTC", CreatedAt: now},
		},
	}

	first, err := svc.Import(ctx, batch)
	if err != nil {
		t.Fatalf("first import: %v", err)
	}
	if first.Users != 1 || first.Strategies != 1 || first.Analyses != 1 {
		t.Fatalf("unexpected first counts: %+v", first)
	}

	replay, err := svc.Import(ctx, batch)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if replay.Users != 0 || replay.Strategies != 0 || replay.Analyses != 0 {
		t.Fatalf("replay must insert nothing: %+v", replay)
	}
}

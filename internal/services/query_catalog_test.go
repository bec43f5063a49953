package services

import (
	"context"
	"errors"
	"testing"
)

func TestQueryExecute_UnknownStatement(t *testing.T) {
	svc := &QueryService{DB: newServiceTestDB(t)}
	ctx := context.Background()

	if _, err := svc.Execute(ctx, "drop_everything", nil); !errors.Is(err, ErrUnknownStatement) {
		t.Fatalf("expected ErrUnknownStatement, got %v", err)
	}
	// A known name with the wrong parameter arity is equally rejected.
	if _, err := svc.Execute(ctx, "public_strategies", nil); !errors.Is(err, ErrUnknownStatement) {
		t.Fatalf("expected ErrUnknownStatement on arity mismatch, got %v", err)
	}
	if _, err := svc.Execute(ctx, "public_strategies", []interface{}{true, "extra"}); !errors.Is(err, ErrUnknownStatement) {
		t.Fatalf("expected ErrUnknownStatement on extra params, got %v", err)
	}
}

func TestQueryExecute_PublicStrategies(t *testing.T) {
	db := newServiceTestDB(t)
	users := &UserService{DB: db}
	strategies := NewStrategyService(db, repoShim{}, users)
	ctx := context.Background()

	if _, err := strategies.Create(ctx, "42", Profile{}, "shared", "", nil, true); err != nil {
		t.Fatalf("seed public: %v", err)
	}
	if _, err := strategies.Create(ctx, "42", Profile{}, "secret", "", nil, false); err != nil {
		t.Fatalf("seed private: %v", err)
	}

	svc := &QueryService{DB: db}
	rows, err := svc.Execute(ctx, "public_strategies", []interface{}{true})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 public row, got %d", len(rows))
	}
	if rows[0]["name"] != "shared" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestQueryExecute_EmptyResultIsSliceNotNil(t *testing.T) {
	svc := &QueryService{DB: newServiceTestDB(t)}
	rows, err := svc.Execute(context.Background(), "user_by_telegram_id", []interface{}{"404"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}
}

func TestCatalogNames_CoversEveryStatement(t *testing.T) {
	names := CatalogNames()
	if len(names) != len(queryCatalog) {
		t.Fatalf("expected %d names, got %d", len(queryCatalog), len(names))
	}
	for _, n := range names {
		if _, ok := queryCatalog[n]; !ok {
			t.Fatalf("unknown name %q returned", n)
		}
	}
}

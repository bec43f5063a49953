package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/datatypes"
)

func newAnalysisService(t *testing.T) *AnalysisService {
	t.Helper()
	db := newServiceTestDB(t)
	return &AnalysisService{DB: db, Users: &UserService{DB: db}}
}

func TestAnalysisCreateThenList(t *testing.T) {
	svc := newAnalysisService(t)
	ctx := context.Background()

	in := AnalysisInput{
		StrategyName:    "Breakout",
		Coin:            "BTC",
		Answers:         datatypes.JSON(`[{"q":"trend up?","a":"yes"}]`),
		PositiveFactors: datatypes.JSON(`["volume rising"]`),
		NegativeFactors: datatypes.JSON(`[]`),
		NeutralFactors:  datatypes.JSON(`[]`),
		Recommendation:  "enter long",
	}
	created, err := svc.Create(ctx, "42", Profile{Username: "alice"}, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Coin != "BTC" || created.TelegramUserID != "42" {
		t.Fatalf("unexpected analysis: %+v", created)
	}

	got, err := svc.List(ctx, "42", "", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Recommendation != "enter long" {
		t.Fatalf("create/list round trip failed: %+v", got)
	}
}

func TestAnalysisList_UnknownOwnerIsEmpty(t *testing.T) {
	svc := newAnalysisService(t)
	got, err := svc.List(context.Background(), "404", "", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}
}

func TestAnalysisDelete_OwnershipAndIdempotence(t *testing.T) {
	svc := newAnalysisService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "42", Profile{}, AnalysisInput{Coin: "ETH"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Users.Ensure(ctx, "77", Profile{}); err != nil {
		t.Fatalf("ensure intruder: %v", err)
	}
	if err := svc.Delete(ctx, "77", created.ID); !errors.Is(err, ErrOwnershipMismatch) {
		t.Fatalf("expected ErrOwnershipMismatch, got %v", err)
	}
	if err := svc.Delete(ctx, "", created.ID); !errors.Is(err, ErrEmptyTelegramID) {
		t.Fatalf("expected ErrEmptyTelegramID, got %v", err)
	}

	if err := svc.Delete(ctx, "42", created.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.Delete(ctx, "42", created.ID); err != nil {
		t.Fatalf("repeated delete must succeed: %v", err)
	}
}

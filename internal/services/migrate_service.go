// Package services – MigrateService
//
// This file implements the one-time bulk import used when moving off the
// previously hosted backend. Each collection is inserted with conflict-skip
// semantics (users on telegram_id, strategies and analyses on primary key),
// so replaying the same export produces the same final row counts.
package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/repo"
)

// ImportBatch is the decoded migration payload. Collections may be empty, but
// at least one must be present.
type ImportBatch struct {
	Users      []domain.User     `json:"users"`
	Strategies []domain.Strategy `json:"strategies"`
	Analyses   []domain.Analysis `json:"analyses"`
}

// ImportResult reports how many rows each collection actually inserted.
// Skipped duplicates are not counted.
type ImportResult struct {
	Users      int64 `json:"users"`
	Strategies int64 `json:"strategies"`
	Analyses   int64 `json:"analyses"`
}

// MigrateService imports batches exported from the previous backend.
type MigrateService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Import inserts the batch with conflict-skip semantics and returns per
// collection insert counts. Rows arriving without an id are assigned one;
// telegram ids are normalized so imported users merge with rows created
// through the identity resolver.
func (s *MigrateService) Import(ctx context.Context, batch ImportBatch) (ImportResult, error) {
	if len(batch.Users) == 0 && len(batch.Strategies) == 0 && len(batch.Analyses) == 0 {
		return ImportResult{}, ErrInvalidImport
	}

	for i := range batch.Users {
		if batch.Users[i].ID == "" {
			batch.Users[i].ID = uuid.NewString()
		}
		batch.Users[i].TelegramID = NormalizeTelegramID(batch.Users[i].TelegramID)
	}
	for i := range batch.Strategies {
		if batch.Strategies[i].ID == "" {
			batch.Strategies[i].ID = uuid.NewString()
		}
		batch.Strategies[i].TelegramUserID = NormalizeTelegramID(batch.Strategies[i].TelegramUserID)
	}
	for i := range batch.Analyses {
		if batch.Analyses[i].ID == "" {
			batch.Analyses[i].ID = uuid.NewString()
		}
		batch.Analyses[i].TelegramUserID = NormalizeTelegramID(batch.Analyses[i].TelegramUserID)
	}

	var out ImportResult
	var err error
	if out.Users, err = repo.ImportUsers(ctx, s.DB, batch.Users); err != nil {
		return out, err
	}
	if out.Strategies, err = repo.ImportStrategies(ctx, s.DB, batch.Strategies); err != nil {
		return out, err
	}
	if out.Analyses, err = repo.ImportAnalyses(ctx, s.DB, batch.Analyses); err != nil {
		return out, err
	}
	return out, nil
}

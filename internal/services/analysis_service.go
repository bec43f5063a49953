// Package services – AnalysisService
//
// This file implements the analysis lifecycle: owner-scoped listing, creation
// through the identity resolver, and idempotent, ownership-checked deletion.
// Analyses are immutable once written; there is no update path.
package services

import (
	"context"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/repo"
)

// AnalysisInput carries the caller-supplied payload for a new analysis. The
// structured members (answers, factor lists) are passed through unvalidated;
// their internal shape belongs to the web application.
type AnalysisInput struct {
	StrategyID      string
	StrategyName    string
	Coin            string
	Answers         datatypes.JSON
	PositiveFactors datatypes.JSON
	NegativeFactors datatypes.JSON
	NeutralFactors  datatypes.JSON
	Recommendation  string
}

// AnalysisService provides analysis-level operations on top of the identity
// resolver and the analysis repository.
type AnalysisService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Users resolves external telegram ids to internal user rows.
	Users *UserService
}

// List returns analyses scoped by owner, most recent first. Exactly one of
// telegramUserID or internalUserID selects the owner. An unknown telegram id
// yields an empty slice, not an error.
func (s *AnalysisService) List(ctx context.Context, telegramUserID, internalUserID string, limit int) ([]domain.Analysis, error) {
	if internalUserID = strings.TrimSpace(internalUserID); internalUserID != "" {
		return repo.ListAnalysesByUser(ctx, s.DB, internalUserID, limit)
	}
	telegramUserID = NormalizeTelegramID(telegramUserID)
	if telegramUserID == "" {
		return []domain.Analysis{}, nil
	}
	u, err := repo.GetUserByTelegramID(ctx, s.DB, telegramUserID)
	if err != nil {
		if repo.IsNotFound(err) {
			return []domain.Analysis{}, nil
		}
		return nil, err
	}
	return repo.ListAnalysesByUser(ctx, s.DB, u.ID, limit)
}

// Create resolves (or creates) the owner and inserts a new analysis row with
// the three factor lists stored as discrete columns.
func (s *AnalysisService) Create(ctx context.Context, telegramUserID string, p Profile, in AnalysisInput) (*domain.Analysis, error) {
	u, err := s.Users.Ensure(ctx, telegramUserID, p)
	if err != nil {
		return nil, err
	}
	a := &domain.Analysis{
		UserID:          u.ID,
		TelegramUserID:  u.TelegramID,
		StrategyID:      strings.TrimSpace(in.StrategyID),
		StrategyName:    in.StrategyName,
		Coin:            in.Coin,
		Answers:         in.Answers,
		PositiveFactors: in.PositiveFactors,
		NegativeFactors: in.NegativeFactors,
		NeutralFactors:  in.NeutralFactors,
		Recommendation:  in.Recommendation,
	}
	return repo.CreateAnalysis(ctx, s.DB, a)
}

// Delete removes the analysis by id after verifying that the caller owns it.
// Deleting an id that no longer exists succeeds.
func (s *AnalysisService) Delete(ctx context.Context, telegramUserID, id string) error {
	existing, err := repo.GetAnalysis(ctx, s.DB, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil
		}
		return err
	}

	telegramUserID = NormalizeTelegramID(telegramUserID)
	if telegramUserID == "" {
		return ErrEmptyTelegramID
	}
	caller, err := repo.GetUserByTelegramID(ctx, s.DB, telegramUserID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrOwnershipMismatch
		}
		return err
	}
	if caller.ID != existing.UserID {
		return ErrOwnershipMismatch
	}

	return repo.DeleteAnalysis(ctx, s.DB, id)
}

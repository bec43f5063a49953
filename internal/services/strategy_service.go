// Package services – StrategyService
//
// This file implements the strategy lifecycle: owner-scoped listing, creation
// through the identity resolver, full-replace updates, and idempotent
// deletion. Mutations verify that the caller's resolved user owns the target
// row; a mismatch yields ErrOwnershipMismatch so handlers can answer 403
// instead of silently letting any id-holder rewrite another user's data.
//
// Service-level errors (e.g. ErrStrategyNotFound) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/repo"
)

// StrategyRepo defines the repository contract required by StrategyService.
// Implementations are responsible for persistence of strategy rows.
type StrategyRepo interface {
	// CreateStrategy inserts a new strategy row for the given user.
	CreateStrategy(ctx context.Context, db *gorm.DB, userID, telegramUserID, name, description string, fields datatypes.JSON, isPublic bool) (*domain.Strategy, error)

	// ListStrategiesByUser returns a user's strategies, most recent first.
	ListStrategiesByUser(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.Strategy, error)

	// ListPublicStrategies returns strategies marked public.
	ListPublicStrategies(ctx context.Context, db *gorm.DB, limit int) ([]domain.Strategy, error)

	// GetStrategy fetches a strategy by id.
	GetStrategy(ctx context.Context, db *gorm.DB, id string) (*domain.Strategy, error)

	// ReplaceStrategy overwrites the mutable fields of a strategy.
	ReplaceStrategy(ctx context.Context, db *gorm.DB, id, name, description string, fields datatypes.JSON, isPublic bool) (*domain.Strategy, error)

	// DeleteStrategy removes a strategy row; missing rows are not an error.
	DeleteStrategy(ctx context.Context, db *gorm.DB, id string) error
}

// StrategyService provides strategy-level operations on top of the identity
// resolver and the strategy repository.
type StrategyService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the strategy repository used by this service.
	Repo StrategyRepo
	// Users resolves external telegram ids to internal user rows.
	Users *UserService
}

// NewStrategyService constructs a StrategyService bound to db.
func NewStrategyService(db *gorm.DB, r StrategyRepo, users *UserService) *StrategyService {
	return &StrategyService{DB: db, Repo: r, Users: users}
}

// List returns strategies scoped by owner. Exactly one of telegramUserID or
// internalUserID selects the owner; when both are blank the public catalog is
// returned. An unknown telegram id yields an empty slice, not an error.
func (s *StrategyService) List(ctx context.Context, telegramUserID, internalUserID string, limit int) ([]domain.Strategy, error) {
	if internalUserID = strings.TrimSpace(internalUserID); internalUserID != "" {
		return s.Repo.ListStrategiesByUser(ctx, s.DB, internalUserID, limit)
	}
	if telegramUserID = NormalizeTelegramID(telegramUserID); telegramUserID != "" {
		u, err := repo.GetUserByTelegramID(ctx, s.DB, telegramUserID)
		if err != nil {
			if repo.IsNotFound(err) {
				return []domain.Strategy{}, nil
			}
			return nil, err
		}
		return s.Repo.ListStrategiesByUser(ctx, s.DB, u.ID, limit)
	}
	return s.Repo.ListPublicStrategies(ctx, s.DB, limit)
}

// Create resolves (or creates) the owner via the identity resolver and
// inserts a new strategy. The fields payload is stored opaquely.
func (s *StrategyService) Create(ctx context.Context, telegramUserID string, p Profile, name, description string, fields datatypes.JSON, isPublic bool) (*domain.Strategy, error) {
	u, err := s.Users.Ensure(ctx, telegramUserID, p)
	if err != nil {
		return nil, err
	}
	return s.Repo.CreateStrategy(ctx, s.DB, u.ID, u.TelegramID, name, description, fields, isPublic)
}

// Update performs a full replace of the strategy's mutable fields after
// verifying ownership. Returns ErrStrategyNotFound when the row does not
// exist and ErrOwnershipMismatch when it belongs to a different user.
func (s *StrategyService) Update(ctx context.Context, telegramUserID, id, name, description string, fields datatypes.JSON, isPublic bool) (*domain.Strategy, error) {
	existing, err := s.Repo.GetStrategy(ctx, s.DB, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrStrategyNotFound
		}
		return nil, err
	}
	if err := s.verifyOwner(ctx, telegramUserID, existing.UserID); err != nil {
		return nil, err
	}
	return s.Repo.ReplaceStrategy(ctx, s.DB, id, name, description, fields, isPublic)
}

// Delete removes the strategy by id after verifying ownership. Deleting an id
// that no longer exists succeeds, so retried deletes observe the same result.
func (s *StrategyService) Delete(ctx context.Context, telegramUserID, id string) error {
	existing, err := s.Repo.GetStrategy(ctx, s.DB, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil
		}
		return err
	}
	if err := s.verifyOwner(ctx, telegramUserID, existing.UserID); err != nil {
		return err
	}
	return s.Repo.DeleteStrategy(ctx, s.DB, id)
}

// verifyOwner resolves the caller and compares against the row owner.
func (s *StrategyService) verifyOwner(ctx context.Context, telegramUserID, ownerID string) error {
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
	if caller.ID != ownerID {
		return ErrOwnershipMismatch
	}
	return nil
}

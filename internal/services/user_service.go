// Package services – UserService
//
// This file implements the identity resolver and the user-facing lookup,
// stats, and event-recording operations. The resolver maps a caller-supplied
// telegram id onto exactly one internal user row using upsert-with-refresh
// semantics: profile fields and the modification timestamp are refreshed on
// every call, and the same internal id is returned no matter how many times
// the same telegram id is presented.
package services

import (
	"context"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/repo"
)

// Profile carries the optional telegram profile fields accepted alongside an
// external id. Absent fields are stored as empty strings.
type Profile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserService implements identity resolution and user-scoped reads.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NormalizeTelegramID converts a caller-supplied telegram id to its canonical
// string form: surrounding whitespace is removed. The same normalization is
// applied on every read and write path so one external identity can never map
// to two user rows.
func NormalizeTelegramID(id string) string {
	return strings.TrimSpace(id)
}

// Ensure finds or creates the user row for telegramID and returns it. The
// profile fields are refreshed on every call (upsert-with-refresh). A blank
// id yields ErrEmptyTelegramID; a gateway failure is surfaced to the caller
// rather than silently proceeding with a missing user.
func (s *UserService) Ensure(ctx context.Context, telegramID string, p Profile) (*domain.User, error) {
	telegramID = NormalizeTelegramID(telegramID)
	if telegramID == "" {
		return nil, ErrEmptyTelegramID
	}
	u, err := repo.UpsertUser(ctx, s.DB, telegramID, p.Username, p.FirstName, p.LastName)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Lookup returns the user row for telegramID, or an empty slice when the id
// is unknown. "No such user yet" is not a fault.
func (s *UserService) Lookup(ctx context.Context, telegramID string) ([]domain.User, error) {
	telegramID = NormalizeTelegramID(telegramID)
	if telegramID == "" {
		return []domain.User{}, nil
	}
	u, err := repo.GetUserByTelegramID(ctx, s.DB, telegramID)
	if err != nil {
		if repo.IsNotFound(err) {
			return []domain.User{}, nil
		}
		return nil, err
	}
	return []domain.User{*u}, nil
}

// Stats returns the strategy and analysis counts for the user identified by
// telegramID. An unknown id yields zero counts, not an error.
func (s *UserService) Stats(ctx context.Context, telegramID string) (repo.UserStats, error) {
	telegramID = NormalizeTelegramID(telegramID)
	if telegramID == "" {
		return repo.UserStats{}, ErrEmptyTelegramID
	}
	u, err := repo.GetUserByTelegramID(ctx, s.DB, telegramID)
	if err != nil {
		if repo.IsNotFound(err) {
			return repo.UserStats{}, nil
		}
		return repo.UserStats{}, err
	}
	return repo.CountUserStats(ctx, s.DB, u.ID)
}

// RecordEvent appends an analytics event for telegramID, creating the user
// row first when necessary. The event payload is stored opaquely.
func (s *UserService) RecordEvent(ctx context.Context, telegramID string, p Profile, eventType string, eventData datatypes.JSON) (*domain.UserEvent, error) {
	u, err := s.Ensure(ctx, telegramID, p)
	if err != nil {
		return nil, err
	}
	return repo.CreateUserEvent(ctx, s.DB, u.ID, u.TelegramID, eventType, eventData)
}

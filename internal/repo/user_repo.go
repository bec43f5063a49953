// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a user is not found, GetUserByTelegramID returns ErrNotFound.
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service layer
// and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// GetUserByTelegramID fetches a user by their external telegram identity.
// Returns ErrNotFound when no such user exists.
func GetUserByTelegramID(ctx context.Context, db *gorm.DB, telegramID string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID fetches a user by internal id. Returns ErrNotFound when missing.
func GetUserByID(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertUser inserts a user row keyed by telegram_id, or refreshes the
// profile fields and updated_at of the existing row. It returns the resulting
// row, so the caller always observes the server-assigned internal id.
//
// The conflict target is the unique telegram_id column; the insert-or-update
// runs as a single statement, so concurrent calls for the same telegram id
// converge on one row.
func UpsertUser(ctx context.Context, db *gorm.DB, telegramID, username, firstName, lastName string) (*domain.User, error) {
	now := time.Now().UTC()
	u := &domain.User{
		ID:         uuid.NewString(),
		TelegramID: telegramID,
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "telegram_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"username":   username,
				"first_name": firstName,
				"last_name":  lastName,
				"updated_at": now,
			}),
		}).
		Create(u).Error
	if err != nil {
		return nil, err
	}
	// On the update path the generated id above was discarded; re-read the
	// canonical row either way.
	return GetUserByTelegramID(ctx, db, telegramID)
}

// ListUsers returns all users ordered by creation time descending. Used by
// the compatibility lookup endpoint when no telegram id filter is supplied.
func ListUsers(ctx context.Context, db *gorm.DB, limit int) ([]domain.User, error) {
	var out []domain.User
	q := db.WithContext(ctx).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// IsNotFound reports whether err represents a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Strategy
// model.
//
// Functions:
//
//   - CreateStrategy(ctx, db, s) -> *domain.Strategy, error
//     Inserts a new Strategy row with UUID primary key and UTC timestamps.
//
//   - ListStrategiesByUser(ctx, db, userID, limit) -> []domain.Strategy, error
//     Returns a user's strategies ordered by creation time descending.
//
//   - ListPublicStrategies(ctx, db, limit) -> []domain.Strategy, error
//     Returns strategies marked public, most recent first.
//
//   - GetStrategy(ctx, db, id) -> *domain.Strategy, error
//     Fetches a single strategy by id, or ErrNotFound if missing.
//
//   - ReplaceStrategy(ctx, db, id, s) -> *domain.Strategy, error
//     Full-replace of the mutable fields; omitted fields are overwritten with
//     their zero values, not merged.
//
//   - DeleteStrategy(ctx, db, id) -> error
//     Removes the row; deleting a missing id is not an error.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
)

// CreateStrategy inserts a new strategy row owned by the given user. The id
// is a randomly generated UUID and CreatedAt/UpdatedAt are set to UTC now.
func CreateStrategy(ctx context.Context, db *gorm.DB, userID, telegramUserID, name, description string, fields datatypes.JSON, isPublic bool) (*domain.Strategy, error) {
	now := time.Now().UTC()
	s := &domain.Strategy{
		ID:             uuid.NewString(),
		UserID:         userID,
		TelegramUserID: telegramUserID,
		Name:           name,
		Description:    description,
		Fields:         fields,
		IsPublic:       isPublic,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// ListStrategiesByUser returns all strategies belonging to userID, ordered by
// creation time descending (most recent first). It returns an empty slice if
// the user has none. A limit <= 0 disables the cap.
func ListStrategiesByUser(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.Strategy, error) {
	var out []domain.Strategy
	q := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// ListPublicStrategies returns strategies with is_public set, most recent
// first. A limit <= 0 disables the cap.
func ListPublicStrategies(ctx context.Context, db *gorm.DB, limit int) ([]domain.Strategy, error) {
	var out []domain.Strategy
	q := db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// GetStrategy fetches a single strategy by id. Returns ErrNotFound when the
// record does not exist.
func GetStrategy(ctx context.Context, db *gorm.DB, id string) (*domain.Strategy, error) {
	var s domain.Strategy
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ReplaceStrategy overwrites the mutable fields of the strategy identified by
// id and returns the updated row. The semantics are full-replace: every
// listed column is written, so a caller omitting fields resets them.
// Returns ErrNotFound when no row was updated.
func ReplaceStrategy(ctx context.Context, db *gorm.DB, id, name, description string, fields datatypes.JSON, isPublic bool) (*domain.Strategy, error) {
	res := db.WithContext(ctx).
		Model(&domain.Strategy{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
			"fields":      fields,
			"is_public":   isPublic,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetStrategy(ctx, db, id)
}

// DeleteStrategy removes the strategy row by id. Deleting a non-existent id
// succeeds, matching the idempotent delete contract of the API.
func DeleteStrategy(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Strategy{}).Error
}

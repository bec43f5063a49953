// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Analysis
// model. Analyses are created and deleted but never updated in place.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
)

// CreateAnalysis inserts a new analysis row. The id is a generated UUID and
// CreatedAt is set to UTC now; all payload columns are taken verbatim from a.
func CreateAnalysis(ctx context.Context, db *gorm.DB, a *domain.Analysis) (*domain.Analysis, error) {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// ListAnalysesByUser returns all analyses belonging to userID, ordered by
// creation time descending. An empty slice (not an error) is returned when
// the user has none. A limit <= 0 disables the cap.
func ListAnalysesByUser(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.Analysis, error) {
	var out []domain.Analysis
	q := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// GetAnalysis fetches a single analysis by id, or ErrNotFound if missing.
func GetAnalysis(ctx context.Context, db *gorm.DB, id string) (*domain.Analysis, error) {
	var a domain.Analysis
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAnalysis removes the analysis row by id. Deleting a non-existent id
// succeeds, matching the idempotent delete contract of the API.
func DeleteAnalysis(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Analysis{}).Error
}

// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the aggregate count queries behind the
// per-user stats endpoint. Each function is context-aware and read-only.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
)

// UserStats carries per-user resource counts as returned by the stats
// endpoint.
type UserStats struct {
	Strategies int64 `json:"strategies"`
	Analyses   int64 `json:"analyses"`
}

// CountUserStats returns the number of strategies and analyses owned by
// userID. When the user owns nothing both counts are zero; that is not an
// error.
//
// Two lightweight COUNT queries are issued rather than a join so each table
// stays independently indexable by user_id.
func CountUserStats(ctx context.Context, db *gorm.DB, userID string) (UserStats, error) {
	var stats UserStats

	if err := db.WithContext(ctx).
		Model(&domain.Strategy{}).
		Where("user_id = ?", userID).
		Count(&stats.Strategies).Error; err != nil {
		return UserStats{}, err
	}

	if err := db.WithContext(ctx).
		Model(&domain.Analysis{}).
		Where("user_id = ?", userID).
		Count(&stats.Analyses).Error; err != nil {
		return UserStats{}, err
	}

	return stats, nil
}

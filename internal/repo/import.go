// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the bulk import helpers behind the
// one-time migration endpoint. Imports are idempotent: rows that collide with
// an existing primary key (or unique telegram_id for users) are skipped, so
// replaying the same batch leaves the tables unchanged.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
)

// ImportUsers inserts the given user rows, skipping any whose telegram_id is
// already present. It returns the number of rows actually inserted.
func ImportUsers(ctx context.Context, db *gorm.DB, users []domain.User) (int64, error) {
	var inserted int64
	for i := range users {
		res := db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "telegram_id"}},
				DoNothing: true,
			}).
			Create(&users[i])
		if res.Error != nil {
			return inserted, res.Error
		}
		inserted += res.RowsAffected
	}
	return inserted, nil
}

// ImportStrategies inserts the given strategy rows, skipping primary-key
// collisions. It returns the number of rows actually inserted.
func ImportStrategies(ctx context.Context, db *gorm.DB, strategies []domain.Strategy) (int64, error) {
	var inserted int64
	for i := range strategies {
		res := db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoNothing: true,
			}).
			Create(&strategies[i])
		if res.Error != nil {
			return inserted, res.Error
		}
		inserted += res.RowsAffected
	}
	return inserted, nil
}

// ImportAnalyses inserts the given analysis rows, skipping primary-key
// collisions. It returns the number of rows actually inserted.
func ImportAnalyses(ctx context.Context, db *gorm.DB, analyses []domain.Analysis) (int64, error) {
	var inserted int64
	for i := range analyses {
		res := db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoNothing: true,
			}).
			Create(&analyses[i])
		if res.Error != nil {
			return inserted, res.Error
		}
		inserted += res.RowsAffected
	}
	return inserted, nil
}

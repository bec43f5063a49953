// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the append-only
// UserEvent model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
)

// CreateUserEvent appends an analytics event for the given user. The payload
// is stored opaquely; there is no update or delete path for events.
func CreateUserEvent(ctx context.Context, db *gorm.DB, userID, telegramUserID, eventType string, eventData datatypes.JSON) (*domain.UserEvent, error) {
	ev := &domain.UserEvent{
		ID:             uuid.NewString(),
		UserID:         userID,
		TelegramUserID: telegramUserID,
		EventType:      eventType,
		EventData:      eventData,
		CreatedAt:      time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(ev).Error; err != nil {
		return nil, err
	}
	return ev, nil
}

// ListUserEvents returns a user's events, most recent first. Primarily used
// by tests and ad-hoc inspection; the public API only appends.
func ListUserEvents(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.UserEvent, error) {
	var out []domain.UserEvent
	q := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

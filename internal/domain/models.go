// Package domain defines the persistence models for users, trading
// strategies, analyses, and user events. These types are mapped with GORM and
// form the core data layer of the TradeAnalyzer backend.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// User represents an application user keyed by their Telegram identity.
// Rows are created on first reference from any endpoint that receives an
// unknown telegram id; profile fields are refreshed on repeat submission.
// Users are never deleted by this service.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), opaque to callers.
//   - TelegramID: caller-supplied external identity; unique upsert key.
//   - Username / FirstName / LastName: optional Telegram profile fields.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type User struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	TelegramID string    `json:"telegram_id" gorm:"type:varchar(64);not null;uniqueIndex:ux_users_telegram_id"`
	Username   string    `json:"username"    gorm:"type:varchar(255)"`
	FirstName  string    `json:"first_name"  gorm:"type:varchar(255)"`
	LastName   string    `json:"last_name"   gorm:"type:varchar(255)"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Strategy represents a user-defined trading strategy. The Fields payload is
// an ordered list of field definitions owned by the web application; the
// backend stores and returns it without interpreting its shape.
//
// TelegramUserID is a denormalized copy of the owner's telegram id kept for
// compatibility with clients that query by external identity.
type Strategy struct {
	ID             string         `json:"id"               gorm:"type:char(36);primaryKey"`
	UserID         string         `json:"user_id"          gorm:"type:char(36);not null;index:idx_strategies_user"`
	TelegramUserID string         `json:"telegram_user_id" gorm:"type:varchar(64);not null;index"`
	Name           string         `json:"name"             gorm:"type:varchar(255);not null"`
	Description    string         `json:"description"      gorm:"type:text"`
	Fields         datatypes.JSON `json:"fields"           gorm:"type:json"`
	IsPublic       bool           `json:"is_public"        gorm:"not null;default:false"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TableName returns the database table name for Strategy.
func (Strategy) TableName() string { return "strategies" }

// Analysis represents a completed strategy run against an instrument. The
// three factor lists are stored as discrete columns; Answers carries the
// ordered question/answer list. StrategyID is a plain reference with no
// foreign-key constraint, so an analysis survives deletion of its strategy.
// Analyses are created and deleted, never updated in place.
type Analysis struct {
	ID              string         `json:"id"               gorm:"type:char(36);primaryKey"`
	UserID          string         `json:"user_id"          gorm:"type:char(36);not null;index:idx_analyses_user"`
	TelegramUserID  string         `json:"telegram_user_id" gorm:"type:varchar(64);not null;index"`
	StrategyID      string         `json:"strategy_id"      gorm:"type:char(36)"`
	StrategyName    string         `json:"strategy_name"    gorm:"type:varchar(255)"`
	Coin            string         `json:"coin"             gorm:"type:varchar(64)"`
	Answers         datatypes.JSON `json:"answers"          gorm:"type:json"`
	PositiveFactors datatypes.JSON `json:"positive_factors" gorm:"type:json"`
	NegativeFactors datatypes.JSON `json:"negative_factors" gorm:"type:json"`
	NeutralFactors  datatypes.JSON `json:"neutral_factors"  gorm:"type:json"`
	Recommendation  string         `json:"recommendation"   gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at"`
}

// TableName returns the database table name for Analysis.
func (Analysis) TableName() string { return "analyses" }

// UserEvent is an append-only analytics record. EventData is opaque to the
// backend; there is no update or delete path.
type UserEvent struct {
	ID             string         `json:"id"               gorm:"type:char(36);primaryKey"`
	UserID         string         `json:"user_id"          gorm:"type:char(36);not null;index:idx_user_events_user"`
	TelegramUserID string         `json:"telegram_user_id" gorm:"type:varchar(64);not null;index"`
	EventType      string         `json:"event_type"       gorm:"type:varchar(128);not null"`
	EventData      datatypes.JSON `json:"event_data"       gorm:"type:json"`
	CreatedAt      time.Time      `json:"created_at"`
}

// TableName returns the database table name for UserEvent.
func (UserEvent) TableName() string { return "user_events" }

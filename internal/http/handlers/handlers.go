// Shared handler wiring and request helpers.
//
// Handlers are transport-thin: they bind and validate input, call application
// services, and translate service results (including sentinel errors) into
// the JSON envelope. No SQL and no business rules live at this layer.
package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/repo"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/services"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// StrategyService defines strategy lifecycle operations consumed by HTTP
// handlers. Implementations must honor the provided context for cancellation
// and timeouts.
type StrategyService interface {
	List(ctx context.Context, telegramUserID, internalUserID string, limit int) ([]domain.Strategy, error)
	Create(ctx context.Context, telegramUserID string, p services.Profile, name, description string, fields datatypes.JSON, isPublic bool) (*domain.Strategy, error)
	Update(ctx context.Context, telegramUserID, id, name, description string, fields datatypes.JSON, isPublic bool) (*domain.Strategy, error)
	Delete(ctx context.Context, telegramUserID, id string) error
}

// AnalysisService defines analysis lifecycle operations consumed by HTTP
// handlers.
type AnalysisService interface {
	List(ctx context.Context, telegramUserID, internalUserID string, limit int) ([]domain.Analysis, error)
	Create(ctx context.Context, telegramUserID string, p services.Profile, in services.AnalysisInput) (*domain.Analysis, error)
	Delete(ctx context.Context, telegramUserID, id string) error
}

// UserService defines identity resolution, lookup, stats, and event
// recording operations consumed by HTTP handlers.
type UserService interface {
	Ensure(ctx context.Context, telegramID string, p services.Profile) (*domain.User, error)
	Lookup(ctx context.Context, telegramID string) ([]domain.User, error)
	Stats(ctx context.Context, telegramID string) (repo.UserStats, error)
	RecordEvent(ctx context.Context, telegramID string, p services.Profile, eventType string, eventData datatypes.JSON) (*domain.UserEvent, error)
}

// QueryService executes named statements from the fixed catalog.
type QueryService interface {
	Execute(ctx context.Context, name string, params []interface{}) ([]map[string]interface{}, error)
}

// MigrateService imports batches exported from the previous backend.
type MigrateService interface {
	Import(ctx context.Context, batch services.ImportBatch) (services.ImportResult, error)
}

// HealthChecker probes database reachability for the health endpoint.
type HealthChecker func(ctx context.Context) error

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for all API resources. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	strategies StrategyService
	analyses   AnalysisService
	users      UserService
	query      QueryService
	migrate    MigrateService
	health     HealthChecker
}

// New constructs a Handlers instance bound to the given services.
func New(strategies StrategyService, analyses AnalysisService, users UserService, query QueryService, migrate MigrateService, health HealthChecker) *Handlers {
	return &Handlers{
		strategies: strategies,
		analyses:   analyses,
		users:      users,
		query:      query,
		migrate:    migrate,
		health:     health,
	}
}

//
// Request helpers
//

// ownerParams extracts the owner key from the query string. telegram_user_id
// takes the telegram_id alias for compatibility with the user-lookup clients.
func ownerParams(c *gin.Context) (telegramUserID, internalUserID string) {
	telegramUserID = strings.TrimSpace(c.Query("telegram_user_id"))
	if telegramUserID == "" {
		telegramUserID = strings.TrimSpace(c.Query("telegram_id"))
	}
	internalUserID = strings.TrimSpace(c.Query("user_id"))
	return
}

// limitParam parses the optional `limit` query parameter. Zero (no cap) is
// returned for absent or unparseable values; negatives are coerced to zero.
func limitParam(c *gin.Context) int {
	const maxLimit = 500
	n := utils.AtoiDefault(c.Query("limit"), 0)
	if n < 0 {
		n = 0
	}
	if n > maxLimit {
		n = maxLimit
	}
	return n
}

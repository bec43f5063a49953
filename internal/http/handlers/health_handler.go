// Health and info HTTP handlers.
//
// The health probe verifies actual database reachability within a bounded
// timeout and never mutates state. The info endpoint is a static capability
// listing with no inputs or side effects.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/services"
)

// healthProbeTimeout bounds the connection attempt so an unreachable
// database reports unhealthy promptly instead of hanging the probe.
const healthProbeTimeout = 3 * time.Second

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database,omitempty"`
}

// Health godoc
// @ID          health
// @Summary     Liveness and database reachability
// @Description Pings the database with a bounded timeout. Reports healthy (200) or unhealthy (500).
// @Tags        Service
// @Produce     json
//
// @Success     200  {object} handlers.Envelope
// @Failure     500  {object} handlers.Envelope "Database unreachable"
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
	defer cancel()

	if err := h.health(ctx); err != nil {
		msg := "database connection failed"
		c.AbortWithStatusJSON(http.StatusInternalServerError, Envelope{
			Data: HealthStatus{
				Status:    "unhealthy",
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
			Error: &msg,
		})
		return
	}

	ok(c, http.StatusOK, HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  "connected",
	})
}

// Info godoc
// @ID          info
// @Summary     API capability listing
// @Description Returns a static description of the available routes and the query catalog names.
// @Tags        Service
// @Produce     json
//
// @Success     200  {object} handlers.Envelope
// @Router      /info [get]
func (h *Handlers) Info(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{
		"name":        "TradeAnalyzer API",
		"version":     "1.0.0",
		"description": "CRUD proxy for trading strategies and analyses",
		"endpoints": gin.H{
			"GET /api/strategies":            "list strategies by owner (or public catalog)",
			"POST /api/strategies":           "create a strategy",
			"PUT /api/strategies/:id":        "full-replace update of a strategy",
			"DELETE /api/strategies/:id":     "delete a strategy",
			"GET /api/analysis_results":      "list analyses by owner",
			"POST /api/analysis_results":     "record an analysis",
			"DELETE /api/analysis_results/:id": "delete an analysis",
			"GET /api/users":                 "look up a user by telegram id",
			"POST /api/users":                "create or refresh a user",
			"POST /api/user_events":          "append a user event",
			"GET /api/users/stats/:id":       "per-user resource counts",
			"POST /api/query":                "execute a named catalog statement",
			"POST /api/migrate":              "bulk import from the previous backend",
			"GET /api/health":                "liveness and database reachability",
		},
		"query_catalog": services.CatalogNames(),
	})
}

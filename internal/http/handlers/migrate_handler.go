// Migration HTTP handler.
//
// One-time bulk import of users, strategies, and analyses exported from the
// previously hosted backend. The import is idempotent: rows colliding with an
// existing unique key are skipped, so replaying an export is safe.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/services"
)

// MigrateResponse wraps the per-collection insert counts.
type MigrateResponse struct {
	Success  bool                    `json:"success"`
	Migrated services.ImportResult   `json:"migrated"`
}

// Migrate godoc
// @ID          migrate
// @Summary     Bulk import from the previous backend
// @Description Imports users/strategies/analyses with conflict-skip on unique keys. Replaying the same batch changes nothing.
// @Tags        Service
// @Accept      json
// @Produce     json
//
// @Param       body  body  services.ImportBatch  true  "Exported collections"
//
// @Success     200  {object} handlers.Envelope
// @Failure     400  {object} handlers.Envelope "Empty or malformed batch"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /migrate [post]
func (h *Handlers) Migrate(c *gin.Context) {
	var batch services.ImportBatch
	if err := c.ShouldBindJSON(&batch); err != nil {
		fail(c, http.StatusBadRequest, "invalid migration payload")
		return
	}

	res, err := h.migrate.Import(c.Request.Context(), batch)
	if err != nil {
		if errors.Is(err, services.ErrInvalidImport) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, MigrateResponse{Success: true, Migrated: res})
}

// Query catalog HTTP handler.
//
// The previous backend accepted raw SQL here behind a substring denylist.
// That control is documented as weak and is not reproduced: the endpoint now
// only executes statements registered in the fixed catalog. Every request
// that falls outside it, including any attempt to submit literal SQL, is
// rejected with 403 before reaching the database.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/services"
)

// QueryRequest selects a catalog statement by name with positional
// parameters. The legacy `sql` member is still parsed so that old clients
// get a deterministic 403 instead of a decode error.
type QueryRequest struct {
	Name   string        `json:"name"`
	Params []interface{} `json:"params"`
	SQL    string        `json:"sql"`
}

// ExecuteQuery godoc
// @ID          executeQuery
// @Summary     Execute a named catalog statement
// @Description Runs one of the fixed, parameterized statements listed by /api/info. Raw SQL is always rejected.
// @Tags        Service
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.QueryRequest  true  "Statement name and parameters"
//
// @Success     200  {object} handlers.Envelope
// @Failure     400  {object} handlers.Envelope "Missing statement name"
// @Failure     403  {object} handlers.Envelope "Statement not in catalog"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /query [post]
func (h *Handlers) ExecuteQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "statement name is required")
		return
	}

	// Legacy raw-SQL clients are refused outright, whatever the text says.
	if strings.TrimSpace(req.SQL) != "" {
		fail(c, http.StatusForbidden, "raw SQL is not accepted; use a named catalog statement")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		fail(c, http.StatusBadRequest, "statement name is required")
		return
	}

	rows, err := h.query.Execute(c.Request.Context(), req.Name, req.Params)
	if err != nil {
		if errors.Is(err, services.ErrUnknownStatement) {
			fail(c, http.StatusForbidden, err.Error())
			return
		}
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// Analysis HTTP handlers.
//
// This file exposes REST endpoints for the analysis resource, registered
// under both /api/analysis_results and /api/analyses for compatibility with
// the two generations of web-app clients:
//   - GET    list by owner
//   - POST   create
//   - DELETE /{id}
//
// Analyses are immutable; there is no update route.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/services"
)

// CreateAnalysisRequest is the JSON payload for recording an analysis. The
// answers and factor lists are opaque to the backend; the three factor lists
// are persisted as discrete columns.
type CreateAnalysisRequest struct {
	TelegramUserID  string           `json:"telegram_user_id" binding:"required" example:"12345"`
	UserData        services.Profile `json:"user_data"`
	StrategyID      string           `json:"strategy_id"`
	StrategyName    string           `json:"strategy_name"`
	Coin            string           `json:"coin" example:"BTC"`
	Answers         datatypes.JSON   `json:"answers"`
	PositiveFactors datatypes.JSON   `json:"positive_factors"`
	NegativeFactors datatypes.JSON   `json:"negative_factors"`
	NeutralFactors  datatypes.JSON   `json:"neutral_factors"`
	Recommendation  string           `json:"recommendation"`
}

// ListAnalyses godoc
// @ID          listAnalyses
// @Summary     List analyses
// @Description Returns the owner's analyses, most recent first. An unknown owner yields an empty list.
// @Tags        Analyses
// @Produce     json
//
// @Param       telegram_user_id  query  string  false "Owner telegram id"  example(12345)
// @Param       user_id           query  string  false "Owner internal id"
// @Param       limit             query  int     false "Maximum rows"       minimum(1) maximum(500)
//
// @Success     200  {object} handlers.Envelope
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /analysis_results [get]
func (h *Handlers) ListAnalyses(c *gin.Context) {
	telegramUserID, internalUserID := ownerParams(c)
	items, err := h.analyses.List(c.Request.Context(), telegramUserID, internalUserID, limitParam(c))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// CreateAnalysis godoc
// @ID          createAnalysis
// @Summary     Record an analysis
// @Description Resolves (or creates) the owner by telegram id and inserts a new analysis row.
// @Tags        Analyses
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateAnalysisRequest  true  "Analysis payload"
//
// @Success     201  {object} handlers.Envelope
// @Failure     400  {object} handlers.Envelope "Missing required input"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /analysis_results [post]
func (h *Handlers) CreateAnalysis(c *gin.Context) {
	var req CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "telegram_user_id is required")
		return
	}

	a, err := h.analyses.Create(c.Request.Context(), req.TelegramUserID, req.UserData, services.AnalysisInput{
		StrategyID:      req.StrategyID,
		StrategyName:    req.StrategyName,
		Coin:            req.Coin,
		Answers:         req.Answers,
		PositiveFactors: req.PositiveFactors,
		NegativeFactors: req.NegativeFactors,
		NeutralFactors:  req.NeutralFactors,
		Recommendation:  req.Recommendation,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyTelegramID) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, a)
}

// DeleteAnalysis godoc
// @ID          deleteAnalysis
// @Summary     Delete an analysis
// @Description Removes the analysis by id. Deleting a non-existent id succeeds with the same envelope.
// @Tags        Analyses
// @Produce     json
//
// @Param       id                path   string  true  "Analysis ID (UUID)"  format(uuid)
// @Param       telegram_user_id  query  string  true  "Caller telegram id"  example(12345)
//
// @Success     200  {object} handlers.Envelope
// @Failure     400  {object} handlers.Envelope "Missing required input"
// @Failure     403  {object} handlers.Envelope "Analysis belongs to another user"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /analysis_results/{id} [delete]
func (h *Handlers) DeleteAnalysis(c *gin.Context) {
	telegramUserID, _ := ownerParams(c)
	err := h.analyses.Delete(c.Request.Context(), telegramUserID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyTelegramID):
			fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrOwnershipMismatch):
			fail(c, http.StatusForbidden, err.Error())
		default:
			failErr(c, err)
		}
		return
	}
	ok(c, http.StatusOK, nil)
}

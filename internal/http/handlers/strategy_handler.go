// Strategy HTTP handlers.
//
// This file exposes REST endpoints for the strategy resource:
//   - GET    /api/strategies        (list by owner, or public catalog)
//   - POST   /api/strategies        (create)
//   - PUT    /api/strategies/{id}   (full-replace update)
//   - DELETE /api/strategies/{id}   (idempotent delete)
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/services"
)

//
// DTOs
//

// CreateStrategyRequest is the JSON payload for creating a strategy. The
// fields member is stored opaquely and returned as submitted.
type CreateStrategyRequest struct {
	TelegramUserID string           `json:"telegram_user_id" binding:"required" example:"12345"`
	UserData       services.Profile `json:"user_data"`
	Name           string           `json:"name" binding:"required,min=1,max=255" example:"Breakout"`
	Description    string           `json:"description" example:"Momentum breakout checklist"`
	Fields         datatypes.JSON   `json:"fields"`
	IsPublic       bool             `json:"is_public"`
}

// UpdateStrategyRequest is the JSON payload for a full-replace update.
// Omitted members are written as their zero values, not merged: leaving out
// fields empties the stored field list.
type UpdateStrategyRequest struct {
	TelegramUserID string         `json:"telegram_user_id" binding:"required" example:"12345"`
	Name           string         `json:"name" binding:"required,min=1,max=255"`
	Description    string         `json:"description"`
	Fields         datatypes.JSON `json:"fields"`
	IsPublic       bool           `json:"is_public"`
}

//
// Handlers
//

// ListStrategies godoc
// @ID          listStrategies
// @Summary     List strategies
// @Description Returns the owner's strategies (most recent first), or the public catalog when no owner is given. An unknown owner yields an empty list.
// @Tags        Strategies
// @Produce     json
//
// @Param       telegram_user_id  query  string  false "Owner telegram id"  example(12345)
// @Param       user_id           query  string  false "Owner internal id"
// @Param       limit             query  int     false "Maximum rows"       minimum(1) maximum(500)
//
// @Success     200  {object} handlers.Envelope
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /strategies [get]
func (h *Handlers) ListStrategies(c *gin.Context) {
	telegramUserID, internalUserID := ownerParams(c)
	items, err := h.strategies.List(c.Request.Context(), telegramUserID, internalUserID, limitParam(c))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// CreateStrategy godoc
// @ID          createStrategy
// @Summary     Create a strategy
// @Description Resolves (or creates) the owner by telegram id and inserts a new strategy.
// @Tags        Strategies
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateStrategyRequest  true  "Create strategy payload"
//
// @Success     201  {object} handlers.Envelope
// @Failure     400  {object} handlers.Envelope "Missing required input"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /strategies [post]
func (h *Handlers) CreateStrategy(c *gin.Context) {
	var req CreateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "telegram_user_id and name are required")
		return
	}

	s, err := h.strategies.Create(c.Request.Context(), req.TelegramUserID, req.UserData,
		strings.TrimSpace(req.Name), req.Description, req.Fields, req.IsPublic)
	if err != nil {
		if errors.Is(err, services.ErrEmptyTelegramID) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, s)
}

// UpdateStrategy godoc
// @ID          updateStrategy
// @Summary     Replace a strategy
// @Description Full-replace of name/description/fields/is_public. The caller must own the strategy; updating a missing id answers data:null.
// @Tags        Strategies
// @Accept      json
// @Produce     json
//
// @Param       id    path  string  true  "Strategy ID (UUID)"  format(uuid)
// @Param       body  body  handlers.UpdateStrategyRequest  true  "Replacement payload"
//
// @Success     200  {object} handlers.Envelope
// @Failure     400  {object} handlers.Envelope "Missing required input"
// @Failure     403  {object} handlers.Envelope "Strategy belongs to another user"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /strategies/{id} [put]
func (h *Handlers) UpdateStrategy(c *gin.Context) {
	var req UpdateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "telegram_user_id and name are required")
		return
	}

	s, err := h.strategies.Update(c.Request.Context(), req.TelegramUserID, c.Param("id"),
		strings.TrimSpace(req.Name), req.Description, req.Fields, req.IsPublic)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStrategyNotFound):
			// Matches the original backend: updating a vanished row is a
			// no-op success with a null payload, not a 404.
			ok(c, http.StatusOK, nil)
		case errors.Is(err, services.ErrEmptyTelegramID):
			fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrOwnershipMismatch):
			fail(c, http.StatusForbidden, err.Error())
		default:
			failErr(c, err)
		}
		return
	}
	ok(c, http.StatusOK, s)
}

// DeleteStrategy godoc
// @ID          deleteStrategy
// @Summary     Delete a strategy
// @Description Removes the strategy by id. Deleting a non-existent id succeeds with the same envelope, so retries are safe.
// @Tags        Strategies
// @Produce     json
//
// @Param       id                path   string  true  "Strategy ID (UUID)"  format(uuid)
// @Param       telegram_user_id  query  string  true  "Caller telegram id"  example(12345)
//
// @Success     200  {object} handlers.Envelope
// @Failure     400  {object} handlers.Envelope "Missing required input"
// @Failure     403  {object} handlers.Envelope "Strategy belongs to another user"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /strategies/{id} [delete]
func (h *Handlers) DeleteStrategy(c *gin.Context) {
	telegramUserID, _ := ownerParams(c)
	err := h.strategies.Delete(c.Request.Context(), telegramUserID, c.Param("id"))
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

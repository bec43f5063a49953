// User, user-event, and stats HTTP handlers.
//
// This file exposes:
//   - GET  /api/users                      (lookup by telegram id)
//   - POST /api/users                      (upsert-with-refresh)
//   - POST /api/user_events                (append analytics event)
//   - GET  /api/users/stats/{telegram_id}  (aggregate counts)
//   - GET  /api/stats/{telegram_id}        (alias)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/services"
)

// UpsertUserRequest is the JSON payload for creating or refreshing a user.
// telegram_id is the external identity; profile fields are optional.
type UpsertUserRequest struct {
	TelegramID string `json:"telegram_id" binding:"required" example:"12345"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

// CreateUserEventRequest is the JSON payload for appending an analytics
// event. The event_data member is stored opaquely.
type CreateUserEventRequest struct {
	TelegramUserID string           `json:"telegram_user_id" binding:"required" example:"12345"`
	UserData       services.Profile `json:"user_data"`
	EventType      string           `json:"event_type" binding:"required" example:"app_opened"`
	EventData      datatypes.JSON   `json:"event_data"`
}

// LookupUsers godoc
// @ID          lookupUsers
// @Summary     Look up a user
// @Description Returns the user row for the given telegram id, or an empty list when unknown.
// @Tags        Users
// @Produce     json
//
// @Param       telegram_user_id  query  string  false "Telegram id"  example(12345)
// @Param       telegram_id       query  string  false "Telegram id (alias)"
//
// @Success     200  {object} handlers.Envelope
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /users [get]
func (h *Handlers) LookupUsers(c *gin.Context) {
	telegramUserID, _ := ownerParams(c)
	users, err := h.users.Lookup(c.Request.Context(), telegramUserID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, users)
}

// UpsertUser godoc
// @ID          upsertUser
// @Summary     Create or refresh a user
// @Description Inserts a user row keyed by telegram_id, or refreshes the profile fields of the existing row. The same internal id is returned either way.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.UpsertUserRequest  true  "User payload"
//
// @Success     200  {object} handlers.Envelope
// @Failure     400  {object} handlers.Envelope "Missing required input"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /users [post]
func (h *Handlers) UpsertUser(c *gin.Context) {
	var req UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "telegram_id is required")
		return
	}

	u, err := h.users.Ensure(c.Request.Context(), req.TelegramID, services.Profile{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyTelegramID) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, u)
}

// CreateUserEvent godoc
// @ID          createUserEvent
// @Summary     Append a user event
// @Description Records an append-only analytics event, creating the user row first when necessary.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateUserEventRequest  true  "Event payload"
//
// @Success     201  {object} handlers.Envelope
// @Failure     400  {object} handlers.Envelope "Missing required input"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /user_events [post]
func (h *Handlers) CreateUserEvent(c *gin.Context) {
	var req CreateUserEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "telegram_user_id and event_type are required")
		return
	}

	ev, err := h.users.RecordEvent(c.Request.Context(), req.TelegramUserID, req.UserData, req.EventType, req.EventData)
	if err != nil {
		if errors.Is(err, services.ErrEmptyTelegramID) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, ev)
}

// UserStats godoc
// @ID          userStats
// @Summary     Per-user resource counts
// @Description Returns the number of strategies and analyses owned by the given telegram id. Unknown ids yield zero counts.
// @Tags        Users
// @Produce     json
//
// @Param       telegram_user_id  path  string  true  "Telegram id"  example(12345)
//
// @Success     200  {object} handlers.Envelope
// @Failure     400  {object} handlers.Envelope "Missing required input"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /users/stats/{telegram_user_id} [get]
func (h *Handlers) UserStats(c *gin.Context) {
	stats, err := h.users.Stats(c.Request.Context(), c.Param("telegram_user_id"))
	if err != nil {
		if errors.Is(err, services.ErrEmptyTelegramID) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, stats)
}

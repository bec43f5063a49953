// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints. Every route answers with the same JSON envelope so clients can
// branch on a single shape:
//
//	HTTP/1.1 200 OK
//	{ "data": { "id": "…", "name": "Breakout" }, "error": null }
//
//	HTTP/1.1 400 Bad Request
//	{ "data": null, "error": "telegram_user_id is required" }
//
// Conventions:
//   - fail() centralizes error formatting; 5xx responses carry a sanitized
//     message while the underlying error is written to the request-scoped log.
//   - ok() writes the success envelope; data may be an empty slice but is
//     never omitted.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/http/middleware"
)

// Envelope is the fixed wrapper shape returned by every endpoint. Exactly one
// of Data and Error is non-null.
type Envelope struct {
	// Data holds the result payload, or null on failure.
	Data interface{} `json:"data"`
	// Error is a human-readable message, or null on success.
	Error *string `json:"error"`
}

// genericServerError is the sanitized message exposed on 5xx responses; the
// underlying cause goes to the logs only.
const genericServerError = "internal server error"

// ok writes a success envelope with the given HTTP status.
func ok(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Data: data, Error: nil})
}

// fail aborts the request with an error envelope. Messages passed here are
// exposed to the client verbatim, so callers must not forward raw database
// errors; use failErr for that.
func fail(c *gin.Context, status int, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", msg).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, Envelope{Data: nil, Error: &msg})
}

// failErr logs the underlying error with request context and answers with a
// sanitized 500 envelope. No database or driver detail crosses the HTTP
// boundary.
func failErr(c *gin.Context, err error) {
	lg := middleware.LoggerFrom(c)
	lg.Error().
		Err(err).
		Int("status", http.StatusInternalServerError).
		Msg("api error")
	msg := genericServerError
	c.AbortWithStatusJSON(http.StatusInternalServerError, Envelope{Data: nil, Error: &msg})
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) call Fail to return consistent
// envelopes for fallback routes without depending on unexported helpers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

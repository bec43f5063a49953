// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides a per-request deadline. The previous backend had no
// bound on statement or request duration; imposing one here is an added
// guarantee, not a reproduction of existing behavior. Handlers pass
// c.Request.Context() into every service call, so the deadline propagates
// down to the database driver and cancels slow statements.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestTimeout wraps each request context with a deadline of d. A d <= 0
// disables the middleware.
func RequestTimeout(d time.Duration) gin.HandlerFunc {
	if d <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

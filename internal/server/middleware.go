package server

import (
	"time"

	"live-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityMiddleware copies the authenticated actor id supplied by the
// identity provider into the request context. Handlers for mutating calls
// reject requests where no id arrived.
func IdentityMiddleware(c *gin.Context) {
	if userID := c.GetHeader("X-User-ID"); userID != "" {
		c.Set("actor_id", userID)
	}
	c.Next()
}

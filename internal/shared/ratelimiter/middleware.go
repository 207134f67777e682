package ratelimiter

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"task_backend/internal/shared/httpx"
)

// Middleware returns a gin middleware limiting requests per client IP. A
// limiter backend failure is logged and the request passes through.
func Middleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			slog.Warn("rate limiter unavailable", "error", err, "remote_addr", c.ClientIP())
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				httpx.Response{Success: false, Message: "Too many requests"})
			return
		}
		c.Next()
	}
}

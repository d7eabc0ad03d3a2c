package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// Recovery logs panics and slow-path errors and answers with a generic 500.
// Internal detail stays in the logs and never reaches the client.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Error("panic recovered",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
					"request_id", c.GetString(RequestIDKey),
					"latency", time.Since(start),
					"panic", recovered,
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Something went wrong. Please try again later.",
				})
				return
			}

			for _, err := range c.Errors {
				logger.Error("request error",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"status", c.Writer.Status(),
					"request_id", c.GetString(RequestIDKey),
					"latency", time.Since(start),
					"error", err.Error(),
				)
			}
		}()

		c.Next()
	}
}

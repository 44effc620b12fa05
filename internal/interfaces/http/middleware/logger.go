package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"fundraising.backend/pkg/logger"
)

// LoggerMiddleware logs each HTTP request
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		logger.LogRequest(
			c.Request.Context(),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency,
			c.ClientIP(),
		)
	}
}

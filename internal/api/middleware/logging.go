package middleware

import (
	"time"

	"folio/internal/logging"
	"folio/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger is a middleware that logs request information
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger := logging.GetGlobalLogger()
		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}

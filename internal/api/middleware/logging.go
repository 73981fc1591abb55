package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pbsgifts/promoweb/internal/logging"
	"github.com/pbsgifts/promoweb/internal/utils"
)

// RequestLogger is a middleware that logs request information through the
// singleton logger. Logging is gated by LOG_REQUESTS inside the logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)

		logger := logging.GetLogger()
		logger.LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			latency.String(),
		)
	}
}

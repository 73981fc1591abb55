package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/pbsgifts/promoweb/internal/api/dto/common"
	"github.com/pbsgifts/promoweb/internal/logging"
)

// HandleAPIError logs the underlying error server-side and returns only the
// generic message to the caller.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.JSON(status, common.ErrorResponse{Error: message})
}

// HandleSkipped writes the success-shaped payload used when a submission is
// accepted but deliberately not delivered.
func HandleSkipped(c *gin.Context, marker string) {
	c.JSON(200, common.SkippedResponse{OK: true, Skipped: marker})
}

package utils

import (
	"github.com/pbsgifts/promoweb/internal/logging"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logger := logging.GetLogger()
	logger.Error("%s: %v", message, err)
}

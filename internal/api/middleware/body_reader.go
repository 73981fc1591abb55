package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pbsgifts/promoweb/internal/api/constants"
)

// maxBodySize caps form submissions well above any legitimate payload.
const maxBodySize = 1 * 1024 * 1024 // 1 MB

// PreserveRequestBody middleware reads the request body once and restores it
// so the normalizer and any later reader both see the full payload.
func PreserveRequestBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize+1))
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		if int64(len(bodyBytes)) > maxBodySize {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}

		// Restore the body for subsequent middleware
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		c.Set(constants.ContextKeyRawBody, bodyBytes)

		c.Next()
	}
}

package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP extracts the client address used for rate-limit keys. The
// X-Forwarded-For list wins (leftmost entry is the original client), then
// X-Real-IP, then a loopback fallback. Both headers are spoofable; this is
// an abuse speed bump, not a security boundary.
func GetRealIP(c *gin.Context) string {
	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor != "" {
		// X-Forwarded-For can be a comma-separated list
		// Format: client, proxy1, proxy2, ...
		ips := strings.Split(forwardedFor, ",")
		if clientIP := strings.TrimSpace(ips[0]); clientIP != "" {
			return clientIP
		}
	}

	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	return "127.0.0.1"
}

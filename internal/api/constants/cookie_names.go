package constants

// Cookie names used in the application
const (
	// Quote rate-limit cookie (HttpOnly, signed token, 2h window)
	CookieQuoteRateLimit = "qrl2h"

	// Cookie paths
	CookiePathRoot = "/" // Root path for cookies available throughout the site

	// Cookie duration in seconds
	CookieDurationWeek = 604800 // 7 days
)

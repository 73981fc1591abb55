package common

// FieldError describes a single violated validation rule. Field carries the
// caller-facing label, Path the structured locator of the offending input
// (indexed array segments collapsed, e.g. "items[].qty").
type FieldError struct {
	Field   string `json:"field"`
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationFailureResponse is returned with HTTP 400 when one or more field
// rules are violated. Error joins every violation; Errors lists them in order.
type ValidationFailureResponse struct {
	Error  string       `json:"error"`
	Errors []FieldError `json:"errors"`
}

// SkippedResponse is a success-shaped payload for submissions that were
// accepted but deliberately not delivered (honeypot hit or silent rate
// limit). Automated abusers cannot tell it apart from a real acceptance.
type SkippedResponse struct {
	OK      bool   `json:"ok"`
	Skipped string `json:"skipped"`
}

// RateLimitedResponse is returned with HTTP 429 by the contact endpoint's
// memory-keyed guard.
type RateLimitedResponse struct {
	Error             string `json:"error"`
	RetryAfterMinutes int    `json:"retryAfterMinutes"`
}

// ErrorResponse carries a single caller-facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Skip markers used by SkippedResponse.
const (
	SkipHoneypot  = "honeypot"
	SkipRateLimit = "rate_limit"
)

package constants

// Context keys for validated requests
const (
	// Submission context keys
	ContextKeyContact = "contactSubmission"
	ContextKeyQuote   = "quoteSubmission"

	// Request plumbing
	ContextKeyRequestID = "RequestID"
	ContextKeyRawBody   = "rawBody"
)

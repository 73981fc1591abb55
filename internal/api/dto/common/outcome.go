package common

// Outcome classifies how a form submission was resolved. Both endpoints
// reduce to one of these variants, which keeps response shaping and metrics
// labelling in one place instead of duplicated per handler.
type Outcome string

const (
	OutcomeDelivered      Outcome = "delivered"
	OutcomeSkippedHoney   Outcome = "skipped_honeypot"
	OutcomeSkippedLimited Outcome = "skipped_rate_limit"
	OutcomeRejected       Outcome = "rejected"
	OutcomeRateLimited    Outcome = "rate_limited"
	OutcomeConfigError    Outcome = "config_error"
	OutcomeDeliveryFailed Outcome = "delivery_failed"
)

package contact

// SubmissionRequest represents a contact form submission. Website is the
// honeypot field: hidden on the real form, only automated fillers populate it.
type SubmissionRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,ecmobile"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,maxwords=200"`
	Website string `json:"website"`
}

// AcceptedResponse is returned after a successful delivery.
type AcceptedResponse struct {
	OK          bool   `json:"ok"`
	ID          string `json:"id"`
	To          string `json:"to"`
	SubmittedAt string `json:"submittedAt"`
	Stream      string `json:"stream"`
}

// StatusResponse answers the GET liveness probe.
type StatusResponse struct {
	Status string `json:"status"`
	Stream string `json:"stream"`
}

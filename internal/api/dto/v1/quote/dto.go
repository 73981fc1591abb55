package quote

// Customer identifies who is requesting the quote.
type Customer struct {
	Name  string `json:"name" validate:"required,min=5,max=30,personname"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,ecmobile"`
}

// Item is one cart entry of the quote request.
type Item struct {
	Name string `json:"name" validate:"required"`
	Qty  int    `json:"qty" validate:"min=1"`
}

// SubmissionRequest represents a quote (RFQ) form submission. Website is the
// honeypot field.
type SubmissionRequest struct {
	Customer Customer `json:"customer"`
	Notes    string   `json:"notes" validate:"omitempty,max=1000"`
	Items    []Item   `json:"items" validate:"min=1,dive"`
	Website  string   `json:"website"`
}

// AcceptedResponse is returned after a successful delivery.
type AcceptedResponse struct {
	OK        bool   `json:"ok"`
	MessageID string `json:"messageId"`
	To        string `json:"to"`
	Stream    string `json:"stream"`
}

// StatusResponse answers the GET liveness probe.
type StatusResponse struct {
	Status      string  `json:"status"`
	Stream      string  `json:"stream"`
	WindowHours float64 `json:"windowHours"`
	Limit       int     `json:"limit"`
}

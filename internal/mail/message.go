package mail

import (
	"context"
)

// Message is a composed outbound email.
type Message struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
	Stream   string
}

// Receipt is the provider's confirmation of an accepted message.
type Receipt struct {
	MessageID   string
	To          string
	SubmittedAt string
}

// Sender delivers a composed message through the transactional-email
// provider. A returned error is terminal for the current request: no retry,
// no queueing.
type Sender interface {
	Send(ctx context.Context, msg Message) (*Receipt, error)
}

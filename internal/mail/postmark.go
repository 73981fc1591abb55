package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultPostmarkURL = "https://api.postmarkapp.com"

// PostmarkClient sends messages through the Postmark HTTP API.
type PostmarkClient struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewPostmarkClient creates a Postmark client for the given server token.
func NewPostmarkClient(token string) *PostmarkClient {
	return &PostmarkClient{
		token:   token,
		baseURL: defaultPostmarkURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewPostmarkClientWithURL is used by tests to point the client at a stub
// server.
func NewPostmarkClientWithURL(token, baseURL string) *PostmarkClient {
	c := NewPostmarkClient(token)
	c.baseURL = baseURL
	return c
}

// postmarkEmail mirrors Postmark's /email request body.
type postmarkEmail struct {
	From          string `json:"From"`
	To            string `json:"To"`
	ReplyTo       string `json:"ReplyTo,omitempty"`
	Subject       string `json:"Subject"`
	HtmlBody      string `json:"HtmlBody"`
	TextBody      string `json:"TextBody"`
	MessageStream string `json:"MessageStream"`
}

// postmarkResult mirrors Postmark's /email response body. ErrorCode is zero
// on success; otherwise Message describes the rejection.
type postmarkResult struct {
	MessageID   string `json:"MessageID"`
	To          string `json:"To"`
	SubmittedAt string `json:"SubmittedAt"`
	ErrorCode   int    `json:"ErrorCode"`
	Message     string `json:"Message"`
}

// Send submits the message and returns the delivery receipt.
func (p *PostmarkClient) Send(ctx context.Context, msg Message) (*Receipt, error) {
	if p.token == "" {
		return nil, fmt.Errorf("postmark server token not configured")
	}

	payload := postmarkEmail{
		From:          msg.From,
		To:            msg.To,
		ReplyTo:       msg.ReplyTo,
		Subject:       msg.Subject,
		HtmlBody:      msg.HTMLBody,
		TextBody:      msg.TextBody,
		MessageStream: msg.Stream,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal postmark message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/email", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create postmark request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Postmark-Server-Token", p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send postmark message: %w", err)
	}
	defer resp.Body.Close()

	var result postmarkResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode postmark response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || result.ErrorCode != 0 {
		return nil, fmt.Errorf("postmark rejected message (status %d, code %d): %s", resp.StatusCode, result.ErrorCode, result.Message)
	}

	return &Receipt{
		MessageID:   result.MessageID,
		To:          result.To,
		SubmittedAt: result.SubmittedAt,
	}, nil
}

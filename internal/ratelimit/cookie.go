package ratelimit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// Quote-form cookie guard defaults: one submission per browser every two
// hours, carried in a signed cookie that outlives the window by a week.
const (
	QuoteWindow = 2 * time.Hour
	QuoteLimit  = 1
)

// tokenPayload is the signed cookie content. Only the most recent stamp is
// retained so the cookie stays small.
type tokenPayload struct {
	Stamps []int64 `json:"stamps"`
}

// CookieLimiter implements the signed-cookie abuse guard. All state lives
// in the client-held token; the server keeps nothing, so no locking is
// needed. The flip side is that a burst of requests before the first cookie
// round-trip completes is not caught by this mechanism alone.
type CookieLimiter struct {
	secret []byte
	window time.Duration
	limit  int
}

func NewCookieLimiter(secret string, window time.Duration, limit int) *CookieLimiter {
	return &CookieLimiter{
		secret: []byte(secret),
		window: window,
		limit:  limit,
	}
}

func (l *CookieLimiter) Window() time.Duration { return l.window }
func (l *CookieLimiter) Limit() int            { return l.limit }

func (l *CookieLimiter) sign(payload string) string {
	mac := hmac.New(sha256.New, l.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Mint serializes and signs the given stamps into a token of the form
// base64url(payload) + "." + base64url(signature).
func (l *CookieLimiter) Mint(stamps []int64) (string, error) {
	raw, err := json.Marshal(tokenPayload{Stamps: stamps})
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(raw)
	return payload + "." + l.sign(payload), nil
}

// Verify authenticates a token and returns its stamps. An absent, truncated,
// undecodable or tampered token is reported as not present; forged state is
// never trusted. The signature comparison is constant time.
func (l *CookieLimiter) Verify(token string) ([]int64, bool) {
	if token == "" {
		return nil, false
	}
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, false
	}

	expected := l.sign(parts[0])
	if !hmac.Equal([]byte(parts[1]), []byte(expected)) {
		return nil, false
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, false
	}
	var payload tokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	return payload.Stamps, true
}

// Active filters stamps down to those still inside the window at now.
func (l *CookieLimiter) Active(stamps []int64, now time.Time) []int64 {
	active := make([]int64, 0, len(stamps))
	for _, ms := range stamps {
		if now.Sub(time.UnixMilli(ms)) < l.window {
			active = append(active, ms)
		}
	}
	return active
}

// Exceeded reports whether the in-window submission count has reached the
// limit.
func (l *CookieLimiter) Exceeded(stamps []int64, now time.Time) bool {
	return len(l.Active(stamps, now)) >= l.limit
}

// Seal mints the token to set after a successful delivery: the current
// stamp replaces everything else, keeping the payload bounded.
func (l *CookieLimiter) Seal(now time.Time) (string, error) {
	return l.Mint([]int64{now.UnixMilli()})
}

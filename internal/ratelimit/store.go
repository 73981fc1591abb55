package ratelimit

import (
	"context"
	"strings"
	"time"
)

// Store persists the last-accepted-submission stamp per rate-limit key.
// The in-memory implementation is the default; a Redis-backed one can be
// swapped in for multi-instance deployments without touching the guard.
type Store interface {
	Get(ctx context.Context, key string) (time.Time, bool, error)
	Set(ctx context.Context, key string, t time.Time) error
	Delete(ctx context.Context, key string) error
}

// Key builds the composite guard key. The submitted email is part of the
// key, so rotating the email field bypasses the per-address cooldown; that
// is inherited product behavior, kept here in one place on purpose.
func Key(clientIP, email string) string {
	return clientIP + ":" + strings.ToLower(strings.TrimSpace(email))
}

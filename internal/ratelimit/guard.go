package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"
)

// ContactWindow is the cooldown between accepted contact submissions from
// the same (address, email) pair.
const ContactWindow = time.Hour

// Guard implements the memory-keyed abuse guard for the contact form. The
// check-and-reserve step runs inside a single critical section so two
// near-simultaneous requests with the same key cannot both pass.
type Guard struct {
	store  Store
	window time.Duration

	mu  sync.Mutex
	now func() time.Time
}

func NewGuard(store Store, window time.Duration) *Guard {
	return &Guard{
		store:  store,
		window: window,
		now:    time.Now,
	}
}

// Reserve checks the cooldown for (clientIP, email) and, when allowed,
// stamps the slot with the current time. The returned release func undoes
// the reservation; callers invoke it when the downstream delivery fails so
// a failed send never consumes the cooldown slot.
//
// When the key is still inside the window, retryAfter is the remaining
// cooldown and release is nil. A submission at exactly the window boundary
// is allowed.
func (g *Guard) Reserve(ctx context.Context, clientIP, email string) (retryAfter time.Duration, release func(), err error) {
	key := Key(clientIP, email)

	g.mu.Lock()
	defer g.mu.Unlock()

	prev, had, err := g.store.Get(ctx, key)
	if err != nil {
		return 0, nil, err
	}

	now := g.now()
	if had {
		if elapsed := now.Sub(prev); elapsed < g.window {
			return g.window - elapsed, nil, nil
		}
	}

	if err := g.store.Set(ctx, key, now); err != nil {
		return 0, nil, err
	}

	release = func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if had {
			_ = g.store.Set(context.Background(), key, prev)
		} else {
			_ = g.store.Delete(context.Background(), key)
		}
	}
	return 0, release, nil
}

// RetryAfterMinutes converts a remaining cooldown to the caller-visible
// hint, rounded up and never below one minute.
func RetryAfterMinutes(d time.Duration) int {
	minutes := int(math.Ceil(d.Minutes()))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

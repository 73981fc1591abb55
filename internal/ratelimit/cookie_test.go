package ratelimit

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter() *CookieLimiter {
	return NewCookieLimiter("test-secret", QuoteWindow, QuoteLimit)
}

func TestCookieLimiter_RoundTrip(t *testing.T) {
	l := newTestLimiter()
	stamp := time.Now().UnixMilli()

	token, err := l.Mint([]int64{stamp})
	require.NoError(t, err)

	stamps, ok := l.Verify(token)
	require.True(t, ok)
	require.Len(t, stamps, 1)
	assert.Equal(t, stamp, stamps[0])
}

func TestCookieLimiter_TamperedTokenTreatedAsAbsent(t *testing.T) {
	l := newTestLimiter()
	token, err := l.Mint([]int64{time.Now().UnixMilli()})
	require.NoError(t, err)

	flip := func(s string, i int) string {
		b := []byte(s)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		return string(b)
	}

	// One altered character anywhere invalidates the token
	dot := strings.Index(token, ".")
	inPayload := flip(token, 0)
	inSignature := flip(token, dot+1)

	_, ok := l.Verify(inPayload)
	assert.False(t, ok)
	_, ok = l.Verify(inSignature)
	assert.False(t, ok)
}

func TestCookieLimiter_MalformedTokensTreatedAsAbsent(t *testing.T) {
	l := newTestLimiter()

	for _, token := range []string{
		"",
		"just-one-part",
		".",
		"payload.",
		".signature",
		"a.b.c",
		"!!!.???",
	} {
		_, ok := l.Verify(token)
		assert.False(t, ok, "token %q", token)
	}
}

func TestCookieLimiter_DifferentSecretRejects(t *testing.T) {
	token, err := newTestLimiter().Mint([]int64{time.Now().UnixMilli()})
	require.NoError(t, err)

	other := NewCookieLimiter("other-secret", QuoteWindow, QuoteLimit)
	_, ok := other.Verify(token)
	assert.False(t, ok)
}

func TestCookieLimiter_ActiveFiltersWindow(t *testing.T) {
	l := newTestLimiter()
	now := time.Now()

	fresh := now.Add(-time.Hour).UnixMilli()
	stale := now.Add(-3 * time.Hour).UnixMilli()

	active := l.Active([]int64{stale, fresh}, now)
	assert.Equal(t, []int64{fresh}, active)
}

func TestCookieLimiter_Exceeded(t *testing.T) {
	l := newTestLimiter()
	now := time.Now()

	assert.False(t, l.Exceeded(nil, now))
	assert.False(t, l.Exceeded([]int64{now.Add(-3 * time.Hour).UnixMilli()}, now))
	assert.True(t, l.Exceeded([]int64{now.Add(-time.Minute).UnixMilli()}, now))
}

func TestCookieLimiter_SealKeepsSingleStamp(t *testing.T) {
	l := newTestLimiter()
	now := time.Now()

	token, err := l.Seal(now)
	require.NoError(t, err)

	stamps, ok := l.Verify(token)
	require.True(t, ok)
	require.Len(t, stamps, 1)
	assert.Equal(t, now.UnixMilli(), stamps[0])
}

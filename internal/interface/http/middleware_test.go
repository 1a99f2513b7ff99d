package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-astrologer/internal/infra/config"
)

func newLimiterAt(start time.Time, clock *time.Time) *ipRateLimiter {
	limiter := newIPRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 1})
	limiter.now = func() time.Time { return *clock }
	limiter.lastSweep = start
	return limiter
}

func TestIPRateLimiterRefills(t *testing.T) {
	now := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
	limiter := newLimiterAt(now, &now)

	_, ok := limiter.allow("192.0.2.1")
	require.True(t, ok)

	wait, ok := limiter.allow("192.0.2.1")
	require.False(t, ok)
	require.InDelta(t, float64(time.Second), float64(wait), float64(time.Millisecond))

	now = now.Add(2 * time.Second)
	_, ok = limiter.allow("192.0.2.1")
	require.True(t, ok)
}

func TestIPRateLimiterSweepsIdleVisitorsPeriodically(t *testing.T) {
	now := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
	start := now
	limiter := newLimiterAt(start, &now)

	_, _ = limiter.allow("192.0.2.1")
	now = now.Add(4 * time.Minute)
	_, _ = limiter.allow("192.0.2.2")
	require.Len(t, limiter.visitors, 2)

	now = start.Add(5*time.Minute + time.Second)
	_, _ = limiter.allow("192.0.2.2")
	require.Len(t, limiter.visitors, 1)
	require.Equal(t, now, limiter.lastSweep)

	now = now.Add(time.Minute)
	_, _ = limiter.allow("192.0.2.3")
	require.Len(t, limiter.visitors, 2)
	require.NotEqual(t, now, limiter.lastSweep)
}

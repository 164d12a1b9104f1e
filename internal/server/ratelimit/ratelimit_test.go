package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_Allow(t *testing.T) {
	bucket := newTokenBucket(3, 1.0)

	for i := 0; i < 3; i++ {
		assert.True(t, bucket.allow(), "request %d should be allowed", i)
	}
	assert.False(t, bucket.allow(), "request beyond capacity should be denied")
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(1, 100.0) // 100 tokens per second

	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, bucket.allow(), "bucket should refill after waiting")
}

func TestTokenBucket_RetryAfter(t *testing.T) {
	bucket := newTokenBucket(1, 2.0)

	assert.Equal(t, time.Duration(0), bucket.retryAfter())

	require.True(t, bucket.allow())
	retry := bucket.retryAfter()
	assert.Greater(t, retry, time.Duration(0))
	assert.LessOrEqual(t, retry, 500*time.Millisecond)
}

func TestLimiter_PerClient(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:   true,
		PerMinute: 60,
		Burst:     2,
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-a")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("client-a")
	assert.True(t, allowed)
	allowed, retry := limiter.Allow("client-a")
	assert.False(t, allowed, "client-a exhausted its burst")
	assert.Greater(t, retry, time.Duration(0))

	// A different client has its own bucket.
	allowed, _ = limiter.Allow("client-b")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false, PerMinute: 1, Burst: 1})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("client")
		assert.True(t, allowed)
	}
}

func TestLimiter_BurstDefaultsToPerMinute(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, PerMinute: 5})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("client")
		assert.True(t, allowed, "request %d within burst", i)
	}
	allowed, _ := limiter.Allow("client")
	assert.False(t, allowed)
}

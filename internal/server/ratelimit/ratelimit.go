// Package ratelimit provides per-client rate limiting using a token bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket allows a certain number of requests per time window, with
// tokens refilling at a steady rate.
type TokenBucket struct {
	capacity   int        // Maximum tokens (burst capacity)
	refillRate float64    // Tokens per second
	tokens     float64    // Current tokens available
	lastRefill time.Time  // Last time tokens were refilled
	mu         sync.Mutex // Mutex for thread safety
}

// newTokenBucket creates a new token bucket with the specified capacity and refill rate.
func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity), // Start with full bucket
		lastRefill: time.Now(),
	}
}

// allow checks if a token is available and consumes it if so.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// retryAfter reports how long until a token will be available.
func (tb *TokenBucket) retryAfter() time.Duration {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	if tb.tokens >= 1.0 {
		return 0
	}
	needed := 1.0 - tb.tokens
	return time.Duration(needed / tb.refillRate * float64(time.Second))
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	PerMinute       int           // Sustained requests per client per minute
	Burst           int           // Burst capacity (defaults to PerMinute if 0)
	CleanupInterval time.Duration // How often idle client buckets are dropped
}

// DefaultConfig returns the built-in rate limiting defaults.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		PerMinute:       60,
		Burst:           10,
		CleanupInterval: 5 * time.Minute,
	}
}

// Limiter manages token buckets for multiple clients.
type Limiter struct {
	config *Config

	mu         sync.Mutex
	buckets    map[string]*TokenBucket
	lastAccess map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	limiter := &Limiter{
		config:     config,
		buckets:    make(map[string]*TokenBucket),
		lastAccess: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup()
	}

	return limiter
}

// Allow checks if a request from the given client is allowed.
// The second return is how long the client should wait before retrying
// when the request is denied.
func (l *Limiter) Allow(clientID string) (bool, time.Duration) {
	if !l.config.Enabled {
		return true, 0
	}

	bucket := l.getBucket(clientID)
	if bucket.allow() {
		return true, 0
	}
	return false, bucket.retryAfter()
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

func (l *Limiter) getBucket(clientID string) *TokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[clientID]
	if !ok {
		burst := l.config.Burst
		if burst <= 0 {
			burst = l.config.PerMinute
		}
		bucket = newTokenBucket(burst, float64(l.config.PerMinute)/60.0)
		l.buckets[clientID] = bucket
	}
	l.lastAccess[clientID] = time.Now()
	return bucket
}

// cleanup periodically drops buckets that have been idle for more than two
// cleanup intervals, so one-off clients do not accumulate forever.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupStop:
			return
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-2 * l.config.CleanupInterval)
			l.mu.Lock()
			for clientID, last := range l.lastAccess {
				if last.Before(cutoff) {
					delete(l.buckets, clientID)
					delete(l.lastAccess, clientID)
				}
			}
			l.mu.Unlock()
		}
	}
}

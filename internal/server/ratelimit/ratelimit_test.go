package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_ConsumesBurst(t *testing.T) {
	// Very slow refill so the burst is the only capacity within the test.
	bucket := newTokenBucket(3, 0.001)

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow(), "bucket should be empty after burst")
}

func TestTokenBucket_Refills(t *testing.T) {
	bucket := newTokenBucket(1, 100) // 100 tokens/second
	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, bucket.allow(), "bucket should refill within 20ms at 100/s")
}

func TestTokenBucket_Status(t *testing.T) {
	bucket := newTokenBucket(5, 0.001)
	remaining, resetTime := bucket.getStatus()
	assert.Equal(t, 5, remaining)
	assert.WithinDuration(t, time.Now(), resetTime, time.Second)

	bucket.allow()
	remaining, resetTime = bucket.getStatus()
	assert.Equal(t, 4, remaining)
	assert.True(t, resetTime.After(time.Now()), "partial bucket reports a future reset")
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	match := matchEndpoint("/api/plan", "POST", configs)
	require.NotNil(t, match)
	assert.Equal(t, 10, match.Limit)
	assert.Equal(t, time.Hour, match.Window)

	// Methods are matched exactly.
	assert.Nil(t, matchEndpoint("/api/plan", "GET", configs))

	// Trailing-slash configs match as prefixes.
	match = matchEndpoint("/runs/4e3f1a52/artifacts", "GET", configs)
	require.NotNil(t, match)
	assert.Equal(t, 120, match.Limit)

	assert.Nil(t, matchEndpoint("/api/unknown", "GET", configs))
}

func TestMatchEndpoint_HealthNeverLimited(t *testing.T) {
	match := matchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, match)
	assert.LessOrEqual(t, match.Limit, 0)
}

func newTestLimiter(configs []EndpointConfig) *Limiter {
	return NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		EndpointConfigs: configs,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
	})
}

func TestLimiter_EnforcesBurst(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/api/plan", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
	})
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.1", "/api/plan", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 10, info.Limit)

	allowed, _ = limiter.Allow("10.0.0.1", "/api/plan", "POST")
	assert.True(t, allowed)

	allowed, info = limiter.Allow("10.0.0.1", "/api/plan", "POST")
	assert.False(t, allowed, "third request exceeds burst of 2")
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_IsolatesClients(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/api/plan", Method: "POST", Limit: 10, Window: time.Hour, Burst: 1},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/api/plan", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/api/plan", "POST")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("10.0.0.2", "/api/plan", "POST")
	assert.True(t, allowed, "a different client gets its own bucket")
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.9": true},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/api/plan", "POST")
		assert.True(t, allowed, "whitelisted client is never limited")
	}

	allowed, _ := limiter.Allow("10.0.0.9", "/api/plan", "POST")
	assert.False(t, allowed, "blacklisted client is always denied")
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 200; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/api/plan", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := newTestLimiter(DefaultEndpointConfigs())
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_CleanupRemovesStaleBuckets(t *testing.T) {
	limiter := newTestLimiter(DefaultEndpointConfigs())
	defer limiter.Stop()

	limiter.Allow("10.0.0.1", "/api/careers", "GET")
	require.Len(t, limiter.buckets, 1)

	// Backdate the access time beyond the one-hour cutoff.
	limiter.accessMu.Lock()
	for key := range limiter.lastAccess {
		limiter.lastAccess[key] = time.Now().Add(-2 * time.Hour)
	}
	limiter.accessMu.Unlock()

	limiter.cleanupBuckets()
	assert.Empty(t, limiter.buckets)
	assert.Empty(t, limiter.lastAccess)
}

func TestLoadConfig_Defaults(t *testing.T) {
	config := LoadConfig()

	assert.True(t, config.Enabled)
	assert.Equal(t, 100, config.DefaultLimit)
	assert.Equal(t, time.Minute, config.DefaultWindow)
	assert.Equal(t, 5*time.Minute, config.CleanupInterval)
	assert.Empty(t, config.Whitelist)
	assert.Len(t, config.EndpointConfigs, 3)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")

	config := LoadConfig()

	assert.False(t, config.Enabled)
	assert.Equal(t, 42, config.DefaultLimit)
	assert.Equal(t, 30*time.Second, config.DefaultWindow)
	assert.Equal(t, map[string]bool{"10.0.0.1": true, "10.0.0.2": true}, config.Whitelist)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "not-a-number")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "soon")

	config := LoadConfig()

	assert.Equal(t, 100, config.DefaultLimit)
	assert.Equal(t, time.Minute, config.DefaultWindow)
}

func TestBucketKeysIncludeMethod(t *testing.T) {
	limiter := newTestLimiter(nil)
	defer limiter.Stop()

	limiter.Allow("10.0.0.1", "/api/thing", "GET")
	limiter.Allow("10.0.0.1", "/api/thing", "POST")

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	require.Len(t, limiter.buckets, 2)
	for key := range limiter.buckets {
		assert.Contains(t, key, "10.0.0.1:")
	}
}

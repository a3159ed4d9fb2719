package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minimalapi/minimalapi/internal/ratelimit"
)

const (
	// rateLimitIPPrefix is the Redis key prefix for IP rate limits.
	rateLimitIPPrefix = "ratelimit:ip:"
	// rateLimitIPTTL is the TTL for IP rate limit keys.
	rateLimitIPTTL = 10 * time.Second
)

// tokenBucketScript is a Lua script implementing the token bucket algorithm.
// It's atomic and handles token refill and consumption in a single operation.
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local rate = tonumber(ARGV[1])      -- tokens per second
	local burst = tonumber(ARGV[2])     -- max tokens (bucket capacity)
	local now = tonumber(ARGV[3])       -- current time in seconds
	local ttl = tonumber(ARGV[4])       -- TTL in seconds

	local data = redis.call('HMGET', key, 'tokens', 'last_update')
	local tokens = tonumber(data[1]) or burst
	local last_update = tonumber(data[2]) or now

	local elapsed = now - last_update
	tokens = math.min(burst, tokens + (elapsed * rate))

	local allowed = 0
	local retry_after = 0

	if tokens >= 1 then
		tokens = tokens - 1
		allowed = 1
	else
		retry_after = math.ceil((1 - tokens) / rate)
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_update', now)
	redis.call('EXPIRE', key, ttl)

	return {allowed, retry_after, math.floor(tokens)}
`)

// IPLimiter is a ratelimit.Limiter shared by all instances through Redis.
type IPLimiter struct {
	cache *Cache
	rps   int
	burst int
}

// NewIPLimiter returns a Redis-backed limiter allowing rps requests per second per IP.
func (c *Cache) NewIPLimiter(rps, burst int) *IPLimiter {
	return &IPLimiter{cache: c, rps: rps, burst: burst}
}

// Allow checks and updates the rate limit for an IP address.
// The IP is hashed to avoid storing raw addresses. Redis errors fail open.
func (l *IPLimiter) Allow(ctx context.Context, ip string) (*ratelimit.Result, error) {
	key := rateLimitIPPrefix + hashIP(ip)
	rate := float64(l.rps)
	now := time.Now().Unix()

	result, err := tokenBucketScript.Run(ctx, l.cache.client,
		[]string{key},
		rate, l.burst, now, int(rateLimitIPTTL.Seconds()),
	).Int64Slice()
	if err != nil {
		return &ratelimit.Result{
			Allowed:   true,
			Remaining: int64(l.burst),
			ResetAt:   time.Now().Add(time.Second),
		}, nil
	}

	return &ratelimit.Result{
		Allowed:    result[0] == 1,
		Remaining:  result[2],
		ResetAt:    time.Now().Add(time.Duration(float64(time.Second) / rate)),
		RetryAfter: time.Duration(result[1]) * time.Second,
	}, nil
}

// hashIP creates a truncated SHA256 hash of an IP address.
func hashIP(ip string) string {
	hash := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(hash[:8])
}

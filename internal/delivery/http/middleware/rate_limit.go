package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"emplynix-backend/internal/delivery/http/response"
	"emplynix-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis
	KeyPrefix string
}

// DefaultRateLimitConfig returns sensible defaults for API-wide limiting
func DefaultRateLimitConfig(limit, windowSeconds int) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    time.Duration(windowSeconds) * time.Second,
		KeyPrefix: "rl:ip:",
	}
}

// LoginRateLimitConfig returns a strict config for authentication endpoints
func LoginRateLimitConfig(limit, windowSeconds int) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    time.Duration(windowSeconds) * time.Second,
		KeyPrefix: "rl:login:",
	}
}

// Lua script for atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// startCleanup periodically drops expired in-memory entries
func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit limits requests per client IP within a sliding window, using
// Redis when available and an in-memory counter otherwise.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		count, retryAfter, err := checkRedis(c.Request.Context(), key, cfg)
		if err != nil {
			count, retryAfter = checkInMemory(key, cfg)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func checkRedis(ctx context.Context, key string, cfg RateLimitConfig) (int, time.Duration, error) {
	client := redis.Client()
	if client == nil {
		return 0, 0, goredis.ErrClosed
	}

	res, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, int(cfg.Window.Seconds())).Result()
	if err != nil {
		return 0, 0, err
	}

	values, ok := res.([]interface{})
	if !ok || len(values) != 2 {
		return 0, 0, goredis.ErrClosed
	}
	count, _ := values[0].(int64)
	ttl, _ := values[1].(int64)
	return int(count), time.Duration(ttl) * time.Second, nil
}

func checkInMemory(key string, cfg RateLimitConfig) (int, time.Duration) {
	now := time.Now()
	value, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(cfg.Window)})
	entry := value.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(cfg.Window)
	}
	entry.count++
	return entry.count, time.Until(entry.resetAt)
}

package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/i18n"
)

const (
	// defaultNumShards is the default number of shards for the rate limiter.
	defaultNumShards = 16
)

// visitor tracks rate limit state for a single identifier.
type visitor struct {
	tokens    int
	lastReset time.Time
}

// rateLimiterShard is a single shard of the rate limiter.
type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a fixed-window limiter sharded by identifier to reduce lock contention.
type RateLimiter struct {
	shards    []*rateLimiterShard
	numShards int
	rate      int
	window    time.Duration
	now       func() time.Time
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewRateLimiter creates a rate limiter allowing rate requests per window.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a rate limiter with a custom shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards:    shards,
		numShards: numShards,
		rate:      rate,
		window:    window,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) getShard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(rl.numShards)]
}

// allow consumes one token for identifier. It reports the remaining tokens
// and, when rejected, how long until the window resets.
func (rl *RateLimiter) allow(identifier string) (allowed bool, remaining int, retryAfter time.Duration) {
	shard := rl.getShard(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := rl.now()
	v, exists := shard.visitors[identifier]
	if !exists || now.Sub(v.lastReset) >= rl.window {
		shard.visitors[identifier] = &visitor{tokens: rl.rate - 1, lastReset: now}
		return true, rl.rate - 1, 0
	}

	if v.tokens <= 0 {
		return false, 0, rl.window - now.Sub(v.lastReset)
	}

	v.tokens--
	return true, v.tokens, 0
}

// RateLimit returns a middleware limiting requests per caller. Authenticated
// callers are keyed by subject, anonymous ones by client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, retryAfter := rl.allow(identify(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(retryAfter)))
			AbortWithError(c, http.StatusTooManyRequests, i18n.ErrKeyRateLimitExceeded)
			return
		}

		c.Next()
	}
}

func identify(c *gin.Context) string {
	if subject := GetSubject(c); subject != "" {
		return "sub:" + subject
	}
	return "ip:" + c.ClientIP()
}

// retryAfterSeconds rounds up so clients never retry early.
func retryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

// cleanup periodically removes expired visitors from all shards.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanupExpired removes visitors idle for more than two windows.
func (rl *RateLimiter) cleanupExpired() {
	now := rl.now()
	threshold := rl.window * 2

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, v := range shard.visitors {
			if now.Sub(v.lastReset) > threshold {
				delete(shard.visitors, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop shuts down the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked visitors in total and per shard.
func (rl *RateLimiter) Stats() (totalVisitors int, perShard []int) {
	perShard = make([]int, rl.numShards)
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.visitors)
		totalVisitors += perShard[i]
		shard.mu.Unlock()
	}
	return totalVisitors, perShard
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"qwikker-loyalty/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// EarnThrottle is an in-process per-client token bucket in front of the
// earn endpoint. It only sheds bursts cheaply before any query runs; the
// real policy limits are enforced against the earn-event log.
type EarnThrottle struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewEarnThrottle(cfg config.ThrottleConfig) *EarnThrottle {
	// A non-positive rate disables the throttle
	limit := rate.Inf
	if cfg.EarnPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.EarnPerMinute))
	}
	return &EarnThrottle{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    cfg.EarnBurst,
	}
}

func (t *EarnThrottle) limiterFor(key string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	if l, ok := t.limiters[key]; ok {
		return l
	}
	l := rate.NewLimiter(t.limit, t.burst)
	t.limiters[key] = l
	return l
}

func (t *EarnThrottle) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !t.limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests",
			})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/markme/markme-api/internal/utils"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter hands out one token bucket per client IP. Each bucket holds burst
// tokens and refills one token per interval. Idle buckets are dropped once they
// have been unused for a full window.
type ipLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	interval  time.Duration
	burst     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newIPLimiter(perWindow int, window time.Duration) *ipLimiter {
	return &ipLimiter{
		visitors: map[string]*visitor{},
		interval: window / time.Duration(perWindow),
		burst:    perWindow,
		window:   window,
		now:      time.Now,
	}
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.window {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.window {
				delete(l.visitors, key)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(l.interval), l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (l *ipLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// RateLimiter allows each client IP perWindow requests per window. A
// non-positive setting disables limiting.
func RateLimiter(perWindow int, window time.Duration) gin.HandlerFunc {
	if perWindow <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return rateLimit(newIPLimiter(perWindow, window))
}

func rateLimit(l *ipLimiter) gin.HandlerFunc {
	limitHeader := strconv.Itoa(l.burst)
	retryAfter := strconv.Itoa(int(math.Ceil(l.interval.Seconds())))

	return func(c *gin.Context) {
		lim := l.get(c.ClientIP())
		allowed := lim.AllowN(l.now(), 1)

		remaining := int(lim.TokensAt(l.now()))
		if remaining < 0 {
			remaining = 0
		}
		c.Header("RateLimit-Limit", limitHeader)
		c.Header("RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", retryAfter)
			utils.AbortWithError(c, 429, "Too many requests, please try again later.")
			return
		}
		c.Next()
	}
}

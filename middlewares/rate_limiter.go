package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps a sliding window of request times per client IP.
type RateLimiter struct {
	rate     int
	interval time.Duration
	ips      map[string][]time.Time
	mu       sync.Mutex
}

func NewRateLimiter(ratePerInterval int, intervalSeconds int) *RateLimiter {
	return &RateLimiter{
		rate:     ratePerInterval,
		interval: time.Duration(intervalSeconds) * time.Second,
		ips:      make(map[string][]time.Time),
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rl.mu.Lock()
		now := time.Now()
		window := rl.ips[ip][:0]
		for _, t := range rl.ips[ip] {
			if now.Sub(t) < rl.interval {
				window = append(window, t)
			}
		}
		if len(window) >= rl.rate {
			rl.ips[ip] = window
			rl.mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "msg": "請求過於頻繁，請稍後再試"})
			c.Abort()
			return
		}
		rl.ips[ip] = append(window, now)
		rl.mu.Unlock()

		c.Next()
	}
}

// NewStrictRateLimiter throttles the staff login endpoint: 5 attempts per
// minute across all clients.
func NewStrictRateLimiter() gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Every(time.Minute/5), 5)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "msg": "嘗試次數過多，請稍後再試"})
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"golang.org/x/time/rate"

	"gigcampus/pkg/utils"
)

const defaultBurst = 10

// RateLimitPerIP keeps one token bucket per client IP for the route it is
// attached to. Used on the payment verification endpoint so a flood of
// forged callbacks cannot hammer the signature check.
func RateLimitPerIP(perMinute float64) gin.HandlerFunc {
	var limiters sync.Map

	return func(c *gin.Context) {
		key := c.FullPath() + "|" + c.ClientIP()

		lim, ok := limiters.Load(key)
		if !ok {
			lim, _ = limiters.LoadOrStore(key, rate.NewLimiter(rate.Limit(perMinute/60.0), defaultBurst))
		}
		limiter := lim.(*rate.Limiter)

		if !limiter.Allow() {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", cast.ToString(limiter.Limit()))
		c.Header("X-RateLimit-Remaining", cast.ToString(limiter.Tokens()))
		c.Header("X-RateLimit-Reset", cast.ToString(time.Now().Add(time.Minute).Unix()))

		c.Next()
	}
}

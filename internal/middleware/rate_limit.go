package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"item-catalog/pkg/response"
)

// RateLimit throttles requests per client IP. Each client gets its own token
// bucket; buckets for idle clients age out of the LRU.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c.Request)

		limiter, ok := mw.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(mw.rate, mw.burst)
			mw.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			return
		}

		c.Next()
	}
}

// clientKey extracts the client IP, honoring proxy headers.
func clientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

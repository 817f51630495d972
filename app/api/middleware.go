package api

import (
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"

	"github.com/joefazee/travel-explorer/internal/logger"
	"github.com/joefazee/travel-explorer/internal/metrics"
	"github.com/joefazee/travel-explorer/internal/ratelimit"
)

// RequestLogger logs every request once it completes and counts it per route.
func RequestLogger(log logger.Logger, m *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		if m != nil {
			m.HTTPRequests.WithLabelValues(route, strconv.Itoa(status/100)+"xx").Inc()
		}

		fields := map[string]interface{}{
			"method":   c.Request.Method,
			"route":    route,
			"status":   status,
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			log.Error(c.Errors.Last(), fields)
			return
		}
		log.Debug("request served", fields)
	}
}

// RateLimit rejects requests from a client IP that exhausted its bucket.
// A nil limiter lets everything through.
func RateLimit(limiter *ratelimit.KeyLimiter, clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP(), clk.Now()) {
			TooManyRequestsResponse(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

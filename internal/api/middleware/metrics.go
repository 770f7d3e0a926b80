package middleware

import (
	"strconv"
	"time"

	"battery-atlas/internal/observability"

	"github.com/gin-gonic/gin"
)

// Metrics records per-request counters and latency into the collector.
// Routes are labeled by their gin template (e.g. /api/v1/assets/:id) to
// keep cardinality bounded.
func Metrics(col *observability.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		col.HTTPRequests.WithLabelValues(
			route, c.Request.Method, strconv.Itoa(c.Writer.Status()),
		).Inc()
		col.HTTPDuration.WithLabelValues(route, c.Request.Method).
			Observe(time.Since(start).Seconds())
	}
}

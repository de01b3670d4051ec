package middleware

import (
	"strconv"
	"time"

	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count, latency and response size by
// route template, so path parameters do not explode label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		utils.ActiveRequests.Inc()
		defer utils.ActiveRequests.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		utils.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		utils.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if size := c.Writer.Size(); size > 0 {
			utils.HTTPResponseSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}

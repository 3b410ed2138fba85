package middleware

import (
	"strconv"
	"time"

	"portfolio-api/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics labels requests by matched route template so slugs do not
// explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

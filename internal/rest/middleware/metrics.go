package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/internal/metrics"
)

// Metrics 按路由模板记录请求数和耗时，未匹配的路由记为 unmatched
func Metrics(m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}

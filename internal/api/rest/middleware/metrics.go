package middleware

import (
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records in-flight requests, request counts and durations per matched route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.RequestStarted()

		c.Next()

		m.RequestFinished(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

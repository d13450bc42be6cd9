package middleware

import (
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs method, path, status and latency of every request.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info(c.Request.Method, " ", c.Request.URL.Path, " ", c.Writer.Status(), " ", time.Since(start))
	}
}

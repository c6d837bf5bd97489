package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"seungpyo.lee/LanternflyGallery/pkg/logger"
	"seungpyo.lee/LanternflyGallery/pkg/util"
)

// RequestLogger tags each request with an id (kept from the X-Request-Id header
// when present) and writes one access log line once the handler chain returns.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(util.RequestIDKey)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(util.RequestIDKey, requestID)
		c.Header(util.RequestIDKey, requestID)

		c.Next()

		entry := log.
			With("request_id", requestID).
			With("method", c.Request.Method).
			With("path", c.Request.URL.Path).
			With("status", c.Writer.Status()).
			With("latency", time.Since(start).String())
		if c.Writer.Status() >= 500 {
			entry.Warn("request failed")
			return
		}
		entry.Info("request handled")
	}
}

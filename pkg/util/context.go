package util

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key and header carrying the request id.
const RequestIDKey = "X-Request-Id"

// GetRequestID extracts the request id set by the request logger middleware,
// falling back to the X-Request-Id header.
func GetRequestID(c *gin.Context) (string, bool) {
	if v, ok := c.Get(RequestIDKey); ok {
		if id, ok := v.(string); ok && id != "" {
			return id, true
		}
	}
	id := c.GetHeader(RequestIDKey)
	if id == "" {
		return "", false
	}
	return id, true
}

package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext(header string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		c.Request.Header.Set(RequestIDKey, header)
	}
	return c
}

func TestGetRequestID(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		id, ok := GetRequestID(newContext(""))
		assert.False(t, ok)
		assert.Empty(t, id)
	})
	t.Run("from header", func(t *testing.T) {
		id, ok := GetRequestID(newContext("from-header"))
		assert.True(t, ok)
		assert.Equal(t, "from-header", id)
	})
	t.Run("context value wins", func(t *testing.T) {
		c := newContext("from-header")
		c.Set(RequestIDKey, "from-context")
		id, ok := GetRequestID(c)
		assert.True(t, ok)
		assert.Equal(t, "from-context", id)
	})
}

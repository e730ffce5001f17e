package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(10, 3)

	t.Run("burst then throttle per ip", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			assert.True(t, rl.allow("10.0.0.1"), "request %d should pass", i+1)
		}
		assert.False(t, rl.allow("10.0.0.1"))
	})

	t.Run("separate ips limited independently", func(t *testing.T) {
		assert.True(t, rl.allow("10.0.0.2"))
	})
}

func TestRateLimiterStop(t *testing.T) {
	rl := NewRateLimiter(10, 3)

	rl.Stop()
	// Stop is idempotent.
	rl.Stop()

	// The limiter keeps serving after Stop; only the cleanup goroutine ends.
	assert.True(t, rl.allow("10.0.0.9"))
}

func TestRateLimiterEvictIdle(t *testing.T) {
	rl := NewRateLimiter(10, 3)
	defer rl.Stop()

	rl.allow("10.0.0.3")
	rl.allow("10.0.0.4")

	rl.evictIdle(-time.Second)
	rl.mu.Lock()
	remaining := len(rl.visitors)
	rl.mu.Unlock()
	assert.Zero(t, remaining)

	rl.allow("10.0.0.3")
	rl.evictIdle(time.Hour)
	rl.mu.Lock()
	remaining = len(rl.visitors)
	rl.mu.Unlock()
	assert.Equal(t, 1, remaining)
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	rl := NewRateLimiter(1, 1)
	router.POST("/submit", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/submit", nil)
		req.RemoteAddr = "192.168.1.5:1234"
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}

//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"qwikker-loyalty/internal/handler/middleware"
	"qwikker-loyalty/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func throttledRouter(cfg config.ThrottleConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/earn", middleware.NewEarnThrottle(cfg).Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func performFrom(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/earn", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEarnThrottle(t *testing.T) {
	t.Run("sheds a burst beyond the bucket size", func(t *testing.T) {
		router := throttledRouter(config.ThrottleConfig{EarnPerMinute: 1, EarnBurst: 3})

		for i := 0; i < 3; i++ {
			w := performFrom(router, "203.0.113.9:1234")
			assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
		}

		w := performFrom(router, "203.0.113.9:1234")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("a zero rate disables the throttle", func(t *testing.T) {
		router := throttledRouter(config.ThrottleConfig{EarnPerMinute: 0, EarnBurst: 0})

		for i := 0; i < 5; i++ {
			w := performFrom(router, "203.0.113.9:1234")
			assert.Equal(t, http.StatusOK, w.Code, "request %d should pass with throttling disabled", i+1)
		}
	})

	t.Run("buckets are per client address", func(t *testing.T) {
		router := throttledRouter(config.ThrottleConfig{EarnPerMinute: 1, EarnBurst: 1})

		w := performFrom(router, "203.0.113.9:1234")
		assert.Equal(t, http.StatusOK, w.Code)

		w = performFrom(router, "203.0.113.9:1234")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		w = performFrom(router, "198.51.100.7:1234")
		assert.Equal(t, http.StatusOK, w.Code, "a different address has its own bucket")
	})
}

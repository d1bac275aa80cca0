//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"qwikker-loyalty/internal/handler/httperr"
	"qwikker-loyalty/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestAbortWithError(t *testing.T) {
	t.Run("renders the flat body and keeps the cause on the context", func(t *testing.T) {
		c, w := testContext()

		cause := errs.New("scan token mismatch")
		httperr.AbortWithError(c, http.StatusForbidden, cause, "Invalid scan token", "")

		assert.Equal(t, http.StatusForbidden, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid scan token", body["error"])
		_, hasReason := body["reason"]
		assert.False(t, hasReason, "an empty reason should be omitted from the body")

		require.Len(t, c.Errors, 1)
		assert.Equal(t, cause, c.Errors[0].Err)
		assert.True(t, c.IsAborted())
	})

	t.Run("carries the rejection code in the reason field", func(t *testing.T) {
		c, w := testContext()

		httperr.AbortWithError(c, http.StatusTooManyRequests, errs.New("user over hourly rate"),
			"Too many stamps this hour", "rate_limit_user")

		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Too many stamps this hour", body["error"])
		assert.Equal(t, "rate_limit_user", body["reason"])
	})

	t.Run("panics when called without a cause", func(t *testing.T) {
		c, _ := testContext()

		assert.Panics(t, func() {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", "")
		})
	})
}

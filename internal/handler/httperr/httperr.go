package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the flat error body every handler emits. Reason carries the
// machine-readable rejection code where one exists.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg, reason string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Reason: reason}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

package middleware

import (
	"crypto/subtle"
	"net/http"

	"portfolio-api/internal/api/apiutil"

	"github.com/gin-gonic/gin"
)

// AdminAuth lets reads through and requires "Authorization: Bearer <token>"
// on everything else. An empty token locks all writes.
func AdminAuth(token string) gin.HandlerFunc {
	want := []byte("Bearer " + token)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		got := []byte(c.GetHeader("Authorization"))
		if token == "" || subtle.ConstantTimeCompare(got, want) != 1 {
			apiutil.Unauthorized(c)
			return
		}
		c.Next()
	}
}

package apiutil

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Slug is the second segment of the escaped request path, taken verbatim:
// "/films/hunch" -> "hunch", "/films/" -> "", "/films/a/b" -> "a".
func Slug(c *gin.Context) string {
	parts := strings.Split(c.Request.URL.EscapedPath(), "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

// BindJSON decodes the request body into req and answers 400 on failure.
func BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		BadRequest(c, MsgInvalidJSON)
		return false
	}
	return true
}

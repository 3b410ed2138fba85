// Package apiutil holds the response helpers shared by every handler group.
package apiutil

import (
	"net/http"

	"portfolio-api/database"
	"portfolio-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// Error bodies are part of the public contract; clients match on them.
const (
	MsgNotFound       = "Not found"
	MsgUnauthorized   = "Unauthorized"
	MsgInvalidJSON    = "Invalid JSON body"
	MsgSlugExists     = "Slug already exists"
	MsgInternalError  = "Internal error"
	MsgExpectedUpload = "Expected multipart/form-data"
)

func OK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// AbortBadRequest is BadRequest for middleware: handlers after it do not run.
func AbortBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": MsgNotFound})
}

// Unauthorized aborts the chain so no handler runs after the gate.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgUnauthorized})
}

func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"error": msg})
}

// Internal logs err and answers with a generic 500; storage messages stay
// server-side.
func Internal(c *gin.Context, err error, op string) {
	logging.Error().
		Err(err).
		Str("op", op).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": MsgInternalError})
}

// WriteFailed maps a failed insert or update: duplicate slugs become 409,
// everything else 500.
func WriteFailed(c *gin.Context, err error, op string) {
	if database.IsDuplicateKey(err) {
		Conflict(c, MsgSlugExists)
		return
	}
	Internal(c, err, op)
}

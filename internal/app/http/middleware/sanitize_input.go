package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"portfolio-api/internal/api/apiutil"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeInput strips unsafe HTML from top-level string fields of write
// bodies. Handlers decode JSON whatever the Content-Type says, so only
// multipart uploads are skipped. Blog content keeps its safe markup (UGC policy).
func SanitizeInput() gin.HandlerFunc {
	policy := bluemonday.UGCPolicy()
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			apiutil.AbortBadRequest(c, apiutil.MsgInvalidJSON)
			return
		}
		var body map[string]interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			apiutil.AbortBadRequest(c, apiutil.MsgInvalidJSON)
			return
		}

		for k, v := range body {
			// Plain text has nothing to strip; sanitizing it would only
			// escape characters such as & in URLs.
			if str, ok := v.(string); ok && strings.ContainsRune(str, '<') {
				body[k] = policy.Sanitize(str)
			}
		}

		newBody, err := json.Marshal(body)
		if err != nil {
			apiutil.AbortBadRequest(c, apiutil.MsgInvalidJSON)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsHeaders = []string{"Content-Type", "Authorization"}
)

// CORS answers every OPTIONS request with 204 before auth or routing.
// With no origins configured any origin is allowed; otherwise gin-contrib/cors
// enforces the list. A preflight from an origin outside the list still gets
// 204, just without Allow-Origin, so the browser blocks it.
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return openCORS
	}

	restricted := cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: corsMethods,
		AllowHeaders: corsHeaders,
		MaxAge:       12 * time.Hour,
	})
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			if origin := c.GetHeader("Origin"); origin != "" && !allowed[origin] {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
		}
		restricted(c)
		if c.Request.Method == http.MethodOptions && !c.IsAborted() {
			c.AbortWithStatus(http.StatusNoContent)
		}
	}
}

func openCORS(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicehub/internal/config"
)

// CORS applies one cross-origin policy to every response, errors included,
// and answers preflight OPTIONS requests with an empty 204.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	allowAny := false
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			allowAny = true
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		if allowAny {
			c.Header("Access-Control-Allow-Origin", "*")
		} else if origin := c.GetHeader("Origin"); allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", cfg.AllowedMethods)
		c.Header("Access-Control-Allow-Headers", cfg.AllowedHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

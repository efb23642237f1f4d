package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// FunctionsPrefix is where function-style endpoints live; they carry their own CORS headers.
const FunctionsPrefix = "/functions/"

const (
	functionAllowOrigin  = "*"
	functionAllowHeaders = "authorization, x-client-info, apikey, content-type"
)

// FunctionCORS answers the OPTIONS probe with an empty 200 and stamps the
// permissive headers on every other response. The probe never reaches the handler.
func FunctionCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", functionAllowOrigin)
		c.Header("Access-Control-Allow-Headers", functionAllowHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// CORSMiddleware handles CORS for the REST API. CORS_ALLOWED_ORIGINS is a comma
// separated allowlist; empty allows any origin.
func CORSMiddleware() gin.HandlerFunc {
	allowed := map[string]bool{}
	for _, origin := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed[origin] = true
		}
	}

	return func(c *gin.Context) {
		if strings.HasPrefix(c.FullPath(), FunctionsPrefix) {
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}
		if len(allowed) > 0 && !allowed[origin] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Origin not allowed"})
			return
		}

		if len(allowed) == 0 {
			c.Header("Access-Control-Allow-Origin", "*")
		} else {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

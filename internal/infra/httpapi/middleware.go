package httpapi

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request ID to every request, honoring one
// supplied by the client, and echoes it back in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequireAdminKey guards the admin endpoints with a constant-time
// check of the X-Admin-Key header.
func RequireAdminKey(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-Admin-Key")
		if supplied == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid admin key"})
			return
		}
		c.Next()
	}
}

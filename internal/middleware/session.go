package middleware

import (
	"ledger_api/internal/session" // Session cookie resolution
	"net/http"                    // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// SessionRequired gates every read-path operation: the request must
// already carry a well-formed session cookie. Without one there is no
// session to scope to (the caller has never written), so the request is
// rejected before any store access.
func SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := session.Current(c)
		if !ok {
			// No resolvable session: abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(session.ContextKey, id) // Store session ID in context
		c.Next()                      // Proceed to the next handler
	}
}

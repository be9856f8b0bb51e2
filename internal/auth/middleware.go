package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyUserID is the Gin context key holding the authenticated user id.
const ContextKeyUserID = "auth_user_id"

// Middleware handles bearer-token authentication for HTTP requests.
type Middleware struct {
	secret []byte
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(secret []byte) *Middleware {
	return &Middleware{secret: secret}
}

// RequireAuth returns a Gin handler that verifies the Authorization bearer
// token and attaches the user id to the context. Requests without a valid
// token are rejected with 401 before any handler logic runs.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := ParseToken(m.secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// GetUserID extracts the authenticated user's id from the Gin context.
// Returns 0 when no user is authenticated.
func GetUserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devjourney/journey-go/internal/dto/response"
	"github.com/devjourney/journey-go/internal/security"
)

// UsernameKey is the context key holding the authenticated username.
const UsernameKey = "username"

// SessionAuth resolves the session cookie on protected routes. A request
// without a valid session is rejected with 401; otherwise the derived
// username is placed in the gin context for handlers downstream.
type SessionAuth struct {
	sessions *security.SessionService
}

// NewSessionAuth creates a SessionAuth middleware around the session service.
func NewSessionAuth(sessions *security.SessionService) *SessionAuth {
	return &SessionAuth{sessions: sessions}
}

// Authenticate validates the session cookie and sets the username in context.
func (m *SessionAuth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := m.sessions.Resolve(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.NewError("not authenticated"))
			c.Abort()
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}

// CurrentUsername retrieves the authenticated username from context.
func CurrentUsername(c *gin.Context) string {
	if v, exists := c.Get(UsernameKey); exists {
		if username, ok := v.(string); ok {
			return username
		}
	}
	return ""
}

package middleware

import (
	"net/http"

	"dms/internal/session"

	"github.com/gin-gonic/gin"
)

// IdentityKey is where RequireLogin stores the authenticated username in the
// gin context. Handlers read it from there instead of touching the session.
const IdentityKey = "identity"

// RequireLogin redirects to the login page when no session identity is
// present. Machine callers must treat the redirect as "not authenticated".
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := session.Identity(c)
		if username == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(IdentityKey, username)
		c.Next()
	}
}

// CurrentUser returns the username placed in the context by RequireLogin.
func CurrentUser(c *gin.Context) string {
	return c.GetString(IdentityKey)
}

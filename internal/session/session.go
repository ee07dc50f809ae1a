package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const identityKey = "user"

// SetIdentity records the authenticated username in the cookie session.
func SetIdentity(c *gin.Context, username string) error {
	s := sessions.Default(c)
	s.Set(identityKey, username)
	return s.Save()
}

// Identity returns the authenticated username, or "" when not logged in.
func Identity(c *gin.Context) string {
	s := sessions.Default(c)
	if v := s.Get(identityKey); v != nil {
		if username, ok := v.(string); ok {
			return username
		}
	}
	return ""
}

func IsLoggedIn(c *gin.Context) bool {
	return Identity(c) != ""
}

// Clear drops the session and expires its cookie.
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dms/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	r.POST("/login-as/:name", func(c *gin.Context) {
		_ = session.SetIdentity(c, c.Param("name"))
		c.Status(http.StatusOK)
	})

	protected := r.Group("/")
	protected.Use(RequireLogin())
	protected.GET("/protected", func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUser(c))
	})
	return r
}

func TestRequireLogin_RedirectsAnonymous(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireLogin_PassesIdentityThrough(t *testing.T) {
	r := newTestRouter()

	// establish a session, then replay its cookie
	login := httptest.NewRecorder()
	r.ServeHTTP(login, httptest.NewRequest("POST", "/login-as/alice", nil))
	require.NotEmpty(t, login.Result().Cookies())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	for _, c := range login.Result().Cookies() {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

package user

import (
	"errors"
	"net/http"
	"strconv"

	"dms/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler serves the login flow and the user master-data pages.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login authenticates the form credentials. Failure re-renders the form
// with one generic message, never hinting whether the username exists.
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	u, err := h.service.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Invalid credentials"})
			return
		}
		c.String(http.StatusInternalServerError, "login failed")
		return
	}

	if err := session.SetIdentity(c, u.Username); err != nil {
		c.String(http.StatusInternalServerError, "login failed")
		return
	}
	c.Redirect(http.StatusFound, "/menu")
}

func (h *Handler) Logout(c *gin.Context) {
	_ = session.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) ListPage(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load users")
		return
	}
	c.HTML(http.StatusOK, "master_users.html", gin.H{"users": users})
}

// Create adds a user and redirects. A duplicate username is swallowed
// upstream, so the redirect happens either way with no feedback.
func (h *Handler) Create(c *gin.Context) {
	err := h.service.Create(c.Request.Context(),
		c.PostForm("username"),
		c.PostForm("password"),
		c.PostForm("department"),
		c.PostForm("name"),
	)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to create user")
		return
	}
	c.Redirect(http.StatusFound, "/master/users")
}

func (h *Handler) EditPage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/master/users")
		return
	}
	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Redirect(http.StatusFound, "/master/users")
		return
	}
	c.HTML(http.StatusOK, "edit_user.html", gin.H{"user": u})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/master/users")
		return
	}
	err = h.service.Update(c.Request.Context(), id,
		c.PostForm("username"),
		c.PostForm("password"),
		c.PostForm("department"),
		c.PostForm("name"),
	)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to update user")
		return
	}
	c.Redirect(http.StatusFound, "/master/users")
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err == nil {
		if err := h.service.Delete(c.Request.Context(), id); err != nil {
			c.String(http.StatusInternalServerError, "failed to delete user")
			return
		}
	}
	c.Redirect(http.StatusFound, "/master/users")
}

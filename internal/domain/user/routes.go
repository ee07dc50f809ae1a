package user

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes mounts the login flow outside the session gate.
func RegisterPublicRoutes(r *gin.Engine, h *Handler) {
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

// RegisterRoutes mounts the user master-data pages on the gated group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	users := r.Group("/master/users")
	{
		users.GET("", h.ListPage)
		users.POST("", h.Create)
		users.GET("/edit/:id", h.EditPage)
		users.POST("/edit/:id", h.Update)
		users.GET("/delete/:id", h.Delete)
	}
}

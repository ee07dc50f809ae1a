package document

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the master-data pages on the session-gated group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	docs := r.Group("/master/documents")
	{
		docs.GET("", h.ListPage)
		docs.POST("", h.Create)
		docs.GET("/edit/:id", h.EditPage)
		docs.POST("/edit/:id", h.Replace)
		docs.GET("/delete/:id", h.Delete)
	}
}

// RegisterPublicRoutes mounts the unauthenticated suggestion endpoint.
func RegisterPublicRoutes(r *gin.Engine, h *Handler) {
	r.GET("/api/search_documents", h.Suggest)
}

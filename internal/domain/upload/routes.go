package upload

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the upload form and upload search on the
// session-gated group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/upload", h.FormPage)
	r.POST("/upload", h.Submit)
	r.GET("/download", h.SearchPage)
	r.POST("/download", h.Search)
}

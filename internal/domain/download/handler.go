package download

import (
	"net/http"
	"strconv"

	"dms/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handler streams audited file downloads.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Fetch audits the access and streams the file as an attachment under its
// upload-time filename. Unknown ids redirect to the search page.
func (h *Handler) Fetch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/download")
		return
	}

	rec, err := h.service.RecordAndFetch(c.Request.Context(), id, middleware.CurrentUser(c))
	if err != nil {
		c.Redirect(http.StatusFound, "/download")
		return
	}

	c.FileAttachment(rec.Filepath, rec.Filename)
}

package report

import (
	"net/http"

	"dms/internal/domain/document"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Page renders the read-only report. Filters arrive as query parameters and
// apply to the document section only.
func (h *Handler) Page(c *gin.Context) {
	rep, err := h.service.Build(c.Request.Context(), document.Filters{
		DocumentNumber: c.Query("document_number"),
		RevisionNumber: c.Query("revision_number"),
		Date:           c.Query("date"),
		MaterialName:   c.Query("material_name"),
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to build report")
		return
	}
	c.HTML(http.StatusOK, "view_report.html", gin.H{
		"documents": rep.Documents,
		"uploads":   rep.Uploads,
		"downloads": rep.Downloads,
	})
}

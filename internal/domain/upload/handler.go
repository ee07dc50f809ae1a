package upload

import (
	"errors"
	"net/http"

	"dms/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handler serves the upload form and the upload-search page.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) FormPage(c *gin.Context) {
	c.HTML(http.StatusOK, "upload.html", gin.H{})
}

// Submit stores the file and redirects back to the form. A missing file is
// a silent redirect with no record written.
func (h *Handler) Submit(c *gin.Context) {
	documentNumber := c.PostForm("document_number")
	revisionNumber := c.PostForm("revision_number")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Redirect(http.StatusFound, "/upload")
		return
	}

	_, err = h.service.Store(c.Request.Context(), documentNumber, revisionNumber, fileHeader, middleware.CurrentUser(c))
	if err != nil {
		if errors.Is(err, ErrNoFile) {
			c.Redirect(http.StatusFound, "/upload")
			return
		}
		c.String(http.StatusInternalServerError, "failed to store file")
		return
	}

	c.Redirect(http.StatusFound, "/upload")
}

func (h *Handler) SearchPage(c *gin.Context) {
	c.HTML(http.StatusOK, "download.html", gin.H{"results": []Record{}})
}

func (h *Handler) Search(c *gin.Context) {
	results, err := h.service.Search(c.Request.Context(), Filters{
		DocumentNumber: c.PostForm("document_number"),
		RevisionNumber: c.PostForm("revision_number"),
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "search failed")
		return
	}
	c.HTML(http.StatusOK, "download.html", gin.H{"results": results})
}

package document

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler serves the master-data pages and the JSON suggestion endpoint.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListPage(c *gin.Context) {
	lines, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load documents")
		return
	}
	c.HTML(http.StatusOK, "master_documents.html", gin.H{"documents": lines})
}

func (h *Handler) Create(c *gin.Context) {
	header, inputs := parseRevisionForm(c)
	if _, err := h.service.CreateRevision(c.Request.Context(), header, inputs); err != nil {
		c.String(http.StatusInternalServerError, "failed to save documents")
		return
	}
	c.Redirect(http.StatusFound, "/master/documents")
}

func (h *Handler) EditPage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/master/documents")
		return
	}
	line, err := h.service.GetLine(c.Request.Context(), id)
	if err != nil {
		c.Redirect(http.StatusFound, "/master/documents")
		return
	}
	c.HTML(http.StatusOK, "edit_document.html", gin.H{"document": line})
}

func (h *Handler) Replace(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/master/documents")
		return
	}
	header, inputs := parseRevisionForm(c)
	if err := h.service.ReplaceLine(c.Request.Context(), id, header, inputs); err != nil {
		c.String(http.StatusInternalServerError, "failed to save documents")
		return
	}
	c.Redirect(http.StatusFound, "/master/documents")
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err == nil {
		if err := h.service.DeleteLine(c.Request.Context(), id); err != nil {
			c.String(http.StatusInternalServerError, "failed to delete document")
			return
		}
	}
	c.Redirect(http.StatusFound, "/master/documents")
}

// Suggest is the public autocomplete endpoint. It always answers with a JSON
// array, empty when nothing matches.
func (h *Handler) Suggest(c *gin.Context) {
	pairs, err := h.service.Suggest(c.Request.Context(), c.Query("term"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	if pairs == nil {
		pairs = []Suggestion{}
	}
	c.JSON(http.StatusOK, pairs)
}

func parseRevisionForm(c *gin.Context) (Header, []LineInput) {
	header := Header{
		DocumentNumber: c.PostForm("document_number"),
		RevisionNumber: c.PostForm("revision_number"),
		Status:         c.DefaultPostForm("status", DefaultStatus),
	}

	quantities := c.PostFormArray("quantity[]")
	materialNumbers := c.PostFormArray("material_number[]")
	materialNames := c.PostFormArray("material_name[]")
	vendors := c.PostFormArray("vendor[]")
	prices := c.PostFormArray("price[]")

	n := len(quantities)
	for _, arr := range [][]string{materialNumbers, materialNames, vendors, prices} {
		if len(arr) < n {
			n = len(arr)
		}
	}

	inputs := make([]LineInput, 0, n)
	for i := 0; i < n; i++ {
		inputs = append(inputs, LineInput{
			Quantity:       quantities[i],
			MaterialNumber: materialNumbers[i],
			MaterialName:   materialNames[i],
			Vendor:         vendors[i],
			Price:          prices[i],
		})
	}
	return header, inputs
}

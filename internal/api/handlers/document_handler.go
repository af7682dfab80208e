package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ngodingskuyy/doctypes-go/internal/application"
	"github.com/ngodingskuyy/doctypes-go/internal/domain/document"
	"github.com/ngodingskuyy/doctypes-go/internal/schema"
	"github.com/ngodingskuyy/doctypes-go/pkg/response"
	"gorm.io/gorm"
)

type DocumentHandler struct {
	service *application.DocumentService
}

func NewDocumentHandler(service *application.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// GET /doctypes/name/:name/documents
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	filters := document.ListFilters{
		Search:  c.Query("search"),
		Page:    intQuery(c, "page", 1),
		PerPage: intQuery(c, "per_page", 15),
	}
	if t, ok := dateQuery(c, "from_date"); ok {
		filters.FromDate = &t
	}
	if t, ok := dateQuery(c, "to_date"); ok {
		filters.ToDate = &t
	}

	docs, total, err := h.service.ListDocuments(c.Param("name"), filters)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPageResponse(docs, filters.Page, filters.PerPage, total))
}

// POST /doctypes/name/:name/documents
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var input document.CreateDocumentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	doc, err := h.service.CreateDocument(c.Param("name"), input.Data, userIDFromContext(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// GET /documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	doc, err := h.service.GetDocument(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// PUT /documents/:id
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input document.UpdateDocumentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	doc, err := h.service.UpdateDocument(id, input.Data, userIDFromContext(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DELETE /documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteDocument(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /doctypes/name/:name/stats
func (h *DocumentHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DocumentHandler) writeError(c *gin.Context, err error) {
	var vErr *application.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, response.ValidationErrorResponse{
			Message: "Validation failed",
			Errors:  vErr.Fields,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Not found"})
	case errors.Is(err, schema.ErrNoFields):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

func dateQuery(c *gin.Context, key string) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ngodingskuyy/doctypes-go/internal/application"
	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
	"github.com/ngodingskuyy/doctypes-go/internal/schema"
	"github.com/ngodingskuyy/doctypes-go/pkg/response"
	"gorm.io/gorm"
)

type DoctypeHandler struct {
	service *application.DoctypeService
}

func NewDoctypeHandler(service *application.DoctypeService) *DoctypeHandler {
	return &DoctypeHandler{service: service}
}

// GET /doctypes
func (h *DoctypeHandler) GetDoctypes(c *gin.Context) {
	filters := doctype.ListFilters{
		Search:  c.Query("search"),
		Page:    intQuery(c, "page", 1),
		PerPage: intQuery(c, "per_page", 15),
	}
	if v, ok := boolQuery(c, "active"); ok {
		filters.Active = &v
	}
	if v, ok := boolQuery(c, "system"); ok {
		filters.System = &v
	}

	doctypes, total, err := h.service.ListDoctypes(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPageResponse(doctypes, filters.Page, filters.PerPage, total))
}

// GET /doctypes/:id
func (h *DoctypeHandler) GetDoctypeByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	d, err := h.service.GetDoctype(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Doctype not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// POST /doctypes
func (h *DoctypeHandler) CreateDoctype(c *gin.Context) {
	var input doctype.CreateDoctypeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	d, err := h.service.CreateDoctype(input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// PUT /doctypes/:id
func (h *DoctypeHandler) UpdateDoctype(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input doctype.UpdateDoctypeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	d, err := h.service.UpdateDoctype(id, input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DELETE /doctypes/:id
func (h *DoctypeHandler) DeleteDoctype(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteDoctype(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /doctypes/name/:name/schema
func (h *DoctypeHandler) GetFormSchema(c *gin.Context) {
	formSchema, err := h.service.FormSchema(c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, formSchema)
}

// GET /doctypes/name/:name/list-config
func (h *DoctypeHandler) GetListConfig(c *gin.Context) {
	cfg, err := h.service.ListConfig(c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// POST /doctypes/:id/fields
func (h *DoctypeHandler) CreateField(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input doctype.FieldInputDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	field, err := h.service.AddField(id, input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, field)
}

// PUT /doctypes/:id/fields/:fieldname
func (h *DoctypeHandler) UpdateField(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input doctype.UpdateFieldDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	field, err := h.service.UpdateField(id, c.Param("fieldname"), input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, field)
}

// DELETE /doctypes/:id/fields/:fieldname
func (h *DoctypeHandler) DeleteField(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.RemoveField(id, c.Param("fieldname")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DoctypeHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Doctype not found"})
	case errors.Is(err, schema.ErrNoFields):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrSystemDoctype):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrDoctypeInUse):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidIdentifier),
		errors.Is(err, application.ErrDuplicateFieldName),
		errors.Is(err, fieldtype.ErrUnknownFieldType):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

func intQuery(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func boolQuery(c *gin.Context, key string) (bool, bool) {
	raw, exists := c.GetQuery(key)
	if !exists {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

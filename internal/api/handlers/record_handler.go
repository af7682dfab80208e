package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngodingskuyy/doctypes-go/internal/application"
	"github.com/ngodingskuyy/doctypes-go/internal/repository"
	"github.com/ngodingskuyy/doctypes-go/pkg/response"
	"gorm.io/gorm"
)

// RecordHandler serves generic CRUD against tables materialized by the
// generator. No schema awareness beyond table existence.
type RecordHandler struct {
	service *application.RecordService
}

func NewRecordHandler(service *application.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// GET /d/:doctype
func (h *RecordHandler) ListRecords(c *gin.Context) {
	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", 15)

	rows, total, err := h.service.ListRecords(c.Request.Context(), c.Param("doctype"), page, perPage)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPageResponse(rows, page, perPage, total))
}

// POST /d/:doctype
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	row, err := h.service.CreateRecord(c.Request.Context(), c.Param("doctype"), data)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// GET /d/:doctype/:id
func (h *RecordHandler) GetRecord(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	row, err := h.service.GetRecord(c.Request.Context(), c.Param("doctype"), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// PUT /d/:doctype/:id
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	row, err := h.service.UpdateRecord(c.Request.Context(), c.Param("doctype"), id, data)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// DELETE /d/:doctype/:id
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	affected, err := h.service.DeleteRecord(c.Request.Context(), c.Param("doctype"), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Record not found"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Record deleted successfully"})
}

func (h *RecordHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrTableNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Error: err.Error() + ". Please generate the model first."})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Record not found"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

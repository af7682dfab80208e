package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
)

type FieldTypeHandler struct {
	registry *fieldtype.Registry
}

func NewFieldTypeHandler(registry *fieldtype.Registry) *FieldTypeHandler {
	return &FieldTypeHandler{registry: registry}
}

// GET /field-types
func (h *FieldTypeHandler) ListFieldTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.registry.All()})
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ngodingskuyy/doctypes-go/internal/api/middleware"
	"github.com/ngodingskuyy/doctypes-go/internal/application"
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
)

type Handlers struct {
	Doctype   *DoctypeHandler
	Document  *DocumentHandler
	Record    *RecordHandler
	Generator *GeneratorHandler
	FieldType *FieldTypeHandler
}

func New(svc *application.Services, registry *fieldtype.Registry) *Handlers {
	return &Handlers{
		Doctype:   NewDoctypeHandler(svc.Doctype),
		Document:  NewDocumentHandler(svc.Document),
		Record:    NewRecordHandler(svc.Record),
		Generator: NewGeneratorHandler(svc.Generator),
		FieldType: NewFieldTypeHandler(registry),
	}
}

// userIDFromContext reads the authenticated subject when the JWT middleware
// is enabled; nil otherwise.
func userIDFromContext(c *gin.Context) *uint {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return nil
	}
	return &claims.UserID
}

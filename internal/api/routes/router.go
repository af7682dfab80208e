package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ngodingskuyy/doctypes-go/config"
	"github.com/ngodingskuyy/doctypes-go/internal/api/handlers"
	"github.com/ngodingskuyy/doctypes-go/internal/api/middleware"
	"github.com/ngodingskuyy/doctypes-go/internal/application"
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
	"github.com/ngodingskuyy/doctypes-go/internal/generator"
	"github.com/ngodingskuyy/doctypes-go/internal/repository"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	// init
	registry := fieldtype.NewRegistry()
	repos := repository.New(db)
	gen := generator.New(config.GeneratorOutput)
	services := application.New(repos, registry, gen)
	h := handlers.New(services, registry)

	api := r.Group("/api")
	api.GET("/field-types", h.FieldType.ListFieldTypes)

	doctypes := api.Group("/doctypes")
	{
		doctypes.GET("", h.Doctype.GetDoctypes)
		doctypes.GET("/:id", h.Doctype.GetDoctypeByID)

		// schema reads, keyed by doctype name
		doctypes.GET("/name/:name/schema", h.Doctype.GetFormSchema)
		doctypes.GET("/name/:name/list-config", h.Doctype.GetListConfig)
		doctypes.GET("/name/:name/stats", h.Document.GetStats)
		doctypes.GET("/name/:name/documents", h.Document.ListDocuments)

		admin := doctypes.Group("")
		admin.Use(middleware.JWTAuthMiddleware())
		{
			admin.POST("", h.Doctype.CreateDoctype)
			admin.PUT("/:id", h.Doctype.UpdateDoctype)
			admin.DELETE("/:id", h.Doctype.DeleteDoctype)

			admin.POST("/:id/fields", h.Doctype.CreateField)
			admin.PUT("/:id/fields/:fieldname", h.Doctype.UpdateField)
			admin.DELETE("/:id/fields/:fieldname", h.Doctype.DeleteField)

			admin.POST("/name/:name/generate", h.Generator.Generate)
			admin.POST("/name/:name/documents", h.Document.CreateDocument)
		}
	}

	documents := api.Group("/documents")
	documents.Use(middleware.JWTAuthMiddleware())
	{
		documents.GET("/:id", h.Document.GetDocument)
		documents.PUT("/:id", h.Document.UpdateDocument)
		documents.DELETE("/:id", h.Document.DeleteDocument)
	}

	// generic record endpoints for generator-materialized tables
	records := api.Group("/d")
	records.Use(middleware.JWTAuthMiddleware())
	{
		records.GET("/:doctype", h.Record.ListRecords)
		records.POST("/:doctype", h.Record.CreateRecord)
		records.GET("/:doctype/:id", h.Record.GetRecord)
		records.PUT("/:doctype/:id", h.Record.UpdateRecord)
		records.DELETE("/:doctype/:id", h.Record.DeleteRecord)
	}
}

package application

import (
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
	"github.com/ngodingskuyy/doctypes-go/internal/generator"
	"github.com/ngodingskuyy/doctypes-go/internal/repository"
)

type Services struct {
	Doctype   *DoctypeService
	Document  *DocumentService
	Record    *RecordService
	Generator *GeneratorService
}

func New(repos *repository.Repos, registry *fieldtype.Registry, gen *generator.Generator) *Services {
	return &Services{
		Doctype:   NewDoctypeService(repos, registry),
		Document:  NewDocumentService(repos, registry),
		Record:    NewRecordService(repos),
		Generator: NewGeneratorService(repos, gen),
	}
}

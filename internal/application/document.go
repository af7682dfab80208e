package application

import (
	"time"

	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
	"github.com/ngodingskuyy/doctypes-go/internal/domain/document"
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
	"github.com/ngodingskuyy/doctypes-go/internal/repository"
	"github.com/ngodingskuyy/doctypes-go/internal/schema"
)

// DocumentService manages JSON-blob documents for doctypes that are not
// materialized into their own table.
type DocumentService struct {
	Repos   *repository.Repos
	builder *schema.Builder
	engine  *schema.Engine
}

func NewDocumentService(repos *repository.Repos, registry *fieldtype.Registry) *DocumentService {
	return &DocumentService{
		Repos:   repos,
		builder: schema.NewBuilder(registry),
		engine:  schema.NewEngine(registry),
	}
}

func (s *DocumentService) ListDocuments(doctypeName string, f document.ListFilters) ([]document.Document, int64, error) {
	d, err := s.Repos.Doctype.GetByName(doctypeName)
	if err != nil {
		return nil, 0, err
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 15
	}
	return s.Repos.Document.List(d.ID, f)
}

func (s *DocumentService) GetDocument(id uint) (document.Document, error) {
	return s.Repos.Document.GetByID(id)
}

// CreateDocument validates data against the doctype schema and persists it.
// Schema violations come back as *ValidationError.
func (s *DocumentService) CreateDocument(doctypeName string, data map[string]interface{}, userID *uint) (*document.Document, error) {
	d, err := s.Repos.Doctype.GetByName(doctypeName)
	if err != nil {
		return nil, err
	}
	if err := s.validate(&d, data); err != nil {
		return nil, err
	}

	doc := &document.Document{
		DoctypeID: d.ID,
		CreatedBy: userID,
		UpdatedBy: userID,
	}
	if err := doc.SetData(data); err != nil {
		return nil, err
	}
	if err := s.Repos.Document.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) UpdateDocument(id uint, data map[string]interface{}, userID *uint) (*document.Document, error) {
	doc, err := s.Repos.Document.GetByID(id)
	if err != nil {
		return nil, err
	}
	d, err := s.Repos.Doctype.GetByID(doc.DoctypeID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(&d, data); err != nil {
		return nil, err
	}

	if err := doc.SetData(data); err != nil {
		return nil, err
	}
	doc.UpdatedBy = userID
	if err := s.Repos.Document.Update(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *DocumentService) DeleteDocument(id uint) error {
	if _, err := s.Repos.Document.GetByID(id); err != nil {
		return err
	}
	return s.Repos.Document.Delete(id)
}

// Stats summarizes document volume for a doctype.
func (s *DocumentService) Stats(doctypeName string) (document.Stats, error) {
	d, err := s.Repos.Doctype.GetByName(doctypeName)
	if err != nil {
		return document.Stats{}, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := today.AddDate(0, 0, -(weekday - 1))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var stats document.Stats
	if stats.Total, err = s.Repos.Document.CountByDoctype(d.ID); err != nil {
		return stats, err
	}
	if stats.Today, err = s.Repos.Document.CountByDoctypeSince(d.ID, today); err != nil {
		return stats, err
	}
	if stats.ThisWeek, err = s.Repos.Document.CountByDoctypeSince(d.ID, weekStart); err != nil {
		return stats, err
	}
	if stats.ThisMonth, err = s.Repos.Document.CountByDoctypeSince(d.ID, monthStart); err != nil {
		return stats, err
	}
	return stats, nil
}

func (s *DocumentService) validate(d *doctype.Doctype, data map[string]interface{}) error {
	formSchema, err := s.builder.Build(d)
	if err != nil {
		return err
	}
	if errs := s.engine.Validate(formSchema, data); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

package application

import (
	"encoding/json"
	"fmt"

	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
	"github.com/ngodingskuyy/doctypes-go/internal/repository"
	"github.com/ngodingskuyy/doctypes-go/internal/schema"
	"github.com/ngodingskuyy/doctypes-go/pkg/naming"
)

type DoctypeService struct {
	Repos    *repository.Repos
	registry *fieldtype.Registry
	builder  *schema.Builder
}

func NewDoctypeService(repos *repository.Repos, registry *fieldtype.Registry) *DoctypeService {
	return &DoctypeService{
		Repos:    repos,
		registry: registry,
		builder:  schema.NewBuilder(registry),
	}
}

func (s *DoctypeService) ListDoctypes(f doctype.ListFilters) ([]doctype.Doctype, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 15
	}
	return s.Repos.Doctype.List(f)
}

func (s *DoctypeService) GetDoctype(id uint) (doctype.Doctype, error) {
	return s.Repos.Doctype.GetByID(id)
}

func (s *DoctypeService) GetDoctypeByName(name string) (doctype.Doctype, error) {
	return s.Repos.Doctype.GetByName(name)
}

func (s *DoctypeService) CreateDoctype(input doctype.CreateDoctypeDTO) (*doctype.Doctype, error) {
	if !naming.IsValidIdentifier(input.Name) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIdentifier, input.Name)
	}

	fields, err := s.buildFields(input.Fields)
	if err != nil {
		return nil, err
	}

	d := &doctype.Doctype{
		Name:        input.Name,
		Label:       input.Label,
		Description: input.Description,
		IsActive:    true,
		Icon:        input.Icon,
		Color:       input.Color,
	}
	if input.IsActive != nil {
		d.IsActive = *input.IsActive
	}
	if input.Settings != nil {
		raw, err := json.Marshal(input.Settings)
		if err != nil {
			return nil, err
		}
		d.Settings = raw
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Doctype.Create(d); err != nil {
			return err
		}
		if len(fields) > 0 {
			return tx.Doctype.ReplaceFields(d.ID, fields)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := s.Repos.Doctype.GetByID(d.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *DoctypeService) UpdateDoctype(id uint, input doctype.UpdateDoctypeDTO) (*doctype.Doctype, error) {
	d, err := s.Repos.Doctype.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d.IsSystemDoctype() {
		return nil, ErrSystemDoctype
	}

	if input.Label != nil {
		d.Label = *input.Label
	}
	if input.Description != nil {
		d.Description = *input.Description
	}
	if input.IsActive != nil {
		d.IsActive = *input.IsActive
	}
	if input.Icon != nil {
		d.Icon = *input.Icon
	}
	if input.Color != nil {
		d.Color = *input.Color
	}
	if input.Settings != nil {
		raw, err := json.Marshal(input.Settings)
		if err != nil {
			return nil, err
		}
		d.Settings = raw
	}

	var fields []doctype.DoctypeField
	if input.Fields != nil {
		fields, err = s.buildFields(input.Fields)
		if err != nil {
			return nil, err
		}
	}

	d.DoctypeFields = nil
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Doctype.Update(&d); err != nil {
			return err
		}
		if input.Fields != nil {
			return tx.Doctype.ReplaceFields(d.ID, fields)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repos.Doctype.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *DoctypeService) DeleteDoctype(id uint) error {
	d, err := s.Repos.Doctype.GetByID(id)
	if err != nil {
		return err
	}
	if d.IsSystemDoctype() {
		return ErrSystemDoctype
	}

	count, err := s.Repos.Document.CountByDoctype(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %d document(s)", ErrDoctypeInUse, count)
	}

	return s.Repos.Doctype.Delete(id)
}

// AddField appends one field definition, rejecting invalid identifiers,
// unknown field types, and duplicate names.
func (s *DoctypeService) AddField(doctypeID uint, input doctype.FieldInputDTO) (*doctype.DoctypeField, error) {
	d, err := s.Repos.Doctype.GetByID(doctypeID)
	if err != nil {
		return nil, err
	}
	if d.IsSystemDoctype() {
		return nil, ErrSystemDoctype
	}
	if d.HasField(input.Fieldname) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateFieldName, input.Fieldname)
	}

	field, err := s.buildField(input)
	if err != nil {
		return nil, err
	}
	field.DoctypeID = doctypeID

	if err := s.Repos.Doctype.AddField(&field); err != nil {
		return nil, err
	}
	return &field, nil
}

func (s *DoctypeService) UpdateField(doctypeID uint, fieldname string, input doctype.UpdateFieldDTO) (*doctype.DoctypeField, error) {
	d, err := s.Repos.Doctype.GetByID(doctypeID)
	if err != nil {
		return nil, err
	}
	if d.IsSystemDoctype() {
		return nil, ErrSystemDoctype
	}

	field, err := s.Repos.Doctype.GetField(doctypeID, fieldname)
	if err != nil {
		return nil, err
	}

	if input.Label != nil {
		field.Label = *input.Label
	}
	if input.Fieldtype != nil {
		t := fieldtype.Type(*input.Fieldtype)
		if !s.registry.IsValid(t) {
			return nil, fmt.Errorf("%w: %s", fieldtype.ErrUnknownFieldType, t)
		}
		field.Fieldtype = t
	}
	if input.Options != nil {
		raw, err := json.Marshal(input.Options)
		if err != nil {
			return nil, err
		}
		field.Options = raw
	}
	if input.Required != nil {
		field.Required = *input.Required
	}
	if input.Unique != nil {
		field.Unique = *input.Unique
	}
	if input.InListView != nil {
		field.InListView = *input.InListView
	}
	if input.InStandardFilter != nil {
		field.InStandardFilter = *input.InStandardFilter
	}
	if input.ReadOnly != nil {
		field.ReadOnly = *input.ReadOnly
	}
	if input.Hidden != nil {
		field.Hidden = *input.Hidden
	}
	if input.Description != nil {
		field.Description = *input.Description
	}
	if input.DefaultValue != nil {
		field.DefaultValue = input.DefaultValue
	}
	if input.SortOrder != nil {
		field.SortOrder = *input.SortOrder
	}
	if input.DependsOn != nil {
		field.DependsOn = *input.DependsOn
	}

	if err := s.Repos.Doctype.UpdateField(&field); err != nil {
		return nil, err
	}
	return &field, nil
}

func (s *DoctypeService) RemoveField(doctypeID uint, fieldname string) error {
	d, err := s.Repos.Doctype.GetByID(doctypeID)
	if err != nil {
		return err
	}
	if d.IsSystemDoctype() {
		return ErrSystemDoctype
	}

	affected, err := s.Repos.Doctype.DeleteField(doctypeID, fieldname)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("field %s not found", fieldname)
	}
	return nil
}

// FormSchema derives the UI-ready projection for a doctype by name.
func (s *DoctypeService) FormSchema(name string) (schema.FormSchema, error) {
	d, err := s.Repos.Doctype.GetByName(name)
	if err != nil {
		return schema.FormSchema{}, err
	}
	return s.builder.Build(&d)
}

// ListConfig projects the list-view and standard-filter configuration.
func (s *DoctypeService) ListConfig(name string) (doctype.ListConfig, error) {
	d, err := s.Repos.Doctype.GetByName(name)
	if err != nil {
		return doctype.ListConfig{}, err
	}

	listFields := d.ListViewFields()
	filterFields := d.FilterFields()
	cfg := doctype.ListConfig{
		Doctype:      d.Name,
		Title:        d.Label,
		Fields:       map[string]doctype.ListConfigField{},
		ListFields:   listFields,
		FilterFields: filterFields,
	}
	for _, f := range d.DoctypeFields {
		if !f.InListView && !f.InStandardFilter {
			continue
		}
		cfg.Fields[f.Fieldname] = doctype.ListConfigField{
			Label:    f.Label,
			Type:     string(f.Fieldtype),
			InList:   f.InListView,
			InFilter: f.InStandardFilter,
		}
	}
	return cfg, nil
}

func (s *DoctypeService) buildFields(inputs []doctype.FieldInputDTO) ([]doctype.DoctypeField, error) {
	seen := map[string]bool{}
	var fields []doctype.DoctypeField
	for _, input := range inputs {
		if seen[input.Fieldname] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFieldName, input.Fieldname)
		}
		seen[input.Fieldname] = true

		field, err := s.buildField(input)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (s *DoctypeService) buildField(input doctype.FieldInputDTO) (doctype.DoctypeField, error) {
	if !naming.IsValidIdentifier(input.Fieldname) {
		return doctype.DoctypeField{}, fmt.Errorf("%w: %s", ErrInvalidIdentifier, input.Fieldname)
	}
	t := fieldtype.Type(input.Fieldtype)
	if !s.registry.IsValid(t) {
		return doctype.DoctypeField{}, fmt.Errorf("%w: %s", fieldtype.ErrUnknownFieldType, input.Fieldtype)
	}

	label := input.Label
	if label == "" {
		label = input.Fieldname
	}

	field := doctype.DoctypeField{
		Fieldname:        input.Fieldname,
		Label:            label,
		Fieldtype:        t,
		Required:         input.Required,
		Unique:           input.Unique,
		InListView:       input.InListView,
		InStandardFilter: input.InStandardFilter,
		ReadOnly:         input.ReadOnly,
		Hidden:           input.Hidden,
		Description:      input.Description,
		DefaultValue:     input.DefaultValue,
		SortOrder:        input.SortOrder,
		DependsOn:        input.DependsOn,
	}
	if input.Options != nil {
		raw, err := json.Marshal(input.Options)
		if err != nil {
			return doctype.DoctypeField{}, err
		}
		field.Options = raw
	}
	return field, nil
}

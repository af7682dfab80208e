package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
	"github.com/ngodingskuyy/doctypes-go/pkg/naming"
	"gopkg.in/yaml.v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// File is the on-disk seed format: a list of doctype definitions that are
// created once and then left alone, so installations can edit them afterwards.
type File struct {
	Doctypes []Definition `yaml:"doctypes"`
}

type Definition struct {
	Name        string            `yaml:"name"`
	Label       string            `yaml:"label"`
	Description string            `yaml:"description"`
	Icon        string            `yaml:"icon"`
	Color       string            `yaml:"color"`
	IsSystem    bool              `yaml:"is_system"`
	Fields      []FieldDefinition `yaml:"fields"`
}

type FieldDefinition struct {
	Fieldname        string      `yaml:"fieldname"`
	Label            string      `yaml:"label"`
	Fieldtype        string      `yaml:"fieldtype"`
	Options          interface{} `yaml:"options"`
	Required         bool        `yaml:"required"`
	Unique           bool        `yaml:"unique"`
	InListView       bool        `yaml:"in_list_view"`
	InStandardFilter bool        `yaml:"in_standard_filter"`
	ReadOnly         bool        `yaml:"read_only"`
	Hidden           bool        `yaml:"hidden"`
	Description      string      `yaml:"description"`
	DefaultValue     *string     `yaml:"default_value"`
	SortOrder        int         `yaml:"sort_order"`
	DependsOn        string      `yaml:"depends_on"`
}

// ApplyFile loads a YAML seed file and applies it to the database.
func ApplyFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	return Apply(db, f)
}

// Apply creates every seeded doctype that does not exist yet. Existing
// doctypes are skipped, never updated.
func Apply(db *gorm.DB, f File) error {
	registry := fieldtype.NewRegistry()
	for _, def := range f.Doctypes {
		if !naming.IsValidIdentifier(def.Name) {
			return fmt.Errorf("seed doctype %q: invalid identifier", def.Name)
		}
		var existing int64
		if err := db.Model(&doctype.Doctype{}).Where("name = ?", def.Name).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			continue
		}
		if err := create(db, registry, def); err != nil {
			return fmt.Errorf("seed doctype %q: %w", def.Name, err)
		}
	}
	return nil
}

func create(db *gorm.DB, registry *fieldtype.Registry, def Definition) error {
	label := def.Label
	if label == "" {
		label = naming.Pascal(def.Name)
	}
	d := doctype.Doctype{
		Name:        def.Name,
		Label:       label,
		Description: def.Description,
		Icon:        def.Icon,
		Color:       def.Color,
		IsActive:    true,
		IsSystem:    def.IsSystem,
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&d).Error; err != nil {
			return err
		}
		for i, fd := range def.Fields {
			field, err := buildField(registry, d.ID, i, fd)
			if err != nil {
				return err
			}
			if err := tx.Create(field).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func buildField(registry *fieldtype.Registry, doctypeID uint, idx int, fd FieldDefinition) (*doctype.DoctypeField, error) {
	if !naming.IsValidIdentifier(fd.Fieldname) {
		return nil, fmt.Errorf("field %q: invalid identifier", fd.Fieldname)
	}
	ft := fieldtype.Type(fd.Fieldtype)
	if !registry.IsValid(ft) {
		return nil, fmt.Errorf("field %q: %w: %s", fd.Fieldname, fieldtype.ErrUnknownFieldType, fd.Fieldtype)
	}
	label := fd.Label
	if label == "" {
		label = naming.Pascal(fd.Fieldname)
	}
	sortOrder := fd.SortOrder
	if sortOrder == 0 {
		sortOrder = idx
	}
	field := &doctype.DoctypeField{
		DoctypeID:        doctypeID,
		Fieldname:        fd.Fieldname,
		Label:            label,
		Fieldtype:        ft,
		Required:         fd.Required,
		Unique:           fd.Unique,
		InListView:       fd.InListView,
		InStandardFilter: fd.InStandardFilter,
		ReadOnly:         fd.ReadOnly,
		Hidden:           fd.Hidden,
		Description:      fd.Description,
		DefaultValue:     fd.DefaultValue,
		SortOrder:        sortOrder,
		DependsOn:        fd.DependsOn,
	}
	if fd.Options != nil {
		blob, err := json.Marshal(yamlToJSON(fd.Options))
		if err != nil {
			return nil, fmt.Errorf("field %q: encode options: %w", fd.Fieldname, err)
		}
		field.Options = datatypes.JSON(blob)
	}
	return field, nil
}

// yamlToJSON rewrites the map[interface{}]interface{} trees produced by
// yaml.v2 into map[string]interface{} so they survive json.Marshal.
func yamlToJSON(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprintf("%v", k)] = yamlToJSON(val)
		}
		return m
	case []interface{}:
		for i, val := range t {
			t[i] = yamlToJSON(val)
		}
		return t
	default:
		return v
	}
}

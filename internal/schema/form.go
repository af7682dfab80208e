package schema

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
)

// ErrNoFields rejects form generation for a doctype without any field
// definition in either storage shape.
var ErrNoFields = errors.New("doctype has no fields")

// Validation is the synthesized constraint block for one form field.
type Validation struct {
	Required  bool     `json:"required"`
	MinLength *int     `json:"min_length,omitempty"`
	MaxLength *int     `json:"max_length,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Email     bool     `json:"email,omitempty"`
}

// Field is one UI-ready field of a form schema.
type Field struct {
	Name             string                 `json:"name"`
	Label            string                 `json:"label"`
	Type             fieldtype.Type         `json:"type"`
	Required         bool                   `json:"required"`
	Unique           bool                   `json:"unique"`
	ReadOnly         bool                   `json:"read_only,omitempty"`
	Hidden           bool                   `json:"hidden,omitempty"`
	InListView       bool                   `json:"in_list_view"`
	InStandardFilter bool                   `json:"in_standard_filter"`
	Description      string                 `json:"description,omitempty"`
	Placeholder      string                 `json:"placeholder,omitempty"`
	Options          map[string]interface{} `json:"options"`
	Validation       Validation             `json:"validation"`
	DefaultValue     interface{}            `json:"default_value,omitempty"`
	DependsOn        string                 `json:"depends_on,omitempty"`
}

// FormSchema is the derived projection of a doctype's fields. Regenerated on
// every read, never persisted or mutated in place.
type FormSchema struct {
	Doctype string  `json:"doctype"`
	Title   string  `json:"title"`
	Fields  []Field `json:"fields"`
}

// FieldByName looks a field up by name.
func (s FormSchema) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Builder derives form schemas, filling unset field options from the
// field type registry.
type Builder struct {
	registry *fieldtype.Registry
}

func NewBuilder(registry *fieldtype.Registry) *Builder {
	return &Builder{registry: registry}
}

// Build projects a doctype into its form schema. The normalized child table
// takes precedence; the legacy JSON blob is parsed only when no child rows
// exist.
func (b *Builder) Build(d *doctype.Doctype) (FormSchema, error) {
	defs := d.DoctypeFields
	if len(defs) == 0 {
		defs = parseLegacyFields(d.Fields)
	}
	if len(defs) == 0 {
		return FormSchema{}, ErrNoFields
	}

	sort.SliceStable(defs, func(i, j int) bool {
		return defs[i].SortOrder < defs[j].SortOrder
	})

	schema := FormSchema{Doctype: d.Name, Title: d.Label}
	for _, def := range defs {
		schema.Fields = append(schema.Fields, b.buildField(def))
	}
	return schema, nil
}

func (b *Builder) buildField(def doctype.DoctypeField) Field {
	options := b.normalizeOptions(def)

	placeholder := def.Label
	if p, ok := options["placeholder"].(string); ok && p != "" {
		placeholder = p
	}

	var defaultValue interface{}
	if def.DefaultValue != nil {
		defaultValue = *def.DefaultValue
	}

	return Field{
		Name:             def.Fieldname,
		Label:            def.Label,
		Type:             def.Fieldtype,
		Required:         def.Required,
		Unique:           def.Unique,
		ReadOnly:         def.ReadOnly,
		Hidden:           def.Hidden,
		InListView:       def.InListView,
		InStandardFilter: def.InStandardFilter,
		Description:      def.Description,
		Placeholder:      placeholder,
		Options:          options,
		Validation:       b.buildValidation(def, options),
		DefaultValue:     defaultValue,
		DependsOn:        def.DependsOn,
	}
}

// normalizeOptions accepts the three stored shapes: a comma-separated string
// (legacy), a bare choice list, or a structured object. Absent options fall
// back to the registry defaults for the type.
func (b *Builder) normalizeOptions(def doctype.DoctypeField) map[string]interface{} {
	if len(def.Options) == 0 {
		return b.registry.DefaultOptions(def.Fieldtype)
	}

	var raw interface{}
	if err := json.Unmarshal(def.Options, &raw); err != nil {
		return b.registry.DefaultOptions(def.Fieldtype)
	}

	switch v := raw.(type) {
	case string:
		var choices []interface{}
		for _, tok := range strings.Split(v, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				choices = append(choices, tok)
			}
		}
		return map[string]interface{}{"options": choices}
	case []interface{}:
		return map[string]interface{}{"options": v}
	case map[string]interface{}:
		return v
	default:
		return b.registry.DefaultOptions(def.Fieldtype)
	}
}

func (b *Builder) buildValidation(def doctype.DoctypeField, options map[string]interface{}) Validation {
	v := Validation{Required: def.Required}

	switch def.Fieldtype {
	case fieldtype.Text, fieldtype.Textarea, fieldtype.Password:
		v.MinLength = intOption(options, "minLength")
		v.MaxLength = intOption(options, "maxLength")
		if p, ok := options["pattern"].(string); ok {
			v.Pattern = p
		}
	case fieldtype.Number:
		v.Min = floatOption(options, "min")
		v.Max = floatOption(options, "max")
	case fieldtype.Email:
		v.Email = true
	}
	return v
}

func intOption(options map[string]interface{}, key string) *int {
	if f := floatOption(options, key); f != nil {
		n := int(*f)
		return &n
	}
	return nil
}

func floatOption(options map[string]interface{}, key string) *float64 {
	switch v := options[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	default:
		return nil
	}
}

// parseLegacyFields decodes the loosely-typed blob shape: an array of maps
// keyed by either fieldname/name and fieldtype/type. Unusable entries are
// dropped rather than failing the whole doctype.
func parseLegacyFields(blob []byte) []doctype.DoctypeField {
	if len(blob) == 0 {
		return nil
	}
	var raw []map[string]interface{}
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil
	}

	var defs []doctype.DoctypeField
	for _, m := range raw {
		name := stringKey(m, "fieldname", "name")
		ftype := stringKey(m, "fieldtype", "type")
		if name == "" || ftype == "" {
			continue
		}
		def := doctype.DoctypeField{
			Fieldname:        name,
			Label:            stringKey(m, "label"),
			Fieldtype:        fieldtype.Type(ftype),
			Required:         boolKey(m, "required"),
			Unique:           boolKey(m, "unique"),
			InListView:       boolKey(m, "in_list_view"),
			InStandardFilter: boolKey(m, "in_standard_filter"),
			ReadOnly:         boolKey(m, "read_only"),
			Hidden:           boolKey(m, "hidden"),
			Description:      stringKey(m, "description"),
			DependsOn:        stringKey(m, "depends_on"),
		}
		if def.Label == "" {
			def.Label = name
		}
		if v, ok := m["sort_order"].(float64); ok {
			def.SortOrder = int(v)
		}
		if v, ok := m["default_value"].(string); ok {
			def.DefaultValue = &v
		}
		if opts, ok := m["options"]; ok && opts != nil {
			if raw, err := json.Marshal(opts); err == nil {
				def.Options = raw
			}
		}
		defs = append(defs, def)
	}
	return defs
}

func stringKey(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func boolKey(m map[string]interface{}, key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v == "1" || v == "true"
	default:
		return false
	}
}

package schema

import (
	"testing"

	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func newBuilder() *Builder {
	return NewBuilder(fieldtype.NewRegistry())
}

func strPtr(s string) *string { return &s }

func TestBuildNoFields(t *testing.T) {
	b := newBuilder()

	_, err := b.Build(&doctype.Doctype{Name: "empty", Label: "Empty"})
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestBuildOrdersBySortOrder(t *testing.T) {
	b := newBuilder()

	d := &doctype.Doctype{
		Name:  "customer",
		Label: "Customer",
		DoctypeFields: []doctype.DoctypeField{
			{Fieldname: "email", Label: "Email", Fieldtype: fieldtype.Email, SortOrder: 2},
			{Fieldname: "full_name", Label: "Full Name", Fieldtype: fieldtype.Text, SortOrder: 1},
			{Fieldname: "status", Label: "Status", Fieldtype: fieldtype.Select, SortOrder: 1},
		},
	}

	s, err := b.Build(d)
	assert.NoError(t, err)
	assert.Equal(t, "customer", s.Doctype)
	assert.Equal(t, "Customer", s.Title)

	var names []string
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	// equal sort orders keep declaration order
	assert.Equal(t, []string{"full_name", "status", "email"}, names)
}

func TestBuildIsIdempotent(t *testing.T) {
	b := newBuilder()

	d := &doctype.Doctype{
		Name:  "customer",
		Label: "Customer",
		DoctypeFields: []doctype.DoctypeField{
			{Fieldname: "b", Label: "B", Fieldtype: fieldtype.Text, SortOrder: 2},
			{Fieldname: "a", Label: "A", Fieldtype: fieldtype.Text, SortOrder: 1},
		},
	}

	first, err := b.Build(d)
	assert.NoError(t, err)
	second, err := b.Build(d)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildChildTableWinsOverBlob(t *testing.T) {
	b := newBuilder()

	d := &doctype.Doctype{
		Name:   "customer",
		Label:  "Customer",
		Fields: datatypes.JSON(`[{"fieldname":"legacy_only","fieldtype":"text"}]`),
		DoctypeFields: []doctype.DoctypeField{
			{Fieldname: "email", Label: "Email", Fieldtype: fieldtype.Email},
		},
	}

	s, err := b.Build(d)
	assert.NoError(t, err)
	assert.Len(t, s.Fields, 1)
	assert.Equal(t, "email", s.Fields[0].Name)
}

func TestBuildLegacyBlobFallback(t *testing.T) {
	b := newBuilder()

	d := &doctype.Doctype{
		Name:  "legacy",
		Label: "Legacy",
		Fields: datatypes.JSON(`[
			{"name": "title", "type": "text", "required": "1", "sort_order": 2},
			{"fieldname": "amount", "fieldtype": "number", "required": true, "sort_order": 1},
			{"type": "text"},
			{"fieldname": "nameless"}
		]`),
	}

	s, err := b.Build(d)
	assert.NoError(t, err)
	// entries without both a name and a type are dropped
	assert.Len(t, s.Fields, 2)
	assert.Equal(t, "amount", s.Fields[0].Name)
	assert.Equal(t, "title", s.Fields[1].Name)
	assert.True(t, s.Fields[1].Required)
	// missing label falls back to the fieldname
	assert.Equal(t, "title", s.Fields[1].Label)
}

func TestBuildFieldPlaceholder(t *testing.T) {
	b := newBuilder()

	d := &doctype.Doctype{
		Name:  "customer",
		Label: "Customer",
		DoctypeFields: []doctype.DoctypeField{
			{Fieldname: "email", Label: "Email", Fieldtype: fieldtype.Email,
				Options: datatypes.JSON(`{"placeholder": "you@acme.io"}`)},
			{Fieldname: "notes", Label: "Notes", Fieldtype: fieldtype.Textarea,
				Options: datatypes.JSON(`{}`)},
		},
	}

	s, err := b.Build(d)
	assert.NoError(t, err)
	assert.Equal(t, "you@acme.io", s.Fields[0].Placeholder)
	// no placeholder option defaults to the label
	assert.Equal(t, "Notes", s.Fields[1].Placeholder)
}

func TestNormalizeOptionsShapes(t *testing.T) {
	b := newBuilder()

	commaString := doctype.DoctypeField{
		Fieldname: "status", Fieldtype: fieldtype.Select,
		Options: datatypes.JSON(`"active, inactive , "`),
	}
	opts := b.normalizeOptions(commaString)
	assert.Equal(t, []interface{}{"active", "inactive"}, opts["options"])

	bareList := doctype.DoctypeField{
		Fieldname: "status", Fieldtype: fieldtype.Select,
		Options: datatypes.JSON(`["a", "b"]`),
	}
	opts = b.normalizeOptions(bareList)
	assert.Equal(t, []interface{}{"a", "b"}, opts["options"])

	structured := doctype.DoctypeField{
		Fieldname: "age", Fieldtype: fieldtype.Number,
		Options: datatypes.JSON(`{"min": 18, "max": 120}`),
	}
	opts = b.normalizeOptions(structured)
	assert.Equal(t, float64(18), opts["min"])

	absent := doctype.DoctypeField{Fieldname: "name", Fieldtype: fieldtype.Text}
	opts = b.normalizeOptions(absent)
	assert.Equal(t, 255, opts["maxLength"])

	malformed := doctype.DoctypeField{
		Fieldname: "name", Fieldtype: fieldtype.Text,
		Options: datatypes.JSON(`{broken`),
	}
	opts = b.normalizeOptions(malformed)
	assert.Equal(t, 255, opts["maxLength"])
}

func TestBuildValidation(t *testing.T) {
	b := newBuilder()

	d := &doctype.Doctype{
		Name:  "profile",
		Label: "Profile",
		DoctypeFields: []doctype.DoctypeField{
			{Fieldname: "bio", Label: "Bio", Fieldtype: fieldtype.Textarea, Required: true,
				Options: datatypes.JSON(`{"minLength": 10, "maxLength": 500, "pattern": "^[a-z]+$"}`)},
			{Fieldname: "age", Label: "Age", Fieldtype: fieldtype.Number,
				Options: datatypes.JSON(`{"min": 18, "max": 120}`)},
			{Fieldname: "email", Label: "Email", Fieldtype: fieldtype.Email},
		},
	}

	s, err := b.Build(d)
	assert.NoError(t, err)

	bio, _ := s.FieldByName("bio")
	assert.True(t, bio.Validation.Required)
	assert.Equal(t, 10, *bio.Validation.MinLength)
	assert.Equal(t, 500, *bio.Validation.MaxLength)
	assert.Equal(t, "^[a-z]+$", bio.Validation.Pattern)

	age, _ := s.FieldByName("age")
	assert.Equal(t, float64(18), *age.Validation.Min)
	assert.Equal(t, float64(120), *age.Validation.Max)

	email, _ := s.FieldByName("email")
	assert.True(t, email.Validation.Email)
}

func TestBuildDefaultValue(t *testing.T) {
	b := newBuilder()

	d := &doctype.Doctype{
		Name:  "customer",
		Label: "Customer",
		DoctypeFields: []doctype.DoctypeField{
			{Fieldname: "status", Label: "Status", Fieldtype: fieldtype.Select,
				DefaultValue: strPtr("active")},
			{Fieldname: "notes", Label: "Notes", Fieldtype: fieldtype.Textarea},
		},
	}

	s, err := b.Build(d)
	assert.NoError(t, err)

	status, _ := s.FieldByName("status")
	assert.Equal(t, "active", status.DefaultValue)
	notes, _ := s.FieldByName("notes")
	assert.Nil(t, notes.DefaultValue)
}

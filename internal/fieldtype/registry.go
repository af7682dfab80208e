package fieldtype

import (
	"errors"
	"fmt"
)

// Type identifies one of the supported field types. The set is closed:
// extending it means updating the registry catalog below and every consumer
// that switches on it (schema builder, validation engine, generator).
type Type string

const (
	Text     Type = "text"
	Textarea Type = "textarea"
	Number   Type = "number"
	Email    Type = "email"
	Password Type = "password"
	Select   Type = "select"
	Checkbox Type = "checkbox"
	Date     Type = "date"
	Datetime Type = "datetime"
	Time     Type = "time"
	File     Type = "file"
	Image    Type = "image"
	JSON     Type = "json"
)

var ErrUnknownFieldType = errors.New("unknown field type")

// TypeInfo is the UI-facing metadata for a field type.
type TypeInfo struct {
	Value          Type                   `json:"value"`
	Label          string                 `json:"label"`
	Description    string                 `json:"description"`
	HasOptions     bool                   `json:"has_options"`
	DefaultOptions map[string]interface{} `json:"default_options"`
}

// Registry is the immutable catalog of field types. Built once at startup and
// safe for unsynchronized concurrent reads.
type Registry struct {
	order []Type
	types map[Type]TypeInfo
}

func NewRegistry() *Registry {
	r := &Registry{types: map[Type]TypeInfo{}}
	for _, info := range catalog {
		r.order = append(r.order, info.Value)
		r.types[info.Value] = info
	}
	return r
}

var catalog = []TypeInfo{
	{Text, "Text", "Single line text input", true,
		map[string]interface{}{"placeholder": "Enter text...", "maxLength": 255}},
	{Textarea, "Textarea", "Multi-line text input", true,
		map[string]interface{}{"rows": 3, "placeholder": "Enter text...", "maxLength": 1000}},
	{Number, "Number", "Numeric input with validation", true,
		map[string]interface{}{"min": 0, "step": 1, "placeholder": "0"}},
	{Email, "Email", "Email address input with validation", true,
		map[string]interface{}{"placeholder": "user@example.com"}},
	{Password, "Password", "Password input field", true,
		map[string]interface{}{"minLength": 8, "placeholder": "Enter password..."}},
	{Select, "Select", "Dropdown selection field", true,
		map[string]interface{}{"options": []interface{}{}, "placeholder": "Select an option..."}},
	{Checkbox, "Checkbox", "Boolean checkbox field", false,
		map[string]interface{}{}},
	{Date, "Date", "Date picker field", true,
		map[string]interface{}{"format": "YYYY-MM-DD"}},
	{Datetime, "DateTime", "Date and time picker", true,
		map[string]interface{}{"format": "YYYY-MM-DD HH:mm:ss", "show_time": true}},
	{Time, "Time", "Time picker field", true,
		map[string]interface{}{"format": "HH:mm"}},
	{File, "File", "File upload field", true,
		map[string]interface{}{"accept": "*", "max_size": 10}},
	{Image, "Image", "Image upload field", true,
		map[string]interface{}{"accept": "image/*", "max_size": 5}},
	{JSON, "JSON", "Raw JSON value", false,
		map[string]interface{}{}},
}

// IsValid reports whether t belongs to the closed type set.
func (r *Registry) IsValid(t Type) bool {
	_, ok := r.types[t]
	return ok
}

// Lookup returns the metadata for t, with DefaultOptions copied so the caller
// may mutate freely.
func (r *Registry) Lookup(t Type) (TypeInfo, error) {
	info, ok := r.types[t]
	if !ok {
		return TypeInfo{}, fmt.Errorf("%w: %s", ErrUnknownFieldType, t)
	}
	info.DefaultOptions = copyOptions(info.DefaultOptions)
	return info, nil
}

// All returns the catalog in declaration order, with copied option maps.
func (r *Registry) All() []TypeInfo {
	out := make([]TypeInfo, 0, len(r.order))
	for _, t := range r.order {
		info := r.types[t]
		info.DefaultOptions = copyOptions(info.DefaultOptions)
		out = append(out, info)
	}
	return out
}

// DefaultOptions returns a fresh copy of the default option bag for t.
// Unknown types yield an empty bag.
func (r *Registry) DefaultOptions(t Type) map[string]interface{} {
	info, ok := r.types[t]
	if !ok {
		return map[string]interface{}{}
	}
	return copyOptions(info.DefaultOptions)
}

// ZeroValue is the value a form seeds for a field with no explicit default.
func ZeroValue(t Type) interface{} {
	switch t {
	case Checkbox:
		return false
	case Number:
		return float64(0)
	default:
		return ""
	}
}

func copyOptions(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		if list, ok := v.([]interface{}); ok {
			v = append([]interface{}(nil), list...)
		}
		dst[k] = v
	}
	return dst
}

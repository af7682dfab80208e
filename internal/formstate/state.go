// Package formstate tracks the lifecycle of one dynamic form: current values,
// dirtiness, per-field errors, and the create/edit/view save flow.
package formstate

import (
	"context"
	"errors"
	"reflect"

	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
	"github.com/ngodingskuyy/doctypes-go/internal/schema"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeView   Mode = "view"
)

var (
	// ErrValidationFailed aborts Save before any store dispatch.
	ErrValidationFailed = errors.New("validation failed")
	// ErrViewMode rejects Save in view mode.
	ErrViewMode = errors.New("cannot save in view mode")
)

// Store is the external record persistence boundary a manager dispatches to.
type Store interface {
	Create(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error)
	Update(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error)
}

// Manager is the client-side state machine for one form instance. It carries
// no shared state across requests; build one per form.
type Manager struct {
	schema   schema.FormSchema
	engine   *schema.Engine
	store    Store
	mode     Mode
	data     map[string]interface{}
	original map[string]interface{}
	errors   map[string]string
}

func NewManager(engine *schema.Engine, store Store, mode Mode) *Manager {
	return &Manager{
		engine: engine,
		store:  store,
		mode:   mode,
		data:   map[string]interface{}{},
		errors: map[string]string{},
	}
}

// Initialize seeds field values from record overlaid on per-field defaults
// (record wins when present), snapshots the result, and clears errors.
func (m *Manager) Initialize(s schema.FormSchema, record map[string]interface{}) {
	m.schema = s
	m.data = map[string]interface{}{}
	for _, field := range s.Fields {
		value := field.DefaultValue
		if value == nil {
			value = fieldtype.ZeroValue(field.Type)
		}
		if record != nil {
			if v, ok := record[field.Name]; ok && v != nil {
				value = v
			}
		}
		m.data[field.Name] = value
	}
	m.original = copyData(m.data)
	m.errors = map[string]string{}
}

// SetMode switches the lifecycle mode. Modes never transition automatically.
func (m *Manager) SetMode(mode Mode) {
	m.mode = mode
}

func (m *Manager) Mode() Mode {
	return m.mode
}

// UpdateField mutates one value and clears that field's error. Errors are
// recomputed on the next explicit Validate, not live.
func (m *Manager) UpdateField(name string, value interface{}) {
	m.data[name] = value
	delete(m.errors, name)
}

// Data returns a copy of the current values.
func (m *Manager) Data() map[string]interface{} {
	return copyData(m.data)
}

// Errors returns a copy of the current field error map.
func (m *Manager) Errors() map[string]string {
	out := make(map[string]string, len(m.errors))
	for k, v := range m.errors {
		out[k] = v
	}
	return out
}

func (m *Manager) FieldError(name string) (string, bool) {
	msg, ok := m.errors[name]
	return msg, ok
}

// IsDirty reports whether data deviates from the load-time snapshot. Always
// false in view mode.
func (m *Manager) IsDirty() bool {
	if m.mode == ModeView {
		return false
	}
	return !reflect.DeepEqual(m.data, m.original)
}

// Validate runs the engine over all visible fields, stores the result, and
// reports overall validity. View mode skips validation entirely.
func (m *Manager) Validate() bool {
	if m.mode == ModeView {
		m.errors = map[string]string{}
		return true
	}
	m.errors = m.engine.Validate(m.schema, m.data)
	return len(m.errors) == 0
}

// Save validates, dispatches create or update by mode, and on success adopts
// the saved values as the new clean snapshot. Errors from a failed dispatch
// leave the field error map untouched so the caller can fix and retry.
func (m *Manager) Save(ctx context.Context) (map[string]interface{}, error) {
	if m.mode == ModeView {
		return nil, ErrViewMode
	}
	if !m.Validate() {
		return nil, ErrValidationFailed
	}

	var saved map[string]interface{}
	var err error
	if m.mode == ModeCreate {
		saved, err = m.store.Create(ctx, m.Data())
	} else {
		saved, err = m.store.Update(ctx, m.Data())
	}
	if err != nil {
		return nil, err
	}

	if saved != nil {
		for _, field := range m.schema.Fields {
			if v, ok := saved[field.Name]; ok {
				m.data[field.Name] = v
			}
		}
	}
	m.original = copyData(m.data)
	return m.Data(), nil
}

// Reset restores schema defaults (not the load-time snapshot) and clears
// errors. Reverting to the last-loaded record is done by re-Initializing with
// that record.
func (m *Manager) Reset() {
	m.Initialize(m.schema, nil)
}

func copyData(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

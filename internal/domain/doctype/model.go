package doctype

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
	"gorm.io/datatypes"
)

// Doctype is a user-defined entity schema. Field definitions normally live in
// the doctype_fields child table; the Fields blob is a legacy storage shape
// kept for doctypes imported from older installations.
type Doctype struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Label         string         `gorm:"size:200;not null" json:"label"`
	Description   string         `gorm:"type:text" json:"description"`
	Fields        datatypes.JSON `json:"fields,omitempty"`
	Settings      datatypes.JSON `json:"settings,omitempty"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	IsSystem      bool           `gorm:"default:false" json:"is_system"`
	Icon          string         `gorm:"size:50" json:"icon"`
	Color         string         `gorm:"size:20" json:"color"`
	DoctypeFields []DoctypeField `gorm:"foreignKey:DoctypeID" json:"doctype_fields"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (Doctype) TableName() string {
	return "doctypes"
}

type DoctypeField struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	DoctypeID        uint           `gorm:"not null;uniqueIndex:idx_doctype_fieldname" json:"doctype_id"`
	Fieldname        string         `gorm:"size:100;not null;uniqueIndex:idx_doctype_fieldname" json:"fieldname"`
	Label            string         `gorm:"size:200" json:"label"`
	Fieldtype        fieldtype.Type `gorm:"size:50;not null" json:"fieldtype"`
	Options          datatypes.JSON `json:"options,omitempty"`
	Required         bool           `gorm:"default:false" json:"required"`
	Unique           bool           `gorm:"default:false" json:"unique"`
	InListView       bool           `gorm:"default:false" json:"in_list_view"`
	InStandardFilter bool           `gorm:"default:false" json:"in_standard_filter"`
	ReadOnly         bool           `gorm:"default:false" json:"read_only"`
	Hidden           bool           `gorm:"default:false" json:"hidden"`
	Description      string         `gorm:"type:text" json:"description"`
	DefaultValue     *string        `gorm:"size:500" json:"default_value"`
	SortOrder        int            `gorm:"default:0" json:"sort_order"`
	DependsOn        string         `gorm:"size:200" json:"depends_on"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (DoctypeField) TableName() string {
	return "doctype_fields"
}

// OptionsMap decodes the options blob. Returns nil when the blob is empty or
// not a JSON object; comma-string and array legacy shapes are handled by the
// schema builder, not here.
func (f *DoctypeField) OptionsMap() map[string]interface{} {
	if len(f.Options) == 0 {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(f.Options, &m); err != nil {
		return nil
	}
	return m
}

// SortedFields returns the field definitions ordered by sort_order, ties
// keeping declaration order. Callers get a copy they may reorder freely.
func (d *Doctype) SortedFields() []DoctypeField {
	fields := append([]DoctypeField(nil), d.DoctypeFields...)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].SortOrder < fields[j].SortOrder
	})
	return fields
}

func (d *Doctype) ListViewFields() []string {
	var names []string
	for _, f := range d.SortedFields() {
		if f.InListView {
			names = append(names, f.Fieldname)
		}
	}
	return names
}

func (d *Doctype) FilterFields() []string {
	var names []string
	for _, f := range d.SortedFields() {
		if f.InStandardFilter {
			names = append(names, f.Fieldname)
		}
	}
	return names
}

func (d *Doctype) IsSystemDoctype() bool {
	return d.IsSystem
}

func (d *Doctype) HasField(fieldname string) bool {
	for _, f := range d.DoctypeFields {
		if f.Fieldname == fieldname {
			return true
		}
	}
	return false
}

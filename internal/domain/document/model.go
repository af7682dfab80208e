package document

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Document is a persisted record conforming to a doctype's schema, stored in
// the generic JSON-blob table. Doctypes materialized into their own table by
// the generator bypass this model entirely.
type Document struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UUID      string           `gorm:"size:36;uniqueIndex" json:"uuid"`
	DoctypeID uint             `gorm:"not null;index" json:"doctype_id"`
	Data      datatypes.JSON   `json:"data"`
	CreatedBy *uint            `json:"created_by"`
	UpdatedBy *uint            `json:"updated_by"`
	Doctype   *doctype.Doctype `gorm:"foreignKey:DoctypeID" json:"doctype,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (Document) TableName() string {
	return "doctype_documents"
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.UUID == "" {
		d.UUID = uuid.NewString()
	}
	return nil
}

// DataMap decodes the data blob. Empty or malformed blobs yield an empty map.
func (d *Document) DataMap() map[string]interface{} {
	m := map[string]interface{}{}
	if len(d.Data) > 0 {
		_ = json.Unmarshal(d.Data, &m)
	}
	return m
}

// SetData replaces the data blob.
func (d *Document) SetData(data map[string]interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	d.Data = raw
	return nil
}

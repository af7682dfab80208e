package repository

import (
	"time"

	"github.com/ngodingskuyy/doctypes-go/internal/domain/document"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	GetByID(id uint) (document.Document, error)
	List(doctypeID uint, f document.ListFilters) ([]document.Document, int64, error)
	Create(d *document.Document) error
	Update(d *document.Document) error
	Delete(id uint) error
	CountByDoctype(doctypeID uint) (int64, error)
	CountByDoctypeSince(doctypeID uint, since time.Time) (int64, error)
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{db: db}
}

func (r *DBDocumentRepo) GetByID(id uint) (document.Document, error) {
	var d document.Document
	err := r.db.Preload("Doctype").First(&d, id).Error
	return d, err
}

func (r *DBDocumentRepo) List(doctypeID uint, f document.ListFilters) ([]document.Document, int64, error) {
	query := r.db.Model(&document.Document{}).Where("doctype_id = ?", doctypeID)

	if f.Search != "" {
		query = query.Where("data::text ILIKE ?", "%"+f.Search+"%")
	}
	if f.FromDate != nil {
		query = query.Where("created_at >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		query = query.Where("created_at <= ?", *f.ToDate)
	}
	for field, value := range f.Fields {
		query = query.Where(datatypes.JSONQuery("data").Equals(value, field))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docs []document.Document
	err := query.Order("created_at DESC").
		Offset((f.Page - 1) * f.PerPage).
		Limit(f.PerPage).
		Find(&docs).Error
	return docs, total, err
}

func (r *DBDocumentRepo) Create(d *document.Document) error {
	return r.db.Create(d).Error
}

func (r *DBDocumentRepo) Update(d *document.Document) error {
	return r.db.Save(d).Error
}

func (r *DBDocumentRepo) Delete(id uint) error {
	return r.db.Delete(&document.Document{}, id).Error
}

func (r *DBDocumentRepo) CountByDoctype(doctypeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&document.Document{}).Where("doctype_id = ?", doctypeID).Count(&count).Error
	return count, err
}

func (r *DBDocumentRepo) CountByDoctypeSince(doctypeID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&document.Document{}).
		Where("doctype_id = ? AND created_at >= ?", doctypeID, since).
		Count(&count).Error
	return count, err
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	if tx == nil {
		return r
	}
	return &DBDocumentRepo{db: tx}
}

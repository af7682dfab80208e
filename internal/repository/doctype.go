package repository

import (
	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
	"gorm.io/gorm"
)

type DoctypeRepo interface {
	GetByID(id uint) (doctype.Doctype, error)
	GetByName(name string) (doctype.Doctype, error)
	List(f doctype.ListFilters) ([]doctype.Doctype, int64, error)
	Create(d *doctype.Doctype) error
	Update(d *doctype.Doctype) error
	Delete(id uint) error
	ReplaceFields(doctypeID uint, fields []doctype.DoctypeField) error
	AddField(f *doctype.DoctypeField) error
	UpdateField(f *doctype.DoctypeField) error
	GetField(doctypeID uint, fieldname string) (doctype.DoctypeField, error)
	DeleteField(doctypeID uint, fieldname string) (int64, error)
	WithTx(tx *gorm.DB) DoctypeRepo
}

type DBDoctypeRepo struct {
	db *gorm.DB
}

func NewDoctypeRepo(db *gorm.DB) *DBDoctypeRepo {
	return &DBDoctypeRepo{db: db}
}

func (r *DBDoctypeRepo) GetByID(id uint) (doctype.Doctype, error) {
	var d doctype.Doctype
	err := r.db.Preload("DoctypeFields", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).First(&d, id).Error
	return d, err
}

func (r *DBDoctypeRepo) GetByName(name string) (doctype.Doctype, error) {
	var d doctype.Doctype
	err := r.db.Preload("DoctypeFields", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).Where("name = ?", name).First(&d).Error
	return d, err
}

func (r *DBDoctypeRepo) List(f doctype.ListFilters) ([]doctype.Doctype, int64, error) {
	query := r.db.Model(&doctype.Doctype{})

	if f.Active != nil {
		query = query.Where("is_active = ?", *f.Active)
	}
	if f.System != nil {
		query = query.Where("is_system = ?", *f.System)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("name ILIKE ? OR label ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var doctypes []doctype.Doctype
	err := query.Preload("DoctypeFields", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).Order("label ASC").
		Offset((f.Page - 1) * f.PerPage).
		Limit(f.PerPage).
		Find(&doctypes).Error
	return doctypes, total, err
}

func (r *DBDoctypeRepo) Create(d *doctype.Doctype) error {
	return r.db.Create(d).Error
}

func (r *DBDoctypeRepo) Update(d *doctype.Doctype) error {
	return r.db.Save(d).Error
}

func (r *DBDoctypeRepo) Delete(id uint) error {
	if err := r.db.Where("doctype_id = ?", id).Delete(&doctype.DoctypeField{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&doctype.Doctype{}, id).Error
}

func (r *DBDoctypeRepo) ReplaceFields(doctypeID uint, fields []doctype.DoctypeField) error {
	if err := r.db.Where("doctype_id = ?", doctypeID).Delete(&doctype.DoctypeField{}).Error; err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	for i := range fields {
		fields[i].DoctypeID = doctypeID
	}
	return r.db.Create(&fields).Error
}

func (r *DBDoctypeRepo) AddField(f *doctype.DoctypeField) error {
	return r.db.Create(f).Error
}

func (r *DBDoctypeRepo) UpdateField(f *doctype.DoctypeField) error {
	return r.db.Save(f).Error
}

func (r *DBDoctypeRepo) GetField(doctypeID uint, fieldname string) (doctype.DoctypeField, error) {
	var f doctype.DoctypeField
	err := r.db.Where("doctype_id = ? AND fieldname = ?", doctypeID, fieldname).First(&f).Error
	return f, err
}

func (r *DBDoctypeRepo) DeleteField(doctypeID uint, fieldname string) (int64, error) {
	res := r.db.Where("doctype_id = ? AND fieldname = ?", doctypeID, fieldname).
		Delete(&doctype.DoctypeField{})
	return res.RowsAffected, res.Error
}

func (r *DBDoctypeRepo) WithTx(tx *gorm.DB) DoctypeRepo {
	if tx == nil {
		return r
	}
	return &DBDoctypeRepo{db: tx}
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrTableNotFound means the doctype was never materialized into its own
// table; callers should generate the migration first.
var ErrTableNotFound = errors.New("table does not exist")

// RecordRepo executes generic CRUD against arbitrary tables resolved by name.
// No field-type coercion is applied; values pass through as given.
type RecordRepo interface {
	HasTable(table string) bool
	List(ctx context.Context, table string, page, perPage int) ([]map[string]interface{}, int64, error)
	Get(ctx context.Context, table string, id uint) (map[string]interface{}, error)
	Create(ctx context.Context, table string, data map[string]interface{}) (map[string]interface{}, error)
	Update(ctx context.Context, table string, id uint, data map[string]interface{}) (map[string]interface{}, error)
	Delete(ctx context.Context, table string, id uint) (int64, error)
}

type DBRecordRepo struct {
	db *gorm.DB
}

func NewRecordRepo(db *gorm.DB) *DBRecordRepo {
	return &DBRecordRepo{db: db}
}

func (r *DBRecordRepo) HasTable(table string) bool {
	return r.db.Migrator().HasTable(table)
}

func (r *DBRecordRepo) checkTable(table string) error {
	if !r.HasTable(table) {
		return fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	return nil
}

func (r *DBRecordRepo) List(ctx context.Context, table string, page, perPage int) ([]map[string]interface{}, int64, error) {
	if err := r.checkTable(table); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Table(table).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []map[string]interface{}
	err := r.db.WithContext(ctx).Table(table).
		Order("id ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error
	return rows, total, err
}

func (r *DBRecordRepo) Get(ctx context.Context, table string, id uint) (map[string]interface{}, error) {
	if err := r.checkTable(table); err != nil {
		return nil, err
	}

	row := map[string]interface{}{}
	err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Take(&row).Error
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *DBRecordRepo) Create(ctx context.Context, table string, data map[string]interface{}) (map[string]interface{}, error) {
	if err := r.checkTable(table); err != nil {
		return nil, err
	}

	now := time.Now()
	if r.db.Migrator().HasColumn(table, "created_at") {
		data["created_at"] = now
	}
	if r.db.Migrator().HasColumn(table, "updated_at") {
		data["updated_at"] = now
	}

	err := r.db.WithContext(ctx).Table(table).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Create(&data).Error
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *DBRecordRepo) Update(ctx context.Context, table string, id uint, data map[string]interface{}) (map[string]interface{}, error) {
	if err := r.checkTable(table); err != nil {
		return nil, err
	}

	delete(data, "id")
	if r.db.Migrator().HasColumn(table, "updated_at") {
		data["updated_at"] = time.Now()
	}

	res := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Updates(data)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(ctx, table, id)
}

func (r *DBRecordRepo) Delete(ctx context.Context, table string, id uint) (int64, error) {
	if err := r.checkTable(table); err != nil {
		return 0, err
	}

	// table names come from naming.TableName and match ^[a-z0-9_]+$
	res := r.db.WithContext(ctx).Exec(fmt.Sprintf("DELETE FROM %q WHERE id = ?", table), id)
	return res.RowsAffected, res.Error
}

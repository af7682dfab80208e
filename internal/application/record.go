package application

import (
	"context"

	"github.com/ngodingskuyy/doctypes-go/internal/repository"
	"github.com/ngodingskuyy/doctypes-go/pkg/naming"
)

// RecordService runs generic CRUD against tables materialized by the
// generator, resolved purely by naming convention.
type RecordService struct {
	Repos *repository.Repos
}

func NewRecordService(repos *repository.Repos) *RecordService {
	return &RecordService{Repos: repos}
}

// TableFor resolves the conventional table for a doctype name.
func (s *RecordService) TableFor(doctypeName string) string {
	return naming.TableName(doctypeName)
}

func (s *RecordService) ListRecords(ctx context.Context, doctypeName string, page, perPage int) ([]map[string]interface{}, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}
	return s.Repos.Record.List(ctx, s.TableFor(doctypeName), page, perPage)
}

func (s *RecordService) GetRecord(ctx context.Context, doctypeName string, id uint) (map[string]interface{}, error) {
	return s.Repos.Record.Get(ctx, s.TableFor(doctypeName), id)
}

func (s *RecordService) CreateRecord(ctx context.Context, doctypeName string, data map[string]interface{}) (map[string]interface{}, error) {
	return s.Repos.Record.Create(ctx, s.TableFor(doctypeName), data)
}

func (s *RecordService) UpdateRecord(ctx context.Context, doctypeName string, id uint, data map[string]interface{}) (map[string]interface{}, error) {
	return s.Repos.Record.Update(ctx, s.TableFor(doctypeName), id, data)
}

func (s *RecordService) DeleteRecord(ctx context.Context, doctypeName string, id uint) (int64, error) {
	return s.Repos.Record.Delete(ctx, s.TableFor(doctypeName), id)
}

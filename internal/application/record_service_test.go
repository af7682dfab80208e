package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ngodingskuyy/doctypes-go/internal/repository"
	"github.com/ngodingskuyy/doctypes-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupRecordServiceMocks(t *testing.T) (*RecordService, *mock.MockRecordRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRecord := mock.NewMockRecordRepo(ctrl)
	repos := &repository.Repos{Record: mockRecord}
	return NewRecordService(repos), mockRecord
}

func TestTableFor(t *testing.T) {
	svc, _ := setupRecordServiceMocks(t)
	assert.Equal(t, "customers", svc.TableFor("customer"))
	assert.Equal(t, "sales_invoices", svc.TableFor("sales_invoice"))
}

func TestListRecords_DefaultsPaging(t *testing.T) {
	svc, mockRecord := setupRecordServiceMocks(t)
	ctx := context.Background()

	mockRecord.EXPECT().
		List(ctx, "customers", 1, 15).
		Return([]map[string]interface{}{{"id": int64(1)}}, int64(1), nil)

	rows, total, err := svc.ListRecords(ctx, "customer", 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, rows, 1)
}

func TestRecordCRUDResolvesTable(t *testing.T) {
	svc, mockRecord := setupRecordServiceMocks(t)
	ctx := context.Background()
	data := map[string]interface{}{"full_name": "Ada"}

	mockRecord.EXPECT().Create(ctx, "customers", data).Return(data, nil)
	mockRecord.EXPECT().Get(ctx, "customers", uint(1)).Return(data, nil)
	mockRecord.EXPECT().Update(ctx, "customers", uint(1), data).Return(data, nil)
	mockRecord.EXPECT().Delete(ctx, "customers", uint(1)).Return(int64(1), nil)

	_, err := svc.CreateRecord(ctx, "customer", data)
	assert.NoError(t, err)
	_, err = svc.GetRecord(ctx, "customer", 1)
	assert.NoError(t, err)
	_, err = svc.UpdateRecord(ctx, "customer", 1, data)
	assert.NoError(t, err)
	affected, err := svc.DeleteRecord(ctx, "customer", 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

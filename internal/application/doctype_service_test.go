package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
	"github.com/ngodingskuyy/doctypes-go/internal/repository"
	"github.com/ngodingskuyy/doctypes-go/internal/repository/mock"
	"github.com/ngodingskuyy/doctypes-go/internal/schema"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupDoctypeServiceMocks(t *testing.T) (*DoctypeService, *mock.MockDoctypeRepo, *mock.MockDocumentRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockDoctype := mock.NewMockDoctypeRepo(ctrl)
	mockDocument := mock.NewMockDocumentRepo(ctrl)
	repos := &repository.Repos{
		Doctype:  mockDoctype,
		Document: mockDocument,
	}
	svc := NewDoctypeService(repos, fieldtype.NewRegistry())
	return svc, mockDoctype, mockDocument
}

func ptrString(s string) *string { return &s }
func ptrBool(b bool) *bool       { return &b }

// --------------------- ListDoctypes ---------------------
func TestListDoctypes_DefaultsPaging(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	mockDoctype.EXPECT().
		List(doctype.ListFilters{Page: 1, PerPage: 15}).
		Return([]doctype.Doctype{{ID: 1, Name: "customer"}}, int64(1), nil)

	list, total, err := svc.ListDoctypes(doctype.ListFilters{})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)
}

// --------------------- CreateDoctype ---------------------
func TestCreateDoctype_Success(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	input := doctype.CreateDoctypeDTO{
		Name:  "customer",
		Label: "Customer",
		Fields: []doctype.FieldInputDTO{
			{Fieldname: "full_name", Label: "Full Name", Fieldtype: "text", Required: true},
		},
	}

	mockDoctype.EXPECT().Create(gomock.Any()).DoAndReturn(func(d *doctype.Doctype) error {
		d.ID = 7
		assert.True(t, d.IsActive)
		return nil
	})
	mockDoctype.EXPECT().ReplaceFields(uint(7), gomock.Len(1)).Return(nil)
	mockDoctype.EXPECT().GetByID(uint(7)).Return(doctype.Doctype{ID: 7, Name: "customer"}, nil)

	created, err := svc.CreateDoctype(input)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)
}

func TestCreateDoctype_InvalidName(t *testing.T) {
	svc, _, _ := setupDoctypeServiceMocks(t)

	_, err := svc.CreateDoctype(doctype.CreateDoctypeDTO{Name: "Customer"})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestCreateDoctype_DuplicateFieldName(t *testing.T) {
	svc, _, _ := setupDoctypeServiceMocks(t)

	input := doctype.CreateDoctypeDTO{
		Name:  "customer",
		Label: "Customer",
		Fields: []doctype.FieldInputDTO{
			{Fieldname: "email", Fieldtype: "email"},
			{Fieldname: "email", Fieldtype: "text"},
		},
	}
	_, err := svc.CreateDoctype(input)
	assert.ErrorIs(t, err, ErrDuplicateFieldName)
}

func TestCreateDoctype_UnknownFieldType(t *testing.T) {
	svc, _, _ := setupDoctypeServiceMocks(t)

	input := doctype.CreateDoctypeDTO{
		Name:  "customer",
		Label: "Customer",
		Fields: []doctype.FieldInputDTO{
			{Fieldname: "location", Fieldtype: "geopoint"},
		},
	}
	_, err := svc.CreateDoctype(input)
	assert.ErrorIs(t, err, fieldtype.ErrUnknownFieldType)
}

// --------------------- UpdateDoctype ---------------------
func TestUpdateDoctype_MergesPointerFields(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	existing := doctype.Doctype{ID: 3, Name: "customer", Label: "Customer", IsActive: true}
	mockDoctype.EXPECT().GetByID(uint(3)).Return(existing, nil)
	mockDoctype.EXPECT().Update(gomock.Any()).DoAndReturn(func(d *doctype.Doctype) error {
		assert.Equal(t, "Clients", d.Label)
		assert.False(t, d.IsActive)
		// untouched attributes survive
		assert.Equal(t, "customer", d.Name)
		return nil
	})
	mockDoctype.EXPECT().GetByID(uint(3)).Return(doctype.Doctype{ID: 3, Label: "Clients"}, nil)

	updated, err := svc.UpdateDoctype(3, doctype.UpdateDoctypeDTO{
		Label:    ptrString("Clients"),
		IsActive: ptrBool(false),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Clients", updated.Label)
}

func TestUpdateDoctype_SystemProtected(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	mockDoctype.EXPECT().GetByID(uint(1)).Return(doctype.Doctype{ID: 1, IsSystem: true}, nil)

	_, err := svc.UpdateDoctype(1, doctype.UpdateDoctypeDTO{Label: ptrString("x")})
	assert.ErrorIs(t, err, ErrSystemDoctype)
}

// --------------------- DeleteDoctype ---------------------
func TestDeleteDoctype_Success(t *testing.T) {
	svc, mockDoctype, mockDocument := setupDoctypeServiceMocks(t)

	mockDoctype.EXPECT().GetByID(uint(4)).Return(doctype.Doctype{ID: 4}, nil)
	mockDocument.EXPECT().CountByDoctype(uint(4)).Return(int64(0), nil)
	mockDoctype.EXPECT().Delete(uint(4)).Return(nil)

	assert.NoError(t, svc.DeleteDoctype(4))
}

func TestDeleteDoctype_SystemProtected(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	mockDoctype.EXPECT().GetByID(uint(1)).Return(doctype.Doctype{ID: 1, IsSystem: true}, nil)

	assert.ErrorIs(t, svc.DeleteDoctype(1), ErrSystemDoctype)
}

func TestDeleteDoctype_InUse(t *testing.T) {
	svc, mockDoctype, mockDocument := setupDoctypeServiceMocks(t)

	mockDoctype.EXPECT().GetByID(uint(4)).Return(doctype.Doctype{ID: 4}, nil)
	mockDocument.EXPECT().CountByDoctype(uint(4)).Return(int64(12), nil)

	assert.ErrorIs(t, svc.DeleteDoctype(4), ErrDoctypeInUse)
}

func TestDeleteDoctype_NotFound(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	mockDoctype.EXPECT().GetByID(uint(99)).Return(doctype.Doctype{}, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteDoctype(99), gorm.ErrRecordNotFound)
}

// --------------------- Field operations ---------------------
func TestAddField_Success(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	mockDoctype.EXPECT().GetByID(uint(2)).Return(doctype.Doctype{ID: 2, Name: "customer"}, nil)
	mockDoctype.EXPECT().AddField(gomock.Any()).DoAndReturn(func(f *doctype.DoctypeField) error {
		assert.Equal(t, uint(2), f.DoctypeID)
		assert.Equal(t, "phone", f.Fieldname)
		// empty label defaults to the fieldname
		assert.Equal(t, "phone", f.Label)
		return nil
	})

	field, err := svc.AddField(2, doctype.FieldInputDTO{Fieldname: "phone", Fieldtype: "text"})
	assert.NoError(t, err)
	assert.Equal(t, fieldtype.Text, field.Fieldtype)
}

func TestAddField_Duplicate(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	existing := doctype.Doctype{ID: 2, Name: "customer",
		DoctypeFields: []doctype.DoctypeField{{Fieldname: "phone"}}}
	mockDoctype.EXPECT().GetByID(uint(2)).Return(existing, nil)

	_, err := svc.AddField(2, doctype.FieldInputDTO{Fieldname: "phone", Fieldtype: "text"})
	assert.ErrorIs(t, err, ErrDuplicateFieldName)
}

func TestAddField_SystemProtected(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	mockDoctype.EXPECT().GetByID(uint(1)).Return(doctype.Doctype{ID: 1, IsSystem: true}, nil)

	_, err := svc.AddField(1, doctype.FieldInputDTO{Fieldname: "x", Fieldtype: "text"})
	assert.ErrorIs(t, err, ErrSystemDoctype)
}

func TestUpdateField_UnknownType(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	mockDoctype.EXPECT().GetByID(uint(2)).Return(doctype.Doctype{ID: 2}, nil)
	mockDoctype.EXPECT().GetField(uint(2), "phone").
		Return(doctype.DoctypeField{Fieldname: "phone", Fieldtype: fieldtype.Text}, nil)

	_, err := svc.UpdateField(2, "phone", doctype.UpdateFieldDTO{Fieldtype: ptrString("geopoint")})
	assert.ErrorIs(t, err, fieldtype.ErrUnknownFieldType)
}

func TestRemoveField_NotFound(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	mockDoctype.EXPECT().GetByID(uint(2)).Return(doctype.Doctype{ID: 2}, nil)
	mockDoctype.EXPECT().DeleteField(uint(2), "ghost").Return(int64(0), nil)

	err := svc.RemoveField(2, "ghost")
	assert.Error(t, err)
}

// --------------------- FormSchema / ListConfig ---------------------
func TestFormSchema_NoFields(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	mockDoctype.EXPECT().GetByName("empty").Return(doctype.Doctype{ID: 5, Name: "empty"}, nil)

	_, err := svc.FormSchema("empty")
	assert.ErrorIs(t, err, schema.ErrNoFields)
}

func TestFormSchema_Success(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	d := doctype.Doctype{ID: 5, Name: "customer", Label: "Customer",
		DoctypeFields: []doctype.DoctypeField{
			{Fieldname: "email", Label: "Email", Fieldtype: fieldtype.Email, Required: true},
		}}
	mockDoctype.EXPECT().GetByName("customer").Return(d, nil)

	s, err := svc.FormSchema("customer")
	assert.NoError(t, err)
	assert.Equal(t, "customer", s.Doctype)
	assert.Len(t, s.Fields, 1)
	assert.True(t, s.Fields[0].Validation.Email)
}

func TestListConfig(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	d := doctype.Doctype{ID: 5, Name: "customer", Label: "Customer",
		DoctypeFields: []doctype.DoctypeField{
			{Fieldname: "full_name", Label: "Full Name", Fieldtype: fieldtype.Text, InListView: true, SortOrder: 1},
			{Fieldname: "status", Label: "Status", Fieldtype: fieldtype.Select, InStandardFilter: true, SortOrder: 2},
			{Fieldname: "notes", Label: "Notes", Fieldtype: fieldtype.Textarea, SortOrder: 3},
		}}
	mockDoctype.EXPECT().GetByName("customer").Return(d, nil)

	cfg, err := svc.ListConfig("customer")
	assert.NoError(t, err)
	assert.Equal(t, []string{"full_name"}, cfg.ListFields)
	assert.Equal(t, []string{"status"}, cfg.FilterFields)
	assert.Len(t, cfg.Fields, 2)
	assert.True(t, cfg.Fields["status"].InFilter)
	_, hasNotes := cfg.Fields["notes"]
	assert.False(t, hasNotes)
}

// --------------------- create tx failure ---------------------
func TestCreateDoctype_TxFailure(t *testing.T) {
	svc, mockDoctype, _ := setupDoctypeServiceMocks(t)

	mockDoctype.EXPECT().Create(gomock.Any()).Return(errors.New("duplicate key"))

	_, err := svc.CreateDoctype(doctype.CreateDoctypeDTO{Name: "customer", Label: "Customer"})
	assert.Error(t, err)
}

package generator

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
	"github.com/ngodingskuyy/doctypes-go/internal/fieldtype"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func strPtr(s string) *string { return &s }

func invoiceDoctype() *doctype.Doctype {
	return &doctype.Doctype{
		ID:    1,
		Name:  "invoice",
		Label: "Invoice",
		DoctypeFields: []doctype.DoctypeField{
			{Fieldname: "customer_email", Label: "Customer Email", Fieldtype: fieldtype.Email,
				Required: true, Unique: true, SortOrder: 1},
			{Fieldname: "total", Label: "Total", Fieldtype: fieldtype.Number,
				Required: true, InStandardFilter: true, SortOrder: 2,
				Options: datatypes.JSON(`{"min": 0}`)},
			{Fieldname: "status", Label: "Status", Fieldtype: fieldtype.Select, SortOrder: 3,
				Options: datatypes.JSON(`{"options": ["draft", "paid"]}`)},
			{Fieldname: "paid_at", Label: "Paid At", Fieldtype: fieldtype.Datetime, SortOrder: 4},
			{Fieldname: "archived", Label: "Archived", Fieldtype: fieldtype.Checkbox, SortOrder: 5,
				DefaultValue: strPtr("false")},
		},
	}
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
}

func TestDeriveIdentifiers(t *testing.T) {
	ids := DeriveIdentifiers("sales_invoice")
	assert.Equal(t, "SalesInvoice", ids.ModelName)
	assert.Equal(t, "sales_invoices", ids.TableName)
	assert.Equal(t, "salesInvoice", ids.ModelVariable)
	assert.Equal(t, "SalesInvoiceController", ids.ControllerName)
	assert.Equal(t, "SalesInvoiceRequest", ids.RequestName)
	assert.Equal(t, "SalesInvoiceResource", ids.ResourceName)
}

func TestParseArtifactType(t *testing.T) {
	for _, known := range AllArtifactTypes {
		parsed, err := ParseArtifactType(" " + string(known) + " ")
		assert.NoError(t, err)
		assert.Equal(t, known, parsed)
	}

	_, err := ParseArtifactType("seeder")
	assert.ErrorIs(t, err, ErrUnknownArtifactType)
}

func TestRenderModel(t *testing.T) {
	g := NewWithClock(t.TempDir(), fixedClock())

	a, err := g.Render(invoiceDoctype(), ArtifactModel)
	assert.NoError(t, err)
	assert.Contains(t, a.Content, "class Invoice extends Model")
	assert.Contains(t, a.Content, "protected $table = 'invoices';")
	assert.Contains(t, a.Content, "'customer_email'")
	assert.Contains(t, a.Content, "'total' => 'float'")
	assert.Contains(t, a.Content, "'archived' => 'boolean'")
	assert.Contains(t, a.Content, "'paid_at' => 'datetime'")
	assert.Contains(t, a.Content, "public function scopeByTotal($query, $value)")
	assert.NotContains(t, a.Content, "{{")
}

func TestRenderRequestRules(t *testing.T) {
	g := NewWithClock(t.TempDir(), fixedClock())

	a, err := g.Render(invoiceDoctype(), ArtifactRequest)
	assert.NoError(t, err)
	assert.Contains(t, a.Content, "class InvoiceRequest extends FormRequest")
	assert.Contains(t, a.Content, "'total' => 'required|numeric|min:0'")
	assert.Contains(t, a.Content, "'customer_email' => 'required|email|unique:invoices,customer_email'")
	assert.Contains(t, a.Content, "'status' => 'nullable|in:draft,paid'")
	assert.Contains(t, a.Content, "'archived' => 'nullable|boolean'")
	assert.Contains(t, a.Content, "'total.required' => 'The Total field is required.'")
	assert.Contains(t, a.Content, "'customer_email.unique' => 'The Customer Email has already been taken.'")
}

func TestRenderMigration(t *testing.T) {
	g := NewWithClock(t.TempDir(), fixedClock())
	d := invoiceDoctype()

	a, err := g.Render(d, ArtifactMigration)
	assert.NoError(t, err)
	assert.Contains(t, a.Content, "Schema::create('invoices'")
	assert.Contains(t, a.Content, "$table->string('customer_email')->unique();")
	assert.Contains(t, a.Content, "$table->decimal('total', 8, 2);")
	assert.Contains(t, a.Content, "$table->datetime('paid_at')->nullable();")
	assert.Contains(t, a.Content, "$table->boolean('archived')->nullable()->default('false');")
	assert.Contains(t, a.Content, "Schema::dropIfExists('invoices');")

	assert.Equal(t, "2024_03_15_103000_create_invoices_table.php", filepath.Base(a.Path))
}

func TestRenderResourceAndController(t *testing.T) {
	g := NewWithClock(t.TempDir(), fixedClock())
	d := invoiceDoctype()

	res, err := g.Render(d, ArtifactResource)
	assert.NoError(t, err)
	assert.Contains(t, res.Content, "'id' => $this->id")
	assert.Contains(t, res.Content, "'total' => $this->total")
	assert.Contains(t, res.Content, "'created_at' => $this->created_at")

	ctrl, err := g.Render(d, ArtifactController)
	assert.NoError(t, err)
	assert.Contains(t, ctrl.Content, "class InvoiceController")
	assert.Contains(t, ctrl.Content, "$request->has('total')")
}

func TestPreviewWritesNothing(t *testing.T) {
	dir := t.TempDir()
	g := NewWithClock(dir, fixedClock())

	results := g.Preview(invoiceDoctype(), AllArtifactTypes)
	assert.Len(t, results, 5)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.NotEmpty(t, r.Artifact.Content)
		assert.False(t, r.Artifact.ExistedBefore)
	}

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateWritesFiles(t *testing.T) {
	dir := t.TempDir()
	g := NewWithClock(dir, fixedClock())
	d := invoiceDoctype()

	results := g.Generate(d, AllArtifactTypes, false)
	assert.Len(t, results, 5)
	for _, r := range results {
		assert.NoError(t, r.Err)
	}

	model, err := os.ReadFile(filepath.Join(dir, "app", "Models", "Invoice.php"))
	assert.NoError(t, err)
	assert.Contains(t, string(model), "class Invoice extends Model")

	_, err = os.Stat(filepath.Join(dir, "app", "Http", "Requests", "InvoiceRequest.php"))
	assert.NoError(t, err)
}

func TestGenerateRefusesOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	g := NewWithClock(dir, fixedClock())
	d := invoiceDoctype()

	first := g.Generate(d, []ArtifactType{ArtifactModel}, false)
	assert.NoError(t, first[ArtifactModel].Err)

	second := g.Generate(d, []ArtifactType{ArtifactModel}, false)
	assert.ErrorIs(t, second[ArtifactModel].Err, ErrArtifactExists)

	forced := g.Generate(d, []ArtifactType{ArtifactModel}, true)
	assert.NoError(t, forced[ArtifactModel].Err)
	assert.True(t, forced[ArtifactModel].Artifact.ExistedBefore)
}

func TestGeneratePerTypeIsolation(t *testing.T) {
	dir := t.TempDir()
	g := NewWithClock(dir, fixedClock())
	d := invoiceDoctype()

	// pre-create the model target so only that type fails
	blocked := g.Generate(d, []ArtifactType{ArtifactModel}, false)
	assert.NoError(t, blocked[ArtifactModel].Err)

	results := g.Generate(d, []ArtifactType{ArtifactModel, ArtifactResource}, false)
	assert.ErrorIs(t, results[ArtifactModel].Err, ErrArtifactExists)
	assert.NoError(t, results[ArtifactResource].Err)
}

func TestGenerateLegacyBlobDoctype(t *testing.T) {
	// a doctype still on the legacy blob shape has no child rows; the
	// generator sees zero fields and renders empty sections rather than failing
	g := NewWithClock(t.TempDir(), fixedClock())
	d := &doctype.Doctype{Name: "legacy", Label: "Legacy"}

	a, err := g.Render(d, ArtifactModel)
	assert.NoError(t, err)
	assert.Contains(t, a.Content, "class Legacy extends Model")
}

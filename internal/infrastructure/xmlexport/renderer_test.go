package xmlexport

import (
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:      "inv-1",
		Number:  "INV-2024-0001",
		Company: entity.CompanySnapshot{Name: "Taller", TaxID: "900-1", City: "Bogotá"},
		Client:  entity.ClientSnapshot{Name: "Acme", HourlyRate: decimal.NewFromInt(1500), Email: "ap@acme.test"},
		Job:     entity.JobSnapshot{Name: "Sitio web", JobNumber: "PO-77"},
		LineItems: []entity.LineItem{
			{EntryID: "e1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Description: "Diseño", Hours: decimal.NewFromInt(2), Amount: decimal.NewFromInt(3000)},
			{EntryID: "e2", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Hours: decimal.RequireFromString("0.5"), Amount: decimal.NewFromInt(750)},
		},
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
		TotalHours:  decimal.RequireFromString("2.5"),
		TotalAmount: decimal.NewFromInt(3750),
		Status:      entity.InvoiceStatusUnpaid,
		CreatedAt:   time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func render(t *testing.T, inv *entity.Invoice) *etree.Element {
	t.Helper()
	out, err := NewRenderer().Render(context.Background(), inv)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.NotNil(t, root)
	return root
}

func text(t *testing.T, root *etree.Element, path string) string {
	t.Helper()
	el := root.FindElement(path)
	require.NotNil(t, el, path)
	return el.Text()
}

func TestRenderer_EstructuraUBL(t *testing.T) {
	root := render(t, sampleInvoice())

	assert.Equal(t, "Invoice", root.Tag)
	assert.Equal(t, "INV-2024-0001", text(t, root, "./cbc:ID"))
	assert.Equal(t, "2024-02-01", text(t, root, "./cbc:IssueDate"))
	assert.Equal(t, "2024-01-31", text(t, root, "./cac:InvoicePeriod/cbc:EndDate"))
	assert.Equal(t, "PO-77", text(t, root, "./cac:OrderReference/cbc:ID"))
	assert.Equal(t, "900-1", text(t, root, "./cac:AccountingSupplierParty/cac:Party/cac:PartyTaxScheme/cbc:CompanyID"))
	assert.Equal(t, "3750.00", text(t, root, "./cac:LegalMonetaryTotal/cbc:PayableAmount"))
	assert.Nil(t, root.FindElement("./cbc:DueDate"))
	assert.Nil(t, root.FindElement("./cac:PrepaidPayment"))

	lines := root.FindElements("./cac:InvoiceLine")
	require.Len(t, lines, 2)
	qty := lines[0].FindElement("./cbc:InvoicedQuantity")
	require.NotNil(t, qty)
	assert.Equal(t, "2.00", qty.Text())
	assert.Equal(t, "HUR", qty.SelectAttrValue("unitCode", ""))
	assert.Equal(t, "1500.00", text(t, lines[0], "./cac:Price/cbc:PriceAmount"))
	assert.Nil(t, lines[1].FindElement("./cac:Item/cbc:Description"))
}

func TestRenderer_Pagada(t *testing.T) {
	inv := sampleInvoice()
	paid := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	inv.Status, inv.PaidAt = entity.InvoiceStatusPaid, &paid

	root := render(t, inv)
	assert.Equal(t, "2024-02-15", text(t, root, "./cac:PrepaidPayment/cbc:PaidDate"))
	assert.Equal(t, "3750.00", text(t, root, "./cac:PrepaidPayment/cbc:PaidAmount"))
	assert.Equal(t, "0.00", text(t, root, "./cac:LegalMonetaryTotal/cbc:PayableAmount"))
}

func TestRenderer_FacturaNil(t *testing.T) {
	_, err := NewRenderer().Render(context.Background(), nil)
	assert.Error(t, err)
}

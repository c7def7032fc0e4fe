package html

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:      "inv-1",
		Number:  "INV-2024-0001",
		Company: entity.CompanySnapshot{Name: "Taller & Hijos", Phone: "555-0100"},
		Client:  entity.ClientSnapshot{Name: "Acme <Corp>", HourlyRate: decimal.NewFromInt(50)},
		Job:     entity.JobSnapshot{Name: "Sitio web", JobNumber: "PO-77"},
		LineItems: []entity.LineItem{
			{EntryID: "e1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Description: "Diseño", Hours: decimal.NewFromInt(2), Amount: decimal.NewFromInt(100)},
			{EntryID: "e2", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Description: "Revisión", Hours: decimal.RequireFromString("1.5"), Amount: decimal.NewFromInt(75)},
		},
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
		TotalHours:  decimal.RequireFromString("3.5"),
		TotalAmount: decimal.NewFromInt(175),
		Status:      entity.InvoiceStatusUnpaid,
		CreatedAt:   time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestRenderer_Contenido(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "text/html; charset=utf-8", r.ContentType())
	assert.Equal(t, "html", r.Extension())

	out, err := r.Render(context.Background(), sampleInvoice())
	require.NoError(t, err)
	page := string(out)

	assert.Contains(t, page, "INV-2024-0001")
	assert.Contains(t, page, "January 1, 2024")
	assert.Contains(t, page, "January 31, 2024")
	assert.Contains(t, page, "175.00")
	assert.Contains(t, page, "3.50")
	assert.Contains(t, page, "50.00")
	assert.Contains(t, page, "Job / PO #: PO-77")
	assert.Contains(t, page, "Phone: 555-0100")
	assert.Contains(t, page, `class="badge unpaid">UNPAID`)
}

func TestRenderer_EscapaYOmiteVacios(t *testing.T) {
	out, err := NewRenderer().Render(context.Background(), sampleInvoice())
	require.NoError(t, err)
	page := string(out)

	assert.Contains(t, page, "Acme &lt;Corp&gt;")
	assert.Contains(t, page, "Taller &amp; Hijos")
	assert.NotContains(t, page, "Due date")
	assert.NotContains(t, page, "NOTES")
	assert.NotContains(t, page, "Email:")
	assert.NotContains(t, page, "Contact:")
}

func TestRenderer_Pagada(t *testing.T) {
	inv := sampleInvoice()
	paid := time.Date(2024, 2, 10, 15, 0, 0, 0, time.UTC)
	due := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	inv.Status, inv.PaidAt, inv.DueDate, inv.Notes = entity.InvoiceStatusPaid, &paid, &due, "Gracias"

	out, err := NewRenderer().Render(context.Background(), inv)
	require.NoError(t, err)
	page := string(out)

	assert.Contains(t, page, `class="badge paid">PAID`)
	assert.Contains(t, page, "Paid on: February 10, 2024")
	assert.Contains(t, page, "Due date: February 29, 2024")
	assert.Contains(t, page, "Gracias")
}

func TestRenderer_SinPerfilDeEmpresa(t *testing.T) {
	inv := sampleInvoice()
	inv.Company = entity.CompanySnapshot{}

	out, err := NewRenderer().Render(context.Background(), inv)
	require.NoError(t, err)
	page := string(out)

	assert.NotContains(t, page, "<h1>")
	assert.NotContains(t, page, "Phone:")
	assert.Contains(t, page, "INV-2024-0001")
}

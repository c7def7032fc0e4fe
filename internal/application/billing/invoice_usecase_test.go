package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

func TestUpdateStatus_Alterna(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addEntry(t, "e1", "j1", "1", time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC))
	created, err := f.uc.CreateInvoice(ctx, request())
	require.NoError(t, err)

	f.clock = f.clock.Add(72 * time.Hour)
	paid, err := f.inv.UpdateStatus(ctx, created.ID, dto.UpdateInvoiceStatusRequest{Status: "paid"})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, f.clock, *paid.PaidAt)

	stored, err := f.inv.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PaidAt, "paidAt debe persistirse")

	unpaid, err := f.inv.UpdateStatus(ctx, created.ID, dto.UpdateInvoiceStatusRequest{Status: "unpaid"})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusUnpaid, unpaid.Status)
	assert.Nil(t, unpaid.PaidAt)

	stored, err = f.inv.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.PaidAt)
	assert.Equal(t, created.InvoiceNumber, stored.InvoiceNumber)
	assert.True(t, created.TotalAmount.Equal(stored.TotalAmount), "solo cambia el estado")
}

func TestUpdateStatus_Errores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addEntry(t, "e1", "j1", "1", time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC))
	created, err := f.uc.CreateInvoice(ctx, request())
	require.NoError(t, err)

	_, err = f.inv.UpdateStatus(ctx, created.ID, dto.UpdateInvoiceStatusRequest{Status: "cancelled"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = f.inv.UpdateStatus(ctx, "missing", dto.UpdateInvoiceStatusRequest{Status: "paid"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestInvoiceList_FiltrosYBorrado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addEntry(t, "e1", "j1", "1", time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC))

	first, err := f.uc.CreateInvoice(ctx, request())
	require.NoError(t, err)
	f.clock = f.clock.Add(time.Hour)
	second, err := f.uc.CreateInvoice(ctx, request())
	require.NoError(t, err)
	_, err = f.inv.UpdateStatus(ctx, first.ID, dto.UpdateInvoiceStatusRequest{Status: "paid"})
	require.NoError(t, err)

	all, err := f.inv.List(ctx, dto.InvoiceQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "más reciente primero")

	unpaid, err := f.inv.List(ctx, dto.InvoiceQuery{Status: "unpaid"})
	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	assert.Equal(t, second.ID, unpaid[0].ID)

	_, err = f.inv.List(ctx, dto.InvoiceQuery{Status: "void"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, f.inv.Delete(ctx, first.ID))
	assert.ErrorIs(t, f.inv.Delete(ctx, first.ID), domain.ErrNotFound)
}

type fakeRenderer struct{}

func (fakeRenderer) Render(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	return []byte("doc " + inv.Number), nil
}
func (fakeRenderer) ContentType() string { return "text/plain" }
func (fakeRenderer) Extension() string   { return "txt" }

func TestRenderUseCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addEntry(t, "e1", "j1", "1", time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC))
	created, err := f.uc.CreateInvoice(ctx, request())
	require.NoError(t, err)

	uc := NewRenderUseCase(f.repos.Invoices, map[string]InvoiceRenderer{"txt": fakeRenderer{}})
	doc, err := uc.Render(ctx, created.ID, "TXT")
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-0001.txt", doc.Filename)
	assert.Equal(t, "text/plain", doc.ContentType)
	assert.Equal(t, "doc INV-2024-0001", string(doc.Body))

	_, err = uc.Render(ctx, created.ID, "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Render(ctx, "missing", "txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

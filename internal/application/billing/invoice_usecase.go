package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

// InvoiceUseCase consulta facturas y gestiona su estado de pago (unpaid ⇄ paid).
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	now      func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, now: func() time.Time { return time.Now().UTC() }}
}

// GetByID devuelve la factura completa o domain.ErrNotFound.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := LoadInvoice(ctx, uc.invoices, id)
	if err != nil {
		return nil, err
	}
	return InvoiceToResponse(inv), nil
}

// List lista facturas (más recientes primero) con filtros opcionales de estado y cliente.
func (uc *InvoiceUseCase) List(ctx context.Context, q dto.InvoiceQuery) ([]dto.InvoiceSummaryResponse, error) {
	status := strings.TrimSpace(q.Status)
	if status != "" && !entity.ValidInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: status debe ser %q o %q", domain.ErrInvalidInput, entity.InvoiceStatusUnpaid, entity.InvoiceStatusPaid)
	}
	list, err := uc.invoices.List(ctx, repository.InvoiceFilter{
		Status:   status,
		ClientID: entity.ClientID(strings.TrimSpace(q.ClientID)),
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceSummaryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, invoiceToSummary(inv))
	}
	return out, nil
}

// UpdateStatus pasa a "paid" (fija paidAt = ahora) o a "unpaid" (limpia paidAt).
// Repetir el estado actual no modifica la factura.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error) {
	status := strings.TrimSpace(in.Status)
	if !entity.ValidInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: status debe ser %q o %q", domain.ErrInvalidInput, entity.InvoiceStatusUnpaid, entity.InvoiceStatusPaid)
	}
	inv, err := LoadInvoice(ctx, uc.invoices, id)
	if err != nil {
		return nil, err
	}
	if inv.Status == status {
		return InvoiceToResponse(inv), nil
	}

	now := uc.now()
	var paidAt *time.Time
	if status == entity.InvoiceStatusPaid {
		paidAt = &now
	}
	if err := uc.invoices.UpdateStatus(ctx, inv.ID, status, paidAt, now); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, id)
		}
		return nil, err
	}
	inv.Status = status
	inv.PaidAt = paidAt
	inv.UpdatedAt = now
	return InvoiceToResponse(inv), nil
}

// Delete elimina la factura de forma explícita.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	err := uc.invoices.Delete(ctx, entity.InvoiceID(id))
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: factura %s", domain.ErrNotFound, id)
	}
	return err
}

// LoadInvoice obtiene la factura o devuelve domain.ErrNotFound.
func LoadInvoice(ctx context.Context, invoices repository.InvoiceRepository, id string) (*entity.Invoice, error) {
	inv, err := invoices.GetByID(ctx, entity.InvoiceID(strings.TrimSpace(id)))
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, id)
	}
	return inv, nil
}

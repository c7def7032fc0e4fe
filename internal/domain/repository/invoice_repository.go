package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

// InvoiceFilter filtros opcionales del listado de facturas.
type InvoiceFilter struct {
	Status   string
	ClientID entity.ClientID
}

// InvoiceRepository define el puerto de persistencia para Invoice.
// Las líneas y los snapshots se guardan junto con la cabecera.
type InvoiceRepository interface {
	// Create devuelve domain.ErrDuplicate si el número ya existe.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id entity.InvoiceID) (*entity.Invoice, error)
	// List ordena por fecha de creación descendente.
	List(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, error)
	// UpdateStatus es la única mutación permitida tras crear la factura.
	UpdateStatus(ctx context.Context, id entity.InvoiceID, status string, paidAt *time.Time, updatedAt time.Time) error
	Delete(ctx context.Context, id entity.InvoiceID) error
	// ListNumbersByPrefix devuelve los números que empiezan con prefix (ej. "INV-2026-").
	ListNumbersByPrefix(ctx context.Context, prefix string) ([]string, error)
}

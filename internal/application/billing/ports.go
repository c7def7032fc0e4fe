package billing

import (
	"context"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

// NumberSequence entrega el siguiente consecutivo de factura para un prefijo y año.
// La unicidad final la garantiza el índice único del almacén; el caso de uso reintenta ante colisión.
type NumberSequence interface {
	Next(ctx context.Context, prefix string, year int) (int, error)
}

// InvoiceRenderer genera una representación de la factura a partir de su snapshot, sin recalcular nada.
type InvoiceRenderer interface {
	Render(ctx context.Context, inv *entity.Invoice) ([]byte, error)
	ContentType() string
	Extension() string
}

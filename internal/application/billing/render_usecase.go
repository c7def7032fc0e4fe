package billing

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

// RenderUseCase genera el documento de una factura guardada en el formato pedido (html, pdf, xml).
type RenderUseCase struct {
	invoices  repository.InvoiceRepository
	renderers map[string]InvoiceRenderer
}

// NewRenderUseCase construye el caso de uso; renderers se indexa por nombre de formato.
func NewRenderUseCase(invoices repository.InvoiceRepository, renderers map[string]InvoiceRenderer) *RenderUseCase {
	return &RenderUseCase{invoices: invoices, renderers: renderers}
}

// Formats nombres de formato disponibles, ordenados.
func (uc *RenderUseCase) Formats() []string {
	out := make([]string, 0, len(uc.renderers))
	for name := range uc.renderers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Render carga la factura y la pasa al renderer del formato.
func (uc *RenderUseCase) Render(ctx context.Context, id, format string) (*dto.RenderedDocument, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	r, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado (%s)", domain.ErrInvalidInput, format, strings.Join(uc.Formats(), ", "))
	}
	inv, err := LoadInvoice(ctx, uc.invoices, id)
	if err != nil {
		return nil, err
	}
	body, err := r.Render(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return &dto.RenderedDocument{
		Filename:    inv.Number + "." + r.Extension(),
		ContentType: r.ContentType(),
		Body:        body,
	}, nil
}

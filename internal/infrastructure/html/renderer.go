// Package html genera la factura como página HTML autocontenida, lista para imprimir desde el navegador.
package html

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/jhoicas/Horas-api/internal/application/billing"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

//go:embed templates/invoice.html.tmpl
var templatesFS embed.FS

var invoiceTemplate = template.Must(template.ParseFS(templatesFS, "templates/invoice.html.tmpl"))

// Renderer implementa billing.InvoiceRenderer con html/template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer construye el renderer HTML.
func NewRenderer() *Renderer { return &Renderer{tmpl: invoiceTemplate} }

func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *Renderer) Extension() string { return "html" }

// Render ejecuta la plantilla sobre la vista de la factura.
func (r *Renderer) Render(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	if inv == nil {
		return nil, fmt.Errorf("html: factura nil")
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, billing.NewDocument(inv)); err != nil {
		return nil, fmt.Errorf("html: ejecutar plantilla: %w", err)
	}
	return buf.Bytes(), nil
}

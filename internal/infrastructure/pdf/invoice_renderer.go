// Package pdf genera la versión imprimible de una factura con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + contacto  │  N° Factura + Fecha + Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FACTURAR A: Cliente         │  TRABAJO: Job + PO + contacto│
//	│  PERIODO / VENCIMIENTO                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Descripción | Horas | Importe                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Horas / Tarifa / TOTAL                             │
//	│  NOTAS                                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Horas-api/internal/application/billing"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorPaid    = &props.Color{Red: 22, Green: 128, Blue: 61}
	colorUnpaid  = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// fieldLineHeight alto de cada línea de los bloques de empresa, cliente y trabajo.
const fieldLineHeight = 4.5

// ── Renderer ──────────────────────────────────────────────────────────────────

// Renderer implementa billing.InvoiceRenderer usando Maroto v2.
type Renderer struct{}

// NewRenderer construye el renderer PDF.
func NewRenderer() *Renderer { return &Renderer{} }

// ContentType tipo MIME del documento.
func (r *Renderer) ContentType() string { return "application/pdf" }

// Extension extensión del archivo descargado.
func (r *Renderer) Extension() string { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (r *Renderer) Render(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	if inv == nil {
		return nil, fmt.Errorf("pdf: factura nil")
	}
	d := billing.NewDocument(inv)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+d.Number, true).
		WithAuthor(d.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(d))
	m.AddRows(periodRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, li := range d.Lines {
		m.AddAutoRow(detailCols(li)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(d))

	if d.Notes != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("NOTES", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)))
		m.AddAutoRow(col.New(12).Add(text.New(d.Notes, props.Text{Size: 8, Color: colorGray})))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa y contacto (izq), número, fecha y estado (der).
func headerRow(d billing.Document) core.Row {
	left := col.New(7)
	fieldsTop := companyFieldsTop(d.CompanyName)
	if d.CompanyName != "" {
		left.Add(text.New(d.CompanyName, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}))
	}
	addFields(left, d.CompanyFields, fieldsTop)

	statusColor := colorUnpaid
	if d.Status == entity.InvoiceStatusPaid {
		statusColor = colorPaid
	}
	right := col.New(5).Add(
		text.New("INVOICE", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
		}),
		text.New(d.Number, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
		}),
		text.New("Date: "+d.IssueDate, props.Text{
			Size: 8, Align: align.Right, Top: 13, Color: colorGray,
		}),
		text.New(d.StatusLabel, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 18, Color: statusColor,
		}),
	)

	return row.New(blockHeight(len(d.CompanyFields), fieldsTop, 26)).Add(left, right)
}

// partiesRow: cliente facturado (izq) y trabajo / orden de compra (der).
func partiesRow(d billing.Document) core.Row {
	billTo := col.New(6).Add(
		text.New("BILL TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(d.ClientName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
	)
	addFields(billTo, d.ClientFields, 11)

	job := col.New(6).Add(
		text.New("JOB", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(d.JobName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
	)
	addFields(job, d.JobFields, 11)

	n := max(len(d.ClientFields), len(d.JobFields))
	return row.New(blockHeight(n, 11, 14)).Add(billTo, job)
}

func periodRow(d billing.Document) core.Row {
	period := fmt.Sprintf("Period: %s to %s", d.PeriodStart, d.PeriodEnd)
	c := col.New(12).Add(text.New(period, props.Text{Size: 8, Top: 1, Color: colorGray}))
	if d.DueDate != "" {
		c.Add(text.New("Due date: "+d.DueDate, props.Text{Size: 8, Top: 5.5, Style: fontstyle.Bold}))
	}
	if d.PaidDate != "" {
		c.Add(text.New("Paid on: "+d.PaidDate, props.Text{Size: 8, Top: 1, Align: align.Right, Color: colorPaid}))
	}
	return row.New(11).Add(c)
}

// tableHeaderRow: cabecera de la tabla con fondo azul.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 3, align.Left),
		h("Description", 5, align.Left),
		h("Hours", 2, align.Right),
		h("Amount", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// detailCols: columnas de una línea de detalle; la fila crece con la descripción.
func detailCols(li billing.DocumentLine) []core.Col {
	return []core.Col{
		col.New(3).Add(text.New(li.Date, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(5).Add(text.New(li.Description, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(li.Hours, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New(li.Amount, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	}
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(d billing.Document) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, right float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: right, Top: 12,
		})
	}

	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Total hours:", 1),
			label("Hourly rate:", 6),
			grand("TOTAL:", 2),
		),
		col.New(3).Add(
			value(d.TotalHours, 1),
			value(d.Rate, 6),
			grand(d.TotalAmount, 1),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// addFields apila los campos del bloque debajo de top, una línea cada uno.
func addFields(c core.Col, fields []billing.Field, top float64) {
	for i, f := range fields {
		s := f.Value
		if f.Label != "" {
			s = f.Label + ": " + f.Value
		}
		c.Add(text.New(s, props.Text{
			Size: 8, Color: colorGray, Top: top + float64(i)*fieldLineHeight,
		}))
	}
}

// companyFieldsTop sin nombre de empresa los datos de contacto suben a la primera línea.
func companyFieldsTop(name string) float64 {
	if name == "" {
		return 1
	}
	return 8
}

func blockHeight(lines int, top, minHeight float64) float64 {
	return max(minHeight, top+float64(lines)*fieldLineHeight+3)
}

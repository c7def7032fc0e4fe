package billing

import (
	"strings"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/pkg/money"
	"github.com/jhoicas/Horas-api/pkg/timeutil"
)

// Field una fila etiquetada de un bloque del documento. Label vacío = línea simple.
type Field struct {
	Label string
	Value string
}

// DocumentLine fila de la tabla de líneas, ya formateada.
type DocumentLine struct {
	Date        string
	Description string
	Hours       string
	Amount      string
}

// Document vista imprimible de una factura: todos los valores salen del snapshot ya formateados
// y los campos opcionales vacíos no generan fila.
type Document struct {
	Number      string
	Status      string // "paid" | "unpaid"
	StatusLabel string // "PAID" | "UNPAID"
	IssueDate   string
	PeriodStart string
	PeriodEnd   string
	DueDate     string
	PaidDate    string

	CompanyName   string
	CompanyFields []Field
	ClientName    string
	ClientFields  []Field
	JobName       string
	JobFields     []Field

	Lines       []DocumentLine
	TotalHours  string
	Rate        string
	TotalAmount string
	Notes       string
}

// NewDocument arma la vista de la factura. No calcula importes: solo formatea los guardados.
func NewDocument(inv *entity.Invoice) Document {
	d := Document{
		Number:      inv.Number,
		Status:      inv.Status,
		StatusLabel: strings.ToUpper(inv.Status),
		IssueDate:   timeutil.FormatLongDate(inv.CreatedAt),
		PeriodStart: timeutil.FormatLongDate(inv.StartDate),
		PeriodEnd:   timeutil.FormatLongDate(inv.EndDate),
		CompanyName: inv.Company.Name,
		ClientName:  inv.Client.Name,
		JobName:     inv.Job.Name,
		TotalHours:  money.FormatHours(inv.TotalHours),
		Rate:        money.Format(inv.Client.HourlyRate),
		TotalAmount: money.Format(inv.TotalAmount),
		Notes:       strings.TrimSpace(inv.Notes),
	}
	if inv.DueDate != nil {
		d.DueDate = timeutil.FormatLongDate(*inv.DueDate)
	}
	if inv.PaidAt != nil {
		d.PaidDate = timeutil.FormatLongDate(*inv.PaidAt)
	}

	c := inv.Company
	d.CompanyFields = fields(
		Field{Value: c.Address},
		Field{Value: cityLine(c.City, c.State, c.PostalCode)},
		Field{Value: c.Country},
		Field{Label: "Email", Value: c.Email},
		Field{Label: "Phone", Value: c.Phone},
		Field{Label: "Tax ID", Value: c.TaxID},
	)
	cl := inv.Client
	d.ClientFields = fields(
		Field{Value: cl.Address},
		Field{Value: cityLine(cl.City, cl.State, cl.PostalCode)},
		Field{Value: cl.Country},
		Field{Label: "Email", Value: cl.Email},
		Field{Label: "Phone", Value: cl.Phone},
	)
	j := inv.Job
	d.JobFields = fields(
		Field{Label: "Job / PO #", Value: j.JobNumber},
		Field{Label: "Contact", Value: j.ContactName},
		Field{Label: "Contact email", Value: j.ContactEmail},
	)

	d.Lines = make([]DocumentLine, 0, len(inv.LineItems))
	for _, li := range inv.LineItems {
		d.Lines = append(d.Lines, DocumentLine{
			Date:        timeutil.FormatLongDate(li.Date),
			Description: li.Description,
			Hours:       money.FormatHours(li.Hours),
			Amount:      money.Format(li.Amount),
		})
	}
	return d
}

// fields descarta los campos cuyo valor está vacío.
func fields(in ...Field) []Field {
	out := make([]Field, 0, len(in))
	for _, f := range in {
		f.Value = strings.TrimSpace(f.Value)
		if f.Value != "" {
			out = append(out, f)
		}
	}
	return out
}

// cityLine "Springfield, IL 62701" omitiendo las partes vacías.
func cityLine(city, state, postal string) string {
	city, state, postal = strings.TrimSpace(city), strings.TrimSpace(state), strings.TrimSpace(postal)
	tail := strings.TrimSpace(state + " " + postal)
	switch {
	case city == "":
		return tail
	case tail == "":
		return city
	default:
		return city + ", " + tail
	}
}

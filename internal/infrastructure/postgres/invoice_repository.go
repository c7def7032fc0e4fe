package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Snapshots y líneas se guardan como JSONB en la misma fila.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, invoice_number, company, client_id, client, job_id, job, start_date, end_date, due_date,
	notes, line_items, total_hours, total_amount, status, paid_at, created_at, updated_at`

// Create persiste la factura completa en una sola sentencia.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	company, client, job, items, err := marshalInvoiceDocs(inv)
	if err != nil {
		return storeErr("encode invoice", err)
	}
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.q.Exec(ctx, query,
		inv.ID, inv.Number, company, inv.Client.ID, client, inv.Job.ID, job,
		inv.StartDate.UTC(), inv.EndDate.UTC(), utcPtr(inv.DueDate),
		inv.Notes, items, inv.TotalHours, inv.TotalAmount, inv.Status, utcPtr(inv.PaidAt),
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %s", domain.ErrDuplicate, inv.Number)
		}
		return storeErr("insert invoice", err)
	}
	return nil
}

// GetByID obtiene una factura; (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id entity.InvoiceID) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get invoice", err)
	}
	return inv, nil
}

// List lista facturas por fecha de creación descendente.
func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.ClientID != "" {
		args = append(args, string(f.ClientID))
		conds = append(conds, fmt.Sprintf("client_id = $%d", len(args)))
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC, invoice_number DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list invoices", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, storeErr("scan invoice", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list invoices", err)
	}
	return list, nil
}

// UpdateStatus cambia solo status, paid_at y updated_at.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id entity.InvoiceID, status string, paidAt *time.Time, updatedAt time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE invoices SET status = $2, paid_at = $3, updated_at = $4 WHERE id = $1`,
		id, status, utcPtr(paidAt), updatedAt,
	)
	if err != nil {
		return storeErr("update invoice status", err)
	}
	return expectOne(tag)
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id entity.InvoiceID) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete invoice", err)
	}
	return expectOne(tag)
}

// ListNumbersByPrefix devuelve los números de factura que empiezan con prefix.
func (r *InvoiceRepo) ListNumbersByPrefix(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT invoice_number FROM invoices WHERE starts_with(invoice_number, $1)`, prefix)
	if err != nil {
		return nil, storeErr("list invoice numbers", err)
	}
	defer rows.Close()
	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, storeErr("scan invoice number", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list invoice numbers", err)
	}
	return numbers, nil
}

func marshalInvoiceDocs(inv *entity.Invoice) (company, client, job, items []byte, err error) {
	if company, err = json.Marshal(inv.Company); err != nil {
		return
	}
	if client, err = json.Marshal(inv.Client); err != nil {
		return
	}
	if job, err = json.Marshal(inv.Job); err != nil {
		return
	}
	lines := inv.LineItems
	if lines == nil {
		lines = []entity.LineItem{}
	}
	items, err = json.Marshal(lines)
	return
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var (
		inv                         entity.Invoice
		company, client, job, items []byte
		clientID                    entity.ClientID
		jobID                       entity.JobID
	)
	err := row.Scan(&inv.ID, &inv.Number, &company, &clientID, &client, &jobID, &job,
		&inv.StartDate, &inv.EndDate, &inv.DueDate, &inv.Notes, &items,
		&inv.TotalHours, &inv.TotalAmount, &inv.Status, &inv.PaidAt, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(company, &inv.Company); err != nil {
		return nil, fmt.Errorf("decode company snapshot: %w", err)
	}
	if err := json.Unmarshal(client, &inv.Client); err != nil {
		return nil, fmt.Errorf("decode client snapshot: %w", err)
	}
	if err := json.Unmarshal(job, &inv.Job); err != nil {
		return nil, fmt.Errorf("decode job snapshot: %w", err)
	}
	if err := json.Unmarshal(items, &inv.LineItems); err != nil {
		return nil, fmt.Errorf("decode line items: %w", err)
	}
	inv.StartDate = inv.StartDate.UTC()
	inv.EndDate = inv.EndDate.UTC()
	inv.DueDate = utcPtr(inv.DueDate)
	inv.PaidAt = utcPtr(inv.PaidAt)
	inv.CreatedAt = inv.CreatedAt.UTC()
	inv.UpdatedAt = inv.UpdatedAt.UTC()
	return &inv, nil
}

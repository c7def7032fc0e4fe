package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación SQLite de InvoiceRepository; snapshots y líneas en columnas JSON.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador (db o tx).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, invoice_number, company, client_id, client, job_id, job, start_date, end_date, due_date,
	notes, line_items, total_hours, total_amount, status, paid_at, created_at, updated_at`

func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	docs, err := encodeInvoiceDocs(inv)
	if err != nil {
		return storeErr("encode invoice", err)
	}
	_, err = r.q.ExecContext(ctx, `INSERT INTO invoices (`+invoiceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Number, docs.company, inv.Client.ID, docs.client, inv.Job.ID, docs.job,
		formatTime(inv.StartDate), formatTime(inv.EndDate), formatTimePtr(inv.DueDate),
		inv.Notes, docs.items, inv.TotalHours.StringFixed(2), inv.TotalAmount.StringFixed(2),
		inv.Status, formatTimePtr(inv.PaidAt), formatTime(inv.CreatedAt), formatTime(inv.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %s", domain.ErrDuplicate, inv.Number)
		}
		return storeErr("insert invoice", err)
	}
	return nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id entity.InvoiceID) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRowContext(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get invoice", err)
	}
	return inv, nil
}

func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	if f.ClientID != "" {
		conds = append(conds, "client_id = ?")
		args = append(args, string(f.ClientID))
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC, invoice_number DESC`

	rows, err := r.q.QueryContext(ctx, query, args...)
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

func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id entity.InvoiceID, status string, paidAt *time.Time, updatedAt time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE invoices SET status = ?, paid_at = ?, updated_at = ? WHERE id = ?`,
		status, formatTimePtr(paidAt), formatTime(updatedAt), id,
	)
	if err != nil {
		return storeErr("update invoice status", err)
	}
	return expectOne(res)
}

func (r *InvoiceRepo) Delete(ctx context.Context, id entity.InvoiceID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return storeErr("delete invoice", err)
	}
	return expectOne(res)
}

// ListNumbersByPrefix usa substr en vez de LIKE para no interpretar comodines del prefijo.
func (r *InvoiceRepo) ListNumbersByPrefix(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT invoice_number FROM invoices WHERE substr(invoice_number, 1, ?) = ?`, len(prefix), prefix)
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

type invoiceDocs struct {
	company, client, job, items string
}

func encodeInvoiceDocs(inv *entity.Invoice) (invoiceDocs, error) {
	var d invoiceDocs
	lines := inv.LineItems
	if lines == nil {
		lines = []entity.LineItem{}
	}
	for _, p := range []struct {
		dst *string
		v   any
	}{
		{&d.company, inv.Company},
		{&d.client, inv.Client},
		{&d.job, inv.Job},
		{&d.items, lines},
	} {
		b, err := json.Marshal(p.v)
		if err != nil {
			return invoiceDocs{}, err
		}
		*p.dst = string(b)
	}
	return d, nil
}

func scanInvoice(row scanner) (*entity.Invoice, error) {
	var (
		inv                         entity.Invoice
		docs                        invoiceDocs
		clientID, jobID             string
		start, end, created, update string
		due, paid                   sql.NullString
	)
	err := row.Scan(&inv.ID, &inv.Number, &docs.company, &clientID, &docs.client, &jobID, &docs.job,
		&start, &end, &due, &inv.Notes, &docs.items, &inv.TotalHours, &inv.TotalAmount,
		&inv.Status, &paid, &created, &update)
	if err != nil {
		return nil, err
	}
	if err := parseTimeCols(
		timeCol{start, &inv.StartDate},
		timeCol{end, &inv.EndDate},
		timeCol{created, &inv.CreatedAt},
		timeCol{update, &inv.UpdatedAt},
	); err != nil {
		return nil, err
	}
	if inv.DueDate, err = parseNullTime(due); err != nil {
		return nil, err
	}
	if inv.PaidAt, err = parseNullTime(paid); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(docs.company), &inv.Company); err != nil {
		return nil, fmt.Errorf("decode company snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(docs.client), &inv.Client); err != nil {
		return nil, fmt.Errorf("decode client snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(docs.job), &inv.Job); err != nil {
		return nil, fmt.Errorf("decode job snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(docs.items), &inv.LineItems); err != nil {
		return nil, fmt.Errorf("decode line items: %w", err)
	}
	return &inv, nil
}

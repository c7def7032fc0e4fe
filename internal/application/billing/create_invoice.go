package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
	"github.com/jhoicas/Horas-api/pkg/money"
	"github.com/jhoicas/Horas-api/pkg/timeutil"
)

// maxNumberAttempts intentos de inserción cuando el número asignado ya existe.
const maxNumberAttempts = 5

// CreateInvoiceUseCase genera una factura a partir de las entradas de tiempo de un job en un rango.
type CreateInvoiceUseCase struct {
	clients  repository.ClientRepository
	jobs     repository.JobRepository
	entries  repository.TimeEntryRepository
	company  repository.CompanyRepository
	invoices repository.InvoiceRepository
	seq      NumberSequence
	prefix   string
	now      func() time.Time
}

// NewCreateInvoiceUseCase construye el caso de uso. prefix vacío usa DefaultPrefix.
func NewCreateInvoiceUseCase(
	repos repository.Repositories,
	seq NumberSequence,
	prefix string,
) *CreateInvoiceUseCase {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &CreateInvoiceUseCase{
		clients:  repos.Clients,
		jobs:     repos.Jobs,
		entries:  repos.TimeEntries,
		company:  repos.Company,
		invoices: repos.Invoices,
		seq:      seq,
		prefix:   prefix,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateInvoice valida, calcula líneas y totales, asigna número y persiste la factura.
// Nada se escribe si alguna validación falla.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	clientID := entity.ClientID(strings.TrimSpace(in.ClientID))
	jobID := entity.JobID(strings.TrimSpace(in.JobID))
	if clientID == "" || jobID == "" {
		return nil, fmt.Errorf("%w: clientId y jobId son obligatorios", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.StartDate) == "" || strings.TrimSpace(in.EndDate) == "" {
		return nil, fmt.Errorf("%w: startDate y endDate son obligatorios", domain.ErrInvalidInput)
	}
	rng, err := timeutil.ParseRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	var dueDate *time.Time
	if strings.TrimSpace(in.DueDate) != "" {
		d, err := timeutil.ParseDate(in.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: dueDate: %v", domain.ErrInvalidInput, err)
		}
		dueDate = &d
	}

	// Cliente y job deben existir; el job debe ser del cliente.
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("invoice: obtener cliente: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, clientID)
	}
	job, err := uc.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("invoice: obtener job: %w", err)
	}
	if job == nil {
		return nil, fmt.Errorf("%w: job %s", domain.ErrNotFound, jobID)
	}
	if job.ClientID != client.ID {
		return nil, fmt.Errorf("%w: el job %s no pertenece al cliente %s", domain.ErrInvalidInput, jobID, clientID)
	}

	entries, err := uc.entries.List(ctx, repository.TimeEntryFilter{
		JobID:     jobID,
		From:      rng.From,
		To:        rng.To,
		Ascending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("invoice: obtener entradas: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no hay trabajo facturable para el job en el rango indicado", domain.ErrInvalidInput)
	}

	company, err := uc.company.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("invoice: obtener empresa: %w", err)
	}

	items, totalHours, totalAmount := buildLineItems(entries, client.HourlyRate)
	now := uc.now()
	inv := &entity.Invoice{
		ID:          entity.InvoiceID(uuid.New().String()),
		Company:     entity.NewCompanySnapshot(company),
		Client:      entity.NewClientSnapshot(client),
		Job:         entity.NewJobSnapshot(job),
		StartDate:   *rng.From,
		EndDate:     *rng.To,
		DueDate:     dueDate,
		Notes:       strings.TrimSpace(in.Notes),
		LineItems:   items,
		TotalHours:  totalHours,
		TotalAmount: totalAmount,
		Status:      entity.InvoiceStatusUnpaid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.insertWithNumber(ctx, inv, now.Year()); err != nil {
		return nil, err
	}
	return InvoiceToResponse(inv), nil
}

// insertWithNumber asigna el siguiente número y reintenta si otro proceso lo tomó primero.
func (uc *CreateInvoiceUseCase) insertWithNumber(ctx context.Context, inv *entity.Invoice, year int) error {
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		seq, err := uc.seq.Next(ctx, uc.prefix, year)
		if err != nil {
			return fmt.Errorf("invoice: asignar número: %w", err)
		}
		inv.Number = FormatNumber(uc.prefix, year, seq)

		err = uc.invoices.Create(ctx, inv)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return fmt.Errorf("invoice: guardar: %w", err)
		}
	}
	return fmt.Errorf("%w: no se pudo asignar un número de factura único tras %d intentos", domain.ErrDuplicate, maxNumberAttempts)
}

// buildLineItems una línea por entrada (ya en orden ascendente de fecha).
// totalAmount es la suma de los importes ya redondeados de cada línea, no horas × tarifa.
func buildLineItems(entries []*entity.TimeEntry, rate decimal.Decimal) ([]entity.LineItem, decimal.Decimal, decimal.Decimal) {
	items := make([]entity.LineItem, 0, len(entries))
	hours := decimal.Zero
	amount := decimal.Zero
	for _, e := range entries {
		lineAmount := money.Amount(e.Hours, rate)
		items = append(items, entity.LineItem{
			EntryID:     e.ID,
			Date:        e.Date,
			Description: e.Description,
			Hours:       e.Hours,
			Amount:      lineAmount,
		})
		hours = hours.Add(e.Hours)
		amount = amount.Add(lineAmount)
	}
	return items, money.Round2(hours), money.Round2(amount)
}

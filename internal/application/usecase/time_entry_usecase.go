package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
	"github.com/jhoicas/Horas-api/pkg/timeutil"
)

// TimeEntryUseCase CRUD de entradas de tiempo con verificación de referencias.
type TimeEntryUseCase struct {
	entries repository.TimeEntryRepository
	clients repository.ClientRepository
	jobs    repository.JobRepository
	now     func() time.Time
}

// NewTimeEntryUseCase construye el caso de uso.
func NewTimeEntryUseCase(entries repository.TimeEntryRepository, clients repository.ClientRepository, jobs repository.JobRepository) *TimeEntryUseCase {
	return &TimeEntryUseCase{entries: entries, clients: clients, jobs: jobs, now: utcNow}
}

// Create exige cliente y job existentes, y que el job sea de ese cliente.
func (uc *TimeEntryUseCase) Create(ctx context.Context, in dto.CreateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	if in.Hours == nil {
		return nil, fmt.Errorf("%w: hours es obligatorio", domain.ErrInvalidInput)
	}
	if in.Hours.IsNegative() {
		return nil, fmt.Errorf("%w: hours no puede ser negativo", domain.ErrInvalidInput)
	}
	date, err := timeutil.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", domain.ErrInvalidInput, err)
	}
	clientID := entity.ClientID(strings.TrimSpace(in.ClientID))
	jobID := entity.JobID(strings.TrimSpace(in.JobID))
	if err := uc.checkRefs(ctx, clientID, jobID); err != nil {
		return nil, err
	}

	now := uc.now()
	e := &entity.TimeEntry{
		ID:          entity.TimeEntryID(uuid.New().String()),
		ClientID:    clientID,
		JobID:       jobID,
		Hours:       *in.Hours,
		Date:        date,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	return timeEntryToResponse(e), nil
}

// GetByID devuelve domain.ErrNotFound si la entrada no existe.
func (uc *TimeEntryUseCase) GetByID(ctx context.Context, id string) (*dto.TimeEntryResponse, error) {
	e, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return timeEntryToResponse(e), nil
}

// List aplica los filtros; endDate incluye todo ese día. Orden: fecha descendente.
func (uc *TimeEntryUseCase) List(ctx context.Context, q dto.TimeEntryQuery) ([]dto.TimeEntryResponse, error) {
	rng, err := timeutil.ParseRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	list, err := uc.entries.List(ctx, repository.TimeEntryFilter{
		ClientID: entity.ClientID(strings.TrimSpace(q.ClientID)),
		JobID:    entity.JobID(strings.TrimSpace(q.JobID)),
		From:     rng.From,
		To:       rng.To,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.TimeEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *timeEntryToResponse(e))
	}
	return out, nil
}

// Update aplica los campos presentes y vuelve a verificar las referencias si cambian.
func (uc *TimeEntryUseCase) Update(ctx context.Context, id string, in dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	e, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	clientID, jobID := e.ClientID, e.JobID
	if in.ClientID != nil {
		clientID = entity.ClientID(strings.TrimSpace(*in.ClientID))
	}
	if in.JobID != nil {
		jobID = entity.JobID(strings.TrimSpace(*in.JobID))
	}
	if clientID != e.ClientID || jobID != e.JobID {
		if err := uc.checkRefs(ctx, clientID, jobID); err != nil {
			return nil, err
		}
		e.ClientID, e.JobID = clientID, jobID
	}
	if in.Hours != nil {
		if in.Hours.IsNegative() {
			return nil, fmt.Errorf("%w: hours no puede ser negativo", domain.ErrInvalidInput)
		}
		e.Hours = *in.Hours
	}
	if in.Date != nil {
		date, err := timeutil.ParseDate(*in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date: %v", domain.ErrInvalidInput, err)
		}
		e.Date = date
	}
	applyTrimmed(&e.Description, in.Description)
	e.UpdatedAt = uc.now()

	if err := uc.entries.Update(ctx, e); err != nil {
		return nil, err
	}
	return timeEntryToResponse(e), nil
}

// Delete elimina la entrada.
func (uc *TimeEntryUseCase) Delete(ctx context.Context, id string) error {
	err := uc.entries.Delete(ctx, entity.TimeEntryID(id))
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: entrada %s", domain.ErrNotFound, id)
	}
	return err
}

func (uc *TimeEntryUseCase) checkRefs(ctx context.Context, clientID entity.ClientID, jobID entity.JobID) error {
	if clientID == "" || jobID == "" {
		return fmt.Errorf("%w: clientId y jobId son obligatorios", domain.ErrInvalidInput)
	}
	c, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, clientID)
	}
	j, err := uc.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if j == nil {
		return fmt.Errorf("%w: job %s", domain.ErrNotFound, jobID)
	}
	if j.ClientID != clientID {
		return fmt.Errorf("%w: el job %s no pertenece al cliente %s", domain.ErrInvalidInput, jobID, clientID)
	}
	return nil
}

func (uc *TimeEntryUseCase) load(ctx context.Context, id string) (*entity.TimeEntry, error) {
	e, err := uc.entries.GetByID(ctx, entity.TimeEntryID(id))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: entrada %s", domain.ErrNotFound, id)
	}
	return e, nil
}

func timeEntryToResponse(e *entity.TimeEntry) *dto.TimeEntryResponse {
	return &dto.TimeEntryResponse{
		ID:          string(e.ID),
		ClientID:    string(e.ClientID),
		JobID:       string(e.JobID),
		Hours:       e.Hours,
		Date:        e.Date,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

// JobUseCase CRUD de jobs. Todo job pertenece a un cliente existente.
type JobUseCase struct {
	jobs     repository.JobRepository
	clients  repository.ClientRepository
	txRunner repository.TxRunner
	now      func() time.Time
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(jobs repository.JobRepository, clients repository.ClientRepository, txRunner repository.TxRunner) *JobUseCase {
	return &JobUseCase{jobs: jobs, clients: clients, txRunner: txRunner, now: utcNow}
}

// Create valida el cliente y persiste el job.
func (uc *JobUseCase) Create(ctx context.Context, in dto.CreateJobRequest) (*dto.JobResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	clientID := entity.ClientID(strings.TrimSpace(in.ClientID))
	if err := uc.requireClient(ctx, clientID); err != nil {
		return nil, err
	}
	now := uc.now()
	j := &entity.Job{
		ID:           entity.JobID(uuid.New().String()),
		ClientID:     clientID,
		Name:         name,
		JobNumber:    strings.TrimSpace(in.JobNumber),
		ContactName:  strings.TrimSpace(in.ContactName),
		ContactEmail: strings.TrimSpace(in.ContactEmail),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.jobs.Create(ctx, j); err != nil {
		return nil, err
	}
	return jobToResponse(j), nil
}

// GetByID devuelve domain.ErrNotFound si el job no existe.
func (uc *JobUseCase) GetByID(ctx context.Context, id string) (*dto.JobResponse, error) {
	j, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return jobToResponse(j), nil
}

// List lista jobs por nombre; clientID vacío devuelve todos.
func (uc *JobUseCase) List(ctx context.Context, clientID string) ([]dto.JobResponse, error) {
	list, err := uc.jobs.List(ctx, entity.ClientID(strings.TrimSpace(clientID)))
	if err != nil {
		return nil, err
	}
	out := make([]dto.JobResponse, 0, len(list))
	for _, j := range list {
		out = append(out, *jobToResponse(j))
	}
	return out, nil
}

// Update aplica los campos presentes; si cambia el cliente se verifica que exista
// y sus entradas de tiempo pasan al nuevo cliente en la misma transacción.
func (uc *JobUseCase) Update(ctx context.Context, id string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	j, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	clientChanged := false
	if in.ClientID != nil {
		clientID := entity.ClientID(strings.TrimSpace(*in.ClientID))
		if clientID != j.ClientID {
			if err := uc.requireClient(ctx, clientID); err != nil {
				return nil, err
			}
			j.ClientID = clientID
			clientChanged = true
		}
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		j.Name = name
	}
	applyTrimmed(&j.JobNumber, in.JobNumber)
	applyTrimmed(&j.ContactName, in.ContactName)
	applyTrimmed(&j.ContactEmail, in.ContactEmail)
	j.UpdatedAt = uc.now()

	if !clientChanged {
		if err := uc.jobs.Update(ctx, j); err != nil {
			return nil, err
		}
		return jobToResponse(j), nil
	}
	err = uc.txRunner.RunInTx(ctx, func(r repository.Repositories) error {
		if err := r.Jobs.Update(ctx, j); err != nil {
			return err
		}
		_, err := r.TimeEntries.ReassignClientByJob(ctx, j.ID, j.ClientID, j.UpdatedAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return jobToResponse(j), nil
}

// Delete borra en una transacción las entradas del job y luego el job.
func (uc *JobUseCase) Delete(ctx context.Context, id string) (*dto.DeleteResponse, error) {
	jobID := entity.JobID(id)
	out := &dto.DeleteResponse{ID: id}
	err := uc.txRunner.RunInTx(ctx, func(r repository.Repositories) error {
		j, err := r.Jobs.GetByID(ctx, jobID)
		if err != nil {
			return err
		}
		if j == nil {
			return fmt.Errorf("%w: job %s", domain.ErrNotFound, id)
		}
		if out.DeletedTimeEntries, err = r.TimeEntries.DeleteByJobs(ctx, []entity.JobID{jobID}); err != nil {
			return err
		}
		return r.Jobs.Delete(ctx, jobID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *JobUseCase) requireClient(ctx context.Context, id entity.ClientID) error {
	if id == "" {
		return fmt.Errorf("%w: clientId es obligatorio", domain.ErrInvalidInput)
	}
	c, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return nil
}

func (uc *JobUseCase) load(ctx context.Context, id string) (*entity.Job, error) {
	j, err := uc.jobs.GetByID(ctx, entity.JobID(id))
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, fmt.Errorf("%w: job %s", domain.ErrNotFound, id)
	}
	return j, nil
}

func jobToResponse(j *entity.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:           string(j.ID),
		ClientID:     string(j.ClientID),
		Name:         j.Name,
		JobNumber:    j.JobNumber,
		ContactName:  j.ContactName,
		ContactEmail: j.ContactEmail,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

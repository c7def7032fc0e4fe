package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

// ClientUseCase CRUD de clientes; el borrado arrastra jobs y entradas de tiempo.
type ClientUseCase struct {
	clients  repository.ClientRepository
	txRunner repository.TxRunner
	now      func() time.Time
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clients repository.ClientRepository, txRunner repository.TxRunner) *ClientUseCase {
	return &ClientUseCase{clients: clients, txRunner: txRunner, now: utcNow}
}

// Create valida y persiste un cliente nuevo.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	if err := validateRate(in.HourlyRate); err != nil {
		return nil, err
	}
	now := uc.now()
	c := &entity.Client{
		ID:         entity.ClientID(uuid.New().String()),
		Name:       name,
		HourlyRate: *in.HourlyRate,
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
		Address:    strings.TrimSpace(in.Address),
		City:       strings.TrimSpace(in.City),
		State:      strings.TrimSpace(in.State),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Country:    strings.TrimSpace(in.Country),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

// GetByID devuelve domain.ErrNotFound si el cliente no existe.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

// List devuelve todos los clientes ordenados por nombre.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *clientToResponse(c))
	}
	return out, nil
}

// Update aplica solo los campos presentes en la petición.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		c.Name = name
	}
	if in.HourlyRate != nil {
		if err := validateRate(in.HourlyRate); err != nil {
			return nil, err
		}
		c.HourlyRate = *in.HourlyRate
	}
	applyTrimmed(&c.Email, in.Email)
	applyTrimmed(&c.Phone, in.Phone)
	applyTrimmed(&c.Address, in.Address)
	applyTrimmed(&c.City, in.City)
	applyTrimmed(&c.State, in.State)
	applyTrimmed(&c.PostalCode, in.PostalCode)
	applyTrimmed(&c.Country, in.Country)
	c.UpdatedAt = uc.now()

	if err := uc.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

// Delete borra en una transacción: entradas del cliente o de sus jobs, luego los jobs y por último el cliente.
// Las facturas no se tocan.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) (*dto.DeleteResponse, error) {
	clientID := entity.ClientID(id)
	out := &dto.DeleteResponse{ID: id}
	err := uc.txRunner.RunInTx(ctx, func(r repository.Repositories) error {
		c, err := r.Clients.GetByID(ctx, clientID)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
		}
		jobs, err := r.Jobs.List(ctx, clientID)
		if err != nil {
			return err
		}
		jobIDs := make([]entity.JobID, 0, len(jobs))
		for _, j := range jobs {
			jobIDs = append(jobIDs, j.ID)
		}

		byClient, err := r.TimeEntries.DeleteByClient(ctx, clientID)
		if err != nil {
			return err
		}
		byJobs, err := r.TimeEntries.DeleteByJobs(ctx, jobIDs)
		if err != nil {
			return err
		}
		out.DeletedTimeEntries = byClient + byJobs

		if out.DeletedJobs, err = r.Jobs.DeleteByClient(ctx, clientID); err != nil {
			return err
		}
		return r.Clients.Delete(ctx, clientID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *ClientUseCase) load(ctx context.Context, id string) (*entity.Client, error) {
	c, err := uc.clients.GetByID(ctx, entity.ClientID(id))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return c, nil
}

func validateRate(rate *decimal.Decimal) error {
	if rate == nil {
		return fmt.Errorf("%w: hourlyRate es obligatorio", domain.ErrInvalidInput)
	}
	if rate.IsNegative() {
		return fmt.Errorf("%w: hourlyRate no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func clientToResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:         string(c.ID),
		Name:       c.Name,
		HourlyRate: c.HourlyRate,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		PostalCode: c.PostalCode,
		Country:    c.Country,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

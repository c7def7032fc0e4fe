package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

// TimeEntryFilter filtros de igualdad y rango de fechas (inclusivo) para listar entradas.
type TimeEntryFilter struct {
	ClientID  entity.ClientID
	JobID     entity.JobID
	From      *time.Time
	To        *time.Time
	Ascending bool // por defecto orden descendente por fecha
}

// TimeEntryRepository define el puerto de persistencia para TimeEntry.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *entity.TimeEntry) error
	GetByID(ctx context.Context, id entity.TimeEntryID) (*entity.TimeEntry, error)
	List(ctx context.Context, filter TimeEntryFilter) ([]*entity.TimeEntry, error)
	Update(ctx context.Context, entry *entity.TimeEntry) error
	Delete(ctx context.Context, id entity.TimeEntryID) error
	// DeleteByJobs borra las entradas de cualquiera de los jobs.
	DeleteByJobs(ctx context.Context, jobIDs []entity.JobID) (int64, error)
	// DeleteByClient borra las entradas que referencian al cliente.
	DeleteByClient(ctx context.Context, clientID entity.ClientID) (int64, error)
	// ReassignClientByJob asigna clientID a todas las entradas del job.
	ReassignClientByJob(ctx context.Context, jobID entity.JobID, clientID entity.ClientID, updatedAt time.Time) (int64, error)
}

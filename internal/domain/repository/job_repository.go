package repository

import (
	"context"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

// JobRepository define el puerto de persistencia para Job.
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id entity.JobID) (*entity.Job, error)
	// List ordena por nombre; clientID vacío lista todos los jobs.
	List(ctx context.Context, clientID entity.ClientID) ([]*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id entity.JobID) error
	// DeleteByClient elimina los jobs del cliente y devuelve cuántos borró.
	DeleteByClient(ctx context.Context, clientID entity.ClientID) (int64, error)
}

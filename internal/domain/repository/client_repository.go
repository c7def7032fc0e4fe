package repository

import (
	"context"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id entity.ClientID) (*entity.Client, error)
	// List devuelve todos los clientes ordenados por nombre.
	List(ctx context.Context) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	// Delete devuelve domain.ErrNotFound si no existe la fila.
	Delete(ctx context.Context, id entity.ClientID) error
}

package repository

import (
	"context"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia del perfil único de empresa.
type CompanyRepository interface {
	// Get devuelve (nil, nil) si el perfil aún no se ha guardado.
	Get(ctx context.Context) (*entity.Company, error)
	Upsert(ctx context.Context, company *entity.Company) error
}

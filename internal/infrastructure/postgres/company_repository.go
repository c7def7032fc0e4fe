package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository. La tabla tiene una sola fila (id = 1).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Get devuelve el perfil o (nil, nil) si aún no se guardó.
func (r *CompanyRepo) Get(ctx context.Context) (*entity.Company, error) {
	query := `
		SELECT name, address, city, state, postal_code, country, email, phone, tax_id, updated_at
		FROM company_profile WHERE id = 1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query).Scan(
		&c.Name, &c.Address, &c.City, &c.State, &c.PostalCode, &c.Country, &c.Email, &c.Phone, &c.TaxID, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get company", err)
	}
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}

// Upsert inserta o reemplaza el perfil.
func (r *CompanyRepo) Upsert(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO company_profile (id, name, address, city, state, postal_code, country, email, phone, tax_id, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
		    name = EXCLUDED.name, address = EXCLUDED.address, city = EXCLUDED.city, state = EXCLUDED.state,
		    postal_code = EXCLUDED.postal_code, country = EXCLUDED.country, email = EXCLUDED.email,
		    phone = EXCLUDED.phone, tax_id = EXCLUDED.tax_id, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		c.Name, c.Address, c.City, c.State, c.PostalCode, c.Country, c.Email, c.Phone, c.TaxID, c.UpdatedAt,
	)
	if err != nil {
		return storeErr("upsert company", err)
	}
	return nil
}

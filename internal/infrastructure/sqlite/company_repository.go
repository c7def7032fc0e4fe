package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo perfil único de la empresa (fila id = 1).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador (db o tx).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

func (r *CompanyRepo) Get(ctx context.Context) (*entity.Company, error) {
	var (
		c       entity.Company
		updated string
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT name, address, city, state, postal_code, country, email, phone, tax_id, updated_at
		FROM company_profile WHERE id = 1`).Scan(
		&c.Name, &c.Address, &c.City, &c.State, &c.PostalCode, &c.Country, &c.Email, &c.Phone, &c.TaxID, &updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get company", err)
	}
	if c.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, storeErr("get company", err)
	}
	return &c, nil
}

func (r *CompanyRepo) Upsert(ctx context.Context, c *entity.Company) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO company_profile (id, name, address, city, state, postal_code, country, email, phone, tax_id, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
		    name = excluded.name, address = excluded.address, city = excluded.city, state = excluded.state,
		    postal_code = excluded.postal_code, country = excluded.country, email = excluded.email,
		    phone = excluded.phone, tax_id = excluded.tax_id, updated_at = excluded.updated_at`,
		c.Name, c.Address, c.City, c.State, c.PostalCode, c.Country, c.Email, c.Phone, c.TaxID, formatTime(c.UpdatedAt),
	)
	if err != nil {
		return storeErr("upsert company", err)
	}
	return nil
}

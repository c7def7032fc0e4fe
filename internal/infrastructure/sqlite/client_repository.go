package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación SQLite de ClientRepository.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador (db o tx).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, hourly_rate, email, phone, address, city, state, postal_code, country, created_at, updated_at`

func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO clients (`+clientColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.HourlyRate.String(), c.Email, c.Phone, c.Address, c.City, c.State, c.PostalCode, c.Country,
		formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storeErr("insert client", err)
	}
	return nil
}

func (r *ClientRepo) GetByID(ctx context.Context, id entity.ClientID) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get client", err)
	}
	return c, nil
}

func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY name, id`)
	if err != nil {
		return nil, storeErr("list clients", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, storeErr("scan client", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list clients", err)
	}
	return list, nil
}

func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE clients SET name = ?, hourly_rate = ?, email = ?, phone = ?, address = ?,
		       city = ?, state = ?, postal_code = ?, country = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, c.HourlyRate.String(), c.Email, c.Phone, c.Address, c.City, c.State, c.PostalCode, c.Country,
		formatTime(c.UpdatedAt), c.ID,
	)
	if err != nil {
		return storeErr("update client", err)
	}
	return expectOne(res)
}

func (r *ClientRepo) Delete(ctx context.Context, id entity.ClientID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return storeErr("delete client", err)
	}
	return expectOne(res)
}

func scanClient(row scanner) (*entity.Client, error) {
	var (
		c                entity.Client
		created, updated string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.HourlyRate, &c.Email, &c.Phone, &c.Address, &c.City, &c.State,
		&c.PostalCode, &c.Country, &created, &updated); err != nil {
		return nil, err
	}
	if err := parseTimeCols(timeCol{created, &c.CreatedAt}, timeCol{updated, &c.UpdatedAt}); err != nil {
		return nil, err
	}
	return &c, nil
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación de JobRepository (usable con pool o tx).
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador.
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

const jobColumns = `id, client_id, name, job_number, contact_name, contact_email, created_at, updated_at`

// Create persiste un nuevo job.
func (r *JobRepo) Create(ctx context.Context, j *entity.Job) error {
	_, err := r.q.Exec(ctx, `INSERT INTO jobs (`+jobColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		j.ID, j.ClientID, j.Name, j.JobNumber, j.ContactName, j.ContactEmail, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		return storeErr("insert job", err)
	}
	return nil
}

// GetByID obtiene un job; (nil, nil) si no existe.
func (r *JobRepo) GetByID(ctx context.Context, id entity.JobID) (*entity.Job, error) {
	j, err := scanJob(r.q.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get job", err)
	}
	return j, nil
}

// List lista jobs por nombre, opcionalmente de un solo cliente.
func (r *JobRepo) List(ctx context.Context, clientID entity.ClientID) ([]*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ($1 = '' OR client_id = $1) ORDER BY name, id`
	rows, err := r.q.Query(ctx, query, string(clientID))
	if err != nil {
		return nil, storeErr("list jobs", err)
	}
	defer rows.Close()
	var list []*entity.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, storeErr("scan job", err)
		}
		list = append(list, j)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list jobs", err)
	}
	return list, nil
}

// Update reemplaza los campos editables del job.
func (r *JobRepo) Update(ctx context.Context, j *entity.Job) error {
	query := `
		UPDATE jobs SET client_id = $2, name = $3, job_number = $4, contact_name = $5,
		       contact_email = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, j.ID, j.ClientID, j.Name, j.JobNumber, j.ContactName, j.ContactEmail, j.UpdatedAt)
	if err != nil {
		return storeErr("update job", err)
	}
	return expectOne(tag)
}

// Delete elimina un job por ID.
func (r *JobRepo) Delete(ctx context.Context, id entity.JobID) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete job", err)
	}
	return expectOne(tag)
}

// DeleteByClient elimina todos los jobs del cliente.
func (r *JobRepo) DeleteByClient(ctx context.Context, clientID entity.ClientID) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM jobs WHERE client_id = $1`, clientID)
	if err != nil {
		return 0, storeErr("delete jobs by client", err)
	}
	return tag.RowsAffected(), nil
}

func scanJob(row pgx.Row) (*entity.Job, error) {
	var j entity.Job
	if err := row.Scan(&j.ID, &j.ClientID, &j.Name, &j.JobNumber, &j.ContactName, &j.ContactEmail,
		&j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}
	j.CreatedAt = j.CreatedAt.UTC()
	j.UpdatedAt = j.UpdatedAt.UTC()
	return &j, nil
}

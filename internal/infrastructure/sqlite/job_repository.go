package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación SQLite de JobRepository.
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador (db o tx).
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

const jobColumns = `id, client_id, name, job_number, contact_name, contact_email, created_at, updated_at`

func (r *JobRepo) Create(ctx context.Context, j *entity.Job) error {
	_, err := r.q.ExecContext(ctx, `INSERT INTO jobs (`+jobColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.ClientID, j.Name, j.JobNumber, j.ContactName, j.ContactEmail,
		formatTime(j.CreatedAt), formatTime(j.UpdatedAt),
	)
	if err != nil {
		return storeErr("insert job", err)
	}
	return nil
}

func (r *JobRepo) GetByID(ctx context.Context, id entity.JobID) (*entity.Job, error) {
	j, err := scanJob(r.q.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get job", err)
	}
	return j, nil
}

func (r *JobRepo) List(ctx context.Context, clientID entity.ClientID) ([]*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE (?1 = '' OR client_id = ?1) ORDER BY name, id`
	rows, err := r.q.QueryContext(ctx, query, string(clientID))
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

func (r *JobRepo) Update(ctx context.Context, j *entity.Job) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE jobs SET client_id = ?, name = ?, job_number = ?, contact_name = ?, contact_email = ?, updated_at = ?
		WHERE id = ?`,
		j.ClientID, j.Name, j.JobNumber, j.ContactName, j.ContactEmail, formatTime(j.UpdatedAt), j.ID,
	)
	if err != nil {
		return storeErr("update job", err)
	}
	return expectOne(res)
}

func (r *JobRepo) Delete(ctx context.Context, id entity.JobID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return storeErr("delete job", err)
	}
	return expectOne(res)
}

func (r *JobRepo) DeleteByClient(ctx context.Context, clientID entity.ClientID) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM jobs WHERE client_id = ?`, clientID)
	if err != nil {
		return 0, storeErr("delete jobs by client", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr("rows affected", err)
	}
	return n, nil
}

func scanJob(row scanner) (*entity.Job, error) {
	var (
		j                entity.Job
		created, updated string
	)
	if err := row.Scan(&j.ID, &j.ClientID, &j.Name, &j.JobNumber, &j.ContactName, &j.ContactEmail,
		&created, &updated); err != nil {
		return nil, err
	}
	if err := parseTimeCols(timeCol{created, &j.CreatedAt}, timeCol{updated, &j.UpdatedAt}); err != nil {
		return nil, err
	}
	return &j, nil
}

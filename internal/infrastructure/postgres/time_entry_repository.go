package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

var _ repository.TimeEntryRepository = (*TimeEntryRepo)(nil)

// TimeEntryRepo implementación de TimeEntryRepository (usable con pool o tx).
type TimeEntryRepo struct {
	q Querier
}

// NewTimeEntryRepository construye el adaptador.
func NewTimeEntryRepository(q Querier) *TimeEntryRepo {
	return &TimeEntryRepo{q: q}
}

const timeEntryColumns = `id, client_id, job_id, hours, date, description, created_at, updated_at`

// Create persiste una entrada de tiempo.
func (r *TimeEntryRepo) Create(ctx context.Context, e *entity.TimeEntry) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO time_entries (`+timeEntryColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.ClientID, e.JobID, e.Hours, e.Date.UTC(), e.Description, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return storeErr("insert time entry", err)
	}
	return nil
}

// GetByID obtiene una entrada; (nil, nil) si no existe.
func (r *TimeEntryRepo) GetByID(ctx context.Context, id entity.TimeEntryID) (*entity.TimeEntry, error) {
	e, err := scanTimeEntry(r.q.QueryRow(ctx, `SELECT `+timeEntryColumns+` FROM time_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get time entry", err)
	}
	return e, nil
}

// List aplica los filtros de igualdad y el rango inclusivo sobre date.
func (r *TimeEntryRepo) List(ctx context.Context, f repository.TimeEntryFilter) ([]*entity.TimeEntry, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.ClientID != "" {
		add("client_id = $%d", string(f.ClientID))
	}
	if f.JobID != "" {
		add("job_id = $%d", string(f.JobID))
	}
	if f.From != nil {
		add("date >= $%d", f.From.UTC())
	}
	if f.To != nil {
		add("date <= $%d", f.To.UTC())
	}

	query := `SELECT ` + timeEntryColumns + ` FROM time_entries`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	if f.Ascending {
		query += ` ORDER BY date ASC, created_at ASC, id ASC`
	} else {
		query += ` ORDER BY date DESC, created_at DESC, id DESC`
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list time entries", err)
	}
	defer rows.Close()
	var list []*entity.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, storeErr("scan time entry", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list time entries", err)
	}
	return list, nil
}

// Update reemplaza los campos editables de la entrada.
func (r *TimeEntryRepo) Update(ctx context.Context, e *entity.TimeEntry) error {
	query := `
		UPDATE time_entries SET client_id = $2, job_id = $3, hours = $4, date = $5, description = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, e.ID, e.ClientID, e.JobID, e.Hours, e.Date.UTC(), e.Description, e.UpdatedAt)
	if err != nil {
		return storeErr("update time entry", err)
	}
	return expectOne(tag)
}

// Delete elimina una entrada por ID.
func (r *TimeEntryRepo) Delete(ctx context.Context, id entity.TimeEntryID) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete time entry", err)
	}
	return expectOne(tag)
}

// DeleteByJobs elimina las entradas de los jobs indicados.
func (r *TimeEntryRepo) DeleteByJobs(ctx context.Context, jobIDs []entity.JobID) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	ids := make([]string, len(jobIDs))
	for i, id := range jobIDs {
		ids[i] = string(id)
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM time_entries WHERE job_id = ANY($1)`, ids)
	if err != nil {
		return 0, storeErr("delete time entries by jobs", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByClient elimina las entradas que referencian al cliente.
func (r *TimeEntryRepo) DeleteByClient(ctx context.Context, clientID entity.ClientID) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM time_entries WHERE client_id = $1`, clientID)
	if err != nil {
		return 0, storeErr("delete time entries by client", err)
	}
	return tag.RowsAffected(), nil
}

// ReassignClientByJob mueve las entradas del job al cliente indicado.
func (r *TimeEntryRepo) ReassignClientByJob(ctx context.Context, jobID entity.JobID, clientID entity.ClientID, updatedAt time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE time_entries SET client_id = $1, updated_at = $2 WHERE job_id = $3 AND client_id <> $1`,
		string(clientID), updatedAt.UTC(), string(jobID))
	if err != nil {
		return 0, storeErr("reassign time entries", err)
	}
	return tag.RowsAffected(), nil
}

func scanTimeEntry(row pgx.Row) (*entity.TimeEntry, error) {
	var e entity.TimeEntry
	if err := row.Scan(&e.ID, &e.ClientID, &e.JobID, &e.Hours, &e.Date, &e.Description,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Date = e.Date.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return &e, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

var _ repository.TimeEntryRepository = (*TimeEntryRepo)(nil)

// TimeEntryRepo implementación SQLite de TimeEntryRepository.
type TimeEntryRepo struct {
	q Querier
}

// NewTimeEntryRepository construye el adaptador (db o tx).
func NewTimeEntryRepository(q Querier) *TimeEntryRepo {
	return &TimeEntryRepo{q: q}
}

const timeEntryColumns = `id, client_id, job_id, hours, date, description, created_at, updated_at`

func (r *TimeEntryRepo) Create(ctx context.Context, e *entity.TimeEntry) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO time_entries (`+timeEntryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.ClientID, e.JobID, e.Hours.String(), formatTime(e.Date), e.Description,
		formatTime(e.CreatedAt), formatTime(e.UpdatedAt),
	)
	if err != nil {
		return storeErr("insert time entry", err)
	}
	return nil
}

func (r *TimeEntryRepo) GetByID(ctx context.Context, id entity.TimeEntryID) (*entity.TimeEntry, error) {
	e, err := scanTimeEntry(r.q.QueryRowContext(ctx, `SELECT `+timeEntryColumns+` FROM time_entries WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get time entry", err)
	}
	return e, nil
}

// List filtra por igualdad y por rango; las fechas de ancho fijo se comparan como texto.
func (r *TimeEntryRepo) List(ctx context.Context, f repository.TimeEntryFilter) ([]*entity.TimeEntry, error) {
	var (
		conds []string
		args  []any
	)
	if f.ClientID != "" {
		conds = append(conds, "client_id = ?")
		args = append(args, string(f.ClientID))
	}
	if f.JobID != "" {
		conds = append(conds, "job_id = ?")
		args = append(args, string(f.JobID))
	}
	if f.From != nil {
		conds = append(conds, "date >= ?")
		args = append(args, formatTime(*f.From))
	}
	if f.To != nil {
		conds = append(conds, "date <= ?")
		args = append(args, formatTime(*f.To))
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

	rows, err := r.q.QueryContext(ctx, query, args...)
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

func (r *TimeEntryRepo) Update(ctx context.Context, e *entity.TimeEntry) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE time_entries SET client_id = ?, job_id = ?, hours = ?, date = ?, description = ?, updated_at = ?
		WHERE id = ?`,
		e.ClientID, e.JobID, e.Hours.String(), formatTime(e.Date), e.Description, formatTime(e.UpdatedAt), e.ID,
	)
	if err != nil {
		return storeErr("update time entry", err)
	}
	return expectOne(res)
}

func (r *TimeEntryRepo) Delete(ctx context.Context, id entity.TimeEntryID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return storeErr("delete time entry", err)
	}
	return expectOne(res)
}

func (r *TimeEntryRepo) DeleteByJobs(ctx context.Context, jobIDs []entity.JobID) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	args := make([]any, len(jobIDs))
	for i, id := range jobIDs {
		args[i] = string(id)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(jobIDs)), ", ")
	return r.deleteWhere(ctx, "delete time entries by jobs", `job_id IN (`+placeholders+`)`, args...)
}

func (r *TimeEntryRepo) DeleteByClient(ctx context.Context, clientID entity.ClientID) (int64, error) {
	return r.deleteWhere(ctx, "delete time entries by client", `client_id = ?`, string(clientID))
}

func (r *TimeEntryRepo) ReassignClientByJob(ctx context.Context, jobID entity.JobID, clientID entity.ClientID, updatedAt time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE time_entries SET client_id = ?, updated_at = ? WHERE job_id = ? AND client_id <> ?`,
		string(clientID), formatTime(updatedAt), string(jobID), string(clientID))
	if err != nil {
		return 0, storeErr("reassign time entries", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr("reassign time entries", err)
	}
	return n, nil
}

func (r *TimeEntryRepo) deleteWhere(ctx context.Context, op, cond string, args ...any) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM time_entries WHERE `+cond, args...)
	if err != nil {
		return 0, storeErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr(op, err)
	}
	return n, nil
}

func scanTimeEntry(row scanner) (*entity.TimeEntry, error) {
	var (
		e                      entity.TimeEntry
		date, created, updated string
	)
	if err := row.Scan(&e.ID, &e.ClientID, &e.JobID, &e.Hours, &date, &e.Description, &created, &updated); err != nil {
		return nil, err
	}
	if err := parseTimeCols(
		timeCol{date, &e.Date},
		timeCol{created, &e.CreatedAt},
		timeCol{updated, &e.UpdatedAt},
	); err != nil {
		return nil, err
	}
	return &e, nil
}

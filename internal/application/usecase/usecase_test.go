package usecase

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
	"github.com/jhoicas/Horas-api/internal/infrastructure/sqlite"
)

type env struct {
	repos   repository.Repositories
	company *CompanyUseCase
	clients *ClientUseCase
	jobs    *JobUseCase
	entries *TimeEntryUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "uc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = sqlite.Migrate(ctx, db)
	require.NoError(t, err)

	repos := sqlite.NewRepositories(db)
	tx := sqlite.NewTxRunner(db)
	return &env{
		repos:   repos,
		company: NewCompanyUseCase(repos.Company),
		clients: NewClientUseCase(repos.Clients, tx),
		jobs:    NewJobUseCase(repos.Jobs, repos.Clients, tx),
		entries: NewTimeEntryUseCase(repos.TimeEntries, repos.Clients, repos.Jobs),
	}
}

func ptr[T any](v T) *T { return &v }

func rate(s string) *decimal.Decimal { return ptr(decimal.RequireFromString(s)) }

func (e *env) client(t *testing.T, name string) string {
	t.Helper()
	c, err := e.clients.Create(context.Background(), dto.CreateClientRequest{Name: name, HourlyRate: rate("50")})
	require.NoError(t, err)
	return c.ID
}

func (e *env) job(t *testing.T, clientID, name string) string {
	t.Helper()
	j, err := e.jobs.Create(context.Background(), dto.CreateJobRequest{ClientID: clientID, Name: name})
	require.NoError(t, err)
	return j.ID
}

func (e *env) entry(t *testing.T, clientID, jobID, hours, date string) string {
	t.Helper()
	te, err := e.entries.Create(context.Background(), dto.CreateTimeEntryRequest{
		ClientID: clientID, JobID: jobID, Hours: rate(hours), Date: date,
	})
	require.NoError(t, err)
	return te.ID
}

func TestCompany_PerfilVacioYActualizacionParcial(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	got, err := e.company.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.CompanyResponse{}, *got)

	_, err = e.company.Update(ctx, dto.UpdateCompanyRequest{Name: ptr("Taller"), Email: ptr("a@b.test")})
	require.NoError(t, err)
	out, err := e.company.Update(ctx, dto.UpdateCompanyRequest{Phone: ptr(" 555 ")})
	require.NoError(t, err)

	assert.Equal(t, "Taller", out.Name)
	assert.Equal(t, "a@b.test", out.Email)
	assert.Equal(t, "555", out.Phone)
	assert.NotNil(t, out.UpdatedAt)
}

func TestClient_Validaciones(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.clients.Create(ctx, dto.CreateClientRequest{Name: " ", HourlyRate: rate("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.clients.Create(ctx, dto.CreateClientRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.clients.Create(ctx, dto.CreateClientRequest{Name: "X", HourlyRate: rate("-0.01")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.clients.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = e.clients.Delete(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_ListaPorNombreYUpdateParcial(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.client(t, "Zeta")
	id := e.client(t, "Alfa")

	list, err := e.clients.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alfa", list[0].Name)

	out, err := e.clients.Update(ctx, id, dto.UpdateClientRequest{HourlyRate: rate("75.5"), City: ptr("Cali")})
	require.NoError(t, err)
	assert.Equal(t, "Alfa", out.Name)
	assert.True(t, out.HourlyRate.Equal(decimal.RequireFromString("75.5")))
	assert.Equal(t, "Cali", out.City)

	_, err = e.clients.Update(ctx, id, dto.UpdateClientRequest{Name: ptr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClient_BorradoEnCascada(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	acme := e.client(t, "Acme")
	otro := e.client(t, "Otro")
	j1 := e.job(t, acme, "Web")
	j2 := e.job(t, acme, "App")
	jo := e.job(t, otro, "Ajeno")
	e.entry(t, acme, j1, "1", "2024-01-01")
	e.entry(t, acme, j2, "2", "2024-01-02")
	keep := e.entry(t, otro, jo, "3", "2024-01-03")

	out, err := e.clients.Delete(ctx, acme)
	require.NoError(t, err)
	assert.EqualValues(t, 2, out.DeletedJobs)
	assert.EqualValues(t, 2, out.DeletedTimeEntries)

	_, err = e.jobs.GetByID(ctx, j1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	rest, err := e.entries.List(ctx, dto.TimeEntryQuery{})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, keep, rest[0].ID)
}

func TestJob_ClienteDebeExistir(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.jobs.Create(ctx, dto.CreateJobRequest{ClientID: "nope", Name: "Web"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = e.jobs.Create(ctx, dto.CreateJobRequest{ClientID: e.client(t, "Acme")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJob_UpdateCambiaClienteYBorradoEnCascada(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	acme := e.client(t, "Acme")
	otro := e.client(t, "Otro")
	j := e.job(t, acme, "Web")
	e.entry(t, acme, j, "1", "2024-01-01")
	e.entry(t, acme, j, "1", "2024-01-02")

	_, err := e.jobs.Update(ctx, j, dto.UpdateJobRequest{ClientID: ptr("nope")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := e.jobs.Update(ctx, j, dto.UpdateJobRequest{ClientID: ptr(otro), JobNumber: ptr("PO-9")})
	require.NoError(t, err)
	assert.Equal(t, otro, out.ClientID)
	assert.Equal(t, "Web", out.Name)
	assert.Equal(t, "PO-9", out.JobNumber)

	byOtro, err := e.jobs.List(ctx, otro)
	require.NoError(t, err)
	assert.Len(t, byOtro, 1)

	// Las entradas siguen al job.
	moved, err := e.entries.List(ctx, dto.TimeEntryQuery{ClientID: otro})
	require.NoError(t, err)
	assert.Len(t, moved, 2)
	for _, te := range moved {
		assert.Equal(t, j, te.JobID)
	}
	left, err := e.entries.List(ctx, dto.TimeEntryQuery{ClientID: acme})
	require.NoError(t, err)
	assert.Empty(t, left)

	// Borrar el cliente anterior no arrastra trabajo del job movido.
	delAcme, err := e.clients.Delete(ctx, acme)
	require.NoError(t, err)
	assert.EqualValues(t, 0, delAcme.DeletedJobs)
	assert.EqualValues(t, 0, delAcme.DeletedTimeEntries)
	survivors, err := e.entries.List(ctx, dto.TimeEntryQuery{JobID: j})
	require.NoError(t, err)
	assert.Len(t, survivors, 2)

	del, err := e.jobs.Delete(ctx, j)
	require.NoError(t, err)
	assert.EqualValues(t, 2, del.DeletedTimeEntries)

	_, err = e.jobs.Delete(ctx, j)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTimeEntry_Referencias(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	acme := e.client(t, "Acme")
	otro := e.client(t, "Otro")
	j := e.job(t, acme, "Web")
	jo := e.job(t, otro, "Ajeno")

	cases := []struct {
		name string
		in   dto.CreateTimeEntryRequest
		want error
	}{
		{"sin horas", dto.CreateTimeEntryRequest{ClientID: acme, JobID: j, Date: "2024-01-01"}, domain.ErrInvalidInput},
		{"horas negativas", dto.CreateTimeEntryRequest{ClientID: acme, JobID: j, Hours: rate("-1"), Date: "2024-01-01"}, domain.ErrInvalidInput},
		{"fecha inválida", dto.CreateTimeEntryRequest{ClientID: acme, JobID: j, Hours: rate("1"), Date: "ayer"}, domain.ErrInvalidInput},
		{"sin job", dto.CreateTimeEntryRequest{ClientID: acme, Hours: rate("1"), Date: "2024-01-01"}, domain.ErrInvalidInput},
		{"cliente inexistente", dto.CreateTimeEntryRequest{ClientID: "nope", JobID: j, Hours: rate("1"), Date: "2024-01-01"}, domain.ErrNotFound},
		{"job inexistente", dto.CreateTimeEntryRequest{ClientID: acme, JobID: "nope", Hours: rate("1"), Date: "2024-01-01"}, domain.ErrNotFound},
		{"job de otro cliente", dto.CreateTimeEntryRequest{ClientID: acme, JobID: jo, Hours: rate("1"), Date: "2024-01-01"}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.entries.Create(ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	zero, err := e.entries.Create(ctx, dto.CreateTimeEntryRequest{ClientID: acme, JobID: j, Hours: rate("0"), Date: "2024-01-01"})
	require.NoError(t, err)
	assert.True(t, zero.Hours.IsZero())
}

func TestTimeEntry_UpdateYFiltros(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	acme := e.client(t, "Acme")
	otro := e.client(t, "Otro")
	j := e.job(t, acme, "Web")
	jo := e.job(t, otro, "Ajeno")
	id := e.entry(t, acme, j, "1", "2024-01-01")
	e.entry(t, acme, j, "2", "2024-01-31T18:00:00Z")
	e.entry(t, acme, j, "3", "2024-02-01")

	list, err := e.entries.List(ctx, dto.TimeEntryQuery{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Date.After(list[1].Date), "orden por fecha descendente")

	_, err = e.entries.List(ctx, dto.TimeEntryQuery{StartDate: "2024-02-01", EndDate: "2024-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.entries.Update(ctx, id, dto.UpdateTimeEntryRequest{JobID: ptr(jo)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := e.entries.Update(ctx, id, dto.UpdateTimeEntryRequest{ClientID: ptr(otro), JobID: ptr(jo), Description: ptr("movido")})
	require.NoError(t, err)
	assert.Equal(t, otro, out.ClientID)
	assert.True(t, out.Hours.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "movido", out.Description)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), out.Date)

	require.NoError(t, e.entries.Delete(ctx, id))
	assert.ErrorIs(t, e.entries.Delete(ctx, id), domain.ErrNotFound)
}

package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func entry(client, job, hours string) *entity.TimeEntry {
	return &entity.TimeEntry{
		ClientID: entity.ClientID(client),
		JobID:    entity.JobID(job),
		Hours:    dec(hours),
		Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeStats_EjemploBasico(t *testing.T) {
	clients := []*entity.Client{{ID: "c1", Name: "Acme", HourlyRate: dec("50")}}
	entries := []*entity.TimeEntry{entry("c1", "j1", "2"), entry("c1", "j1", "1.5")}

	got := ComputeStats(entries, clients, nil)

	assert.Equal(t, "3.5", got.TotalHours.String())
	assert.Equal(t, "175.00", got.TotalEarnings.StringFixed(2))
	assert.Equal(t, 1, got.ClientCount)
	assert.Equal(t, 2, got.EntryCount)
	require.Len(t, got.ByClient, 1)
	assert.True(t, got.ByClient[0].Earnings.Equal(dec("175")))
}

func TestComputeStats_Vacio(t *testing.T) {
	clients := []*entity.Client{{ID: "c1", Name: "Acme", HourlyRate: dec("50")}}
	got := ComputeStats(nil, clients, nil)

	assert.True(t, got.TotalHours.IsZero())
	assert.True(t, got.TotalEarnings.IsZero())
	assert.Equal(t, 1, got.ClientCount, "clientCount no depende de las entradas")
	assert.Equal(t, 0, got.EntryCount)
	assert.NotNil(t, got.ByClient)
	assert.Empty(t, got.ByClient)
}

func TestComputeStats_ClienteDesconocidoNoSuma(t *testing.T) {
	clients := []*entity.Client{{ID: "c1", Name: "Acme", HourlyRate: dec("10")}}
	entries := []*entity.TimeEntry{entry("c1", "j1", "1"), entry("ghost", "j9", "100")}

	got := ComputeStats(entries, clients, nil)

	assert.True(t, got.TotalHours.Equal(dec("1")))
	assert.True(t, got.TotalEarnings.Equal(dec("10")))
	assert.Equal(t, 2, got.EntryCount, "las entradas huérfanas se cuentan")
	require.Len(t, got.ByClient, 1)
	assert.Equal(t, "c1", got.ByClient[0].ClientID)
}

func TestComputeStats_OrdenYJobsDesconocidos(t *testing.T) {
	clients := []*entity.Client{
		{ID: "c1", Name: "Barato", HourlyRate: dec("10")},
		{ID: "c2", Name: "Caro", HourlyRate: dec("100")},
	}
	jobs := []*entity.Job{
		{ID: "j1", ClientID: "c1", Name: "Soporte", JobNumber: "PO-1"},
		{ID: "j2", ClientID: "c1", Name: "Desarrollo"},
		{ID: "j3", ClientID: "c2", Name: "Auditoría"},
	}
	entries := []*entity.TimeEntry{
		entry("c1", "j1", "1"),
		entry("c1", "j2", "5"),
		entry("c1", "borrado", "3"),
		entry("c2", "j3", "0.5"),
	}

	got := ComputeStats(entries, clients, jobs)

	require.Len(t, got.ByClient, 2)
	assert.Equal(t, "c1", got.ByClient[0].ClientID, "c1 gana 90, c2 gana 50")
	assert.Equal(t, "c2", got.ByClient[1].ClientID)

	c1Jobs := got.ByClient[0].Jobs
	require.Len(t, c1Jobs, 3)
	assert.Equal(t, "Desarrollo", c1Jobs[0].JobName)
	assert.Equal(t, UnknownJobName, c1Jobs[1].JobName)
	assert.Equal(t, "borrado", c1Jobs[1].JobID)
	assert.Equal(t, "Soporte", c1Jobs[2].JobName)
	assert.Equal(t, "PO-1", c1Jobs[2].JobNumber)
}

func TestComputeStats_SumaDeJobsIgualAlCliente(t *testing.T) {
	clients := []*entity.Client{{ID: "c1", Name: "Acme", HourlyRate: dec("33.33")}}
	entries := []*entity.TimeEntry{
		entry("c1", "j1", "1.333"),
		entry("c1", "j1", "2.667"),
		entry("c1", "j2", "0.125"),
		entry("c1", "j3", "4"),
	}

	got := ComputeStats(entries, clients, nil)
	require.Len(t, got.ByClient, 1)
	c := got.ByClient[0]

	hours, earnings := decimal.Zero, decimal.Zero
	for _, j := range c.Jobs {
		hours = hours.Add(j.Hours)
		earnings = earnings.Add(j.Earnings)
	}
	// Cada nivel redondea por separado: la diferencia no supera medio centavo por job.
	tol := dec("0.005").Mul(decimal.NewFromInt(int64(len(c.Jobs))))
	assert.True(t, hours.Sub(c.Hours).Abs().LessThanOrEqual(tol), "horas: %s vs %s", hours, c.Hours)
	assert.True(t, earnings.Sub(c.Earnings).Abs().LessThanOrEqual(tol), "ingresos: %s vs %s", earnings, c.Earnings)
}

func TestComputeStats_RedondeoSoloAlFinal(t *testing.T) {
	clients := []*entity.Client{{ID: "c1", Name: "Acme", HourlyRate: dec("1")}}
	entries := []*entity.TimeEntry{entry("c1", "j1", "0.004"), entry("c1", "j1", "0.004"), entry("c1", "j1", "0.004")}

	got := ComputeStats(entries, clients, nil)

	// 0.012 → 0.01; redondear cada sumando daría 0.
	assert.Equal(t, "0.01", got.TotalHours.StringFixed(2))
	assert.Equal(t, "0.01", got.TotalEarnings.StringFixed(2))
}

package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/pkg/money"
)

// UnknownJobName etiqueta de los jobs que ya no existen.
const UnknownJobName = "Unknown"

type jobAcc struct {
	id       entity.JobID
	hours    decimal.Decimal
	earnings decimal.Decimal
}

type clientAcc struct {
	client   *entity.Client
	hours    decimal.Decimal
	earnings decimal.Decimal
	jobs     map[entity.JobID]*jobAcc
}

// ComputeStats agrega las entradas en una sola pasada.
//
// Las entradas cuyo cliente no existe cuentan en EntryCount pero no en horas ni ingresos.
// Los acumulados se llevan sin redondear; solo los valores finales se redondean a 2 decimales.
func ComputeStats(entries []*entity.TimeEntry, clients []*entity.Client, jobs []*entity.Job) dto.DashboardStatsResponse {
	clientByID := make(map[entity.ClientID]*entity.Client, len(clients))
	for _, c := range clients {
		clientByID[c.ID] = c
	}
	jobByID := make(map[entity.JobID]*entity.Job, len(jobs))
	for _, j := range jobs {
		jobByID[j.ID] = j
	}

	totalHours := decimal.Zero
	totalEarnings := decimal.Zero
	accs := make(map[entity.ClientID]*clientAcc)

	for _, e := range entries {
		c, ok := clientByID[e.ClientID]
		if !ok {
			continue
		}
		earned := e.Hours.Mul(c.HourlyRate)
		totalHours = totalHours.Add(e.Hours)
		totalEarnings = totalEarnings.Add(earned)

		acc, ok := accs[c.ID]
		if !ok {
			acc = &clientAcc{client: c, jobs: make(map[entity.JobID]*jobAcc)}
			accs[c.ID] = acc
		}
		acc.hours = acc.hours.Add(e.Hours)
		acc.earnings = acc.earnings.Add(earned)

		ja, ok := acc.jobs[e.JobID]
		if !ok {
			ja = &jobAcc{id: e.JobID}
			acc.jobs[e.JobID] = ja
		}
		ja.hours = ja.hours.Add(e.Hours)
		ja.earnings = ja.earnings.Add(earned)
	}

	byClient := make([]dto.ClientStatsDTO, 0, len(accs))
	for _, acc := range accs {
		byClient = append(byClient, dto.ClientStatsDTO{
			ClientID:   string(acc.client.ID),
			ClientName: acc.client.Name,
			HourlyRate: acc.client.HourlyRate,
			Hours:      money.Round2(acc.hours),
			Earnings:   money.Round2(acc.earnings),
			Jobs:       jobStats(acc.jobs, jobByID),
		})
	}
	sort.Slice(byClient, func(i, j int) bool {
		a, b := byClient[i], byClient[j]
		if c := a.Earnings.Cmp(b.Earnings); c != 0 {
			return c > 0
		}
		if a.ClientName != b.ClientName {
			return a.ClientName < b.ClientName
		}
		return a.ClientID < b.ClientID
	})

	return dto.DashboardStatsResponse{
		TotalHours:    money.Round2(totalHours),
		TotalEarnings: money.Round2(totalEarnings),
		ClientCount:   len(clients),
		EntryCount:    len(entries),
		ByClient:      byClient,
	}
}

func jobStats(accs map[entity.JobID]*jobAcc, jobByID map[entity.JobID]*entity.Job) []dto.JobStatsDTO {
	out := make([]dto.JobStatsDTO, 0, len(accs))
	for _, ja := range accs {
		js := dto.JobStatsDTO{
			JobID:    string(ja.id),
			JobName:  UnknownJobName,
			Hours:    money.Round2(ja.hours),
			Earnings: money.Round2(ja.earnings),
		}
		if j, ok := jobByID[ja.id]; ok {
			js.JobName = j.Name
			js.JobNumber = j.JobNumber
		}
		out = append(out, js)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := a.Hours.Cmp(b.Hours); c != 0 {
			return c > 0
		}
		if a.JobName != b.JobName {
			return a.JobName < b.JobName
		}
		return a.JobID < b.JobID
	})
	return out
}

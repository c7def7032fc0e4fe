// Package analytics contiene el motor de agregación de horas e ingresos del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
	"github.com/jhoicas/Horas-api/pkg/timeutil"
)

// DashboardUseCase calcula las estadísticas del dashboard para un rango de fechas opcional.
type DashboardUseCase struct {
	entries repository.TimeEntryRepository
	clients repository.ClientRepository
	jobs    repository.JobRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(entries repository.TimeEntryRepository, clients repository.ClientRepository, jobs repository.JobRepository) *DashboardUseCase {
	return &DashboardUseCase{entries: entries, clients: clients, jobs: jobs}
}

// GetStats carga en paralelo las entradas del rango, todos los clientes y todos los jobs,
// y delega el cálculo en ComputeStats. startDate y endDate son opcionales ("YYYY-MM-DD").
func (uc *DashboardUseCase) GetStats(ctx context.Context, startDate, endDate string) (*dto.DashboardStatsResponse, error) {
	rng, err := timeutil.ParseRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	type entriesResult struct {
		list []*entity.TimeEntry
		err  error
	}
	type clientsResult struct {
		list []*entity.Client
		err  error
	}
	type jobsResult struct {
		list []*entity.Job
		err  error
	}

	entriesCh := make(chan entriesResult, 1)
	clientsCh := make(chan clientsResult, 1)
	jobsCh := make(chan jobsResult, 1)

	go func() {
		list, err := uc.entries.List(ctx, repository.TimeEntryFilter{From: rng.From, To: rng.To})
		entriesCh <- entriesResult{list, err}
	}()
	go func() {
		list, err := uc.clients.List(ctx)
		clientsCh <- clientsResult{list, err}
	}()
	go func() {
		list, err := uc.jobs.List(ctx, "")
		jobsCh <- jobsResult{list, err}
	}()

	entries := <-entriesCh
	clients := <-clientsCh
	jobs := <-jobsCh

	if entries.err != nil {
		return nil, fmt.Errorf("dashboard: entradas: %w", entries.err)
	}
	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", clients.err)
	}
	if jobs.err != nil {
		return nil, fmt.Errorf("dashboard: jobs: %w", jobs.err)
	}

	stats := ComputeStats(entries.list, clients.list, jobs.list)
	return &stats, nil
}

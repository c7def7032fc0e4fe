package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse respuesta de GET /api/dashboard/stats.
// Horas e ingresos se redondean a 2 decimales solo al final de la agregación.
type DashboardStatsResponse struct {
	TotalHours    decimal.Decimal  `json:"totalHours"`
	TotalEarnings decimal.Decimal  `json:"totalEarnings"`
	ClientCount   int              `json:"clientCount"` // todos los clientes, sin filtrar
	EntryCount    int              `json:"entryCount"`  // entradas consideradas (tras el filtro de fechas)
	ByClient      []ClientStatsDTO `json:"byClient"`    // ordenado por ingresos descendente
}

// ClientStatsDTO totales de un cliente con al menos una entrada.
type ClientStatsDTO struct {
	ClientID   string          `json:"clientId"`
	ClientName string          `json:"clientName"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	Hours      decimal.Decimal `json:"hours"`
	Earnings   decimal.Decimal `json:"earnings"`
	Jobs       []JobStatsDTO   `json:"jobs"` // ordenado por horas descendente
}

// JobStatsDTO totales de un job dentro de un cliente. JobName "Unknown" si el job no existe.
type JobStatsDTO struct {
	JobID     string          `json:"jobId"`
	JobName   string          `json:"jobName"`
	JobNumber string          `json:"jobNumber,omitempty"`
	Hours     decimal.Decimal `json:"hours"`
	Earnings  decimal.Decimal `json:"earnings"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTimeEntryRequest body para POST /api/time-entries. Date: "YYYY-MM-DD" o RFC 3339.
type CreateTimeEntryRequest struct {
	ClientID    string           `json:"clientId"`
	JobID       string           `json:"jobId"`
	Hours       *decimal.Decimal `json:"hours"`
	Date        string           `json:"date"`
	Description string           `json:"description,omitempty"`
}

// UpdateTimeEntryRequest body para PUT /api/time-entries/:id (campos opcionales).
type UpdateTimeEntryRequest struct {
	ClientID    *string          `json:"clientId"`
	JobID       *string          `json:"jobId"`
	Hours       *decimal.Decimal `json:"hours"`
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
}

// TimeEntryQuery filtros de GET /api/time-entries.
type TimeEntryQuery struct {
	ClientID  string `query:"clientId"`
	JobID     string `query:"jobId"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// TimeEntryResponse entrada de tiempo en respuestas.
type TimeEntryResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"clientId"`
	JobID       string          `json:"jobId"`
	Hours       decimal.Decimal `json:"hours"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

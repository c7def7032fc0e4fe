package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry horas trabajadas en un job en una fecha.
// ClientID y JobID son referencias desnormalizadas; el almacén no las valida.
type TimeEntry struct {
	ID          TimeEntryID
	ClientID    ClientID
	JobID       JobID
	Hours       decimal.Decimal // ≥ 0
	Date        time.Time       // UTC
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

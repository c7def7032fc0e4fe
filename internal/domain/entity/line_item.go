package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem una fila de la factura, derivada de una entrada de tiempo.
// Amount = round(Hours × tarifa, 2).
type LineItem struct {
	EntryID     TimeEntryID     `json:"entryId,omitempty"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Hours       decimal.Decimal `json:"hours"`
	Amount      decimal.Decimal `json:"amount"`
}

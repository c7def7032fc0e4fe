package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client representa un cliente facturable. HourlyRate se usa en todos los cálculos de ingresos.
type Client struct {
	ID         ClientID
	Name       string
	HourlyRate decimal.Decimal
	Email      string
	Phone      string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

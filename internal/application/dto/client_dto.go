package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name       string           `json:"name"`
	HourlyRate *decimal.Decimal `json:"hourlyRate"`
	Email      string           `json:"email,omitempty"`
	Phone      string           `json:"phone,omitempty"`
	Address    string           `json:"address,omitempty"`
	City       string           `json:"city,omitempty"`
	State      string           `json:"state,omitempty"`
	PostalCode string           `json:"postalCode,omitempty"`
	Country    string           `json:"country,omitempty"`
}

// UpdateClientRequest body para PUT /api/clients/:id; solo se aplican los campos presentes.
type UpdateClientRequest struct {
	Name       *string          `json:"name"`
	HourlyRate *decimal.Decimal `json:"hourlyRate"`
	Email      *string          `json:"email"`
	Phone      *string          `json:"phone"`
	Address    *string          `json:"address"`
	City       *string          `json:"city"`
	State      *string          `json:"state"`
	PostalCode *string          `json:"postalCode"`
	Country    *string          `json:"country"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	State      string          `json:"state"`
	PostalCode string          `json:"postalCode"`
	Country    string          `json:"country"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

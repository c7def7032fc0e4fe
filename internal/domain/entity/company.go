package entity

import "time"

// Company es el perfil único de la empresa que emite las facturas.
type Company struct {
	Name       string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
	Email      string
	Phone      string
	TaxID      string
	UpdatedAt  time.Time
}

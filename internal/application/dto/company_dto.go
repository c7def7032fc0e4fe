package dto

import "time"

// UpdateCompanyRequest entrada para actualizar el perfil (campos opcionales).
type UpdateCompanyRequest struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postalCode"`
	Country    *string `json:"country"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	TaxID      *string `json:"taxId"`
}

// CompanyResponse perfil de la empresa emisora.
type CompanyResponse struct {
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	PostalCode string     `json:"postalCode"`
	Country    string     `json:"country"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	TaxID      string     `json:"taxId"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

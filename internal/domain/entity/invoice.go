package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una factura. No hay otros valores válidos.
const (
	InvoiceStatusUnpaid = "unpaid"
	InvoiceStatusPaid   = "paid"
)

// ValidInvoiceStatus informa si s es un estado permitido.
func ValidInvoiceStatus(s string) bool {
	return s == InvoiceStatusUnpaid || s == InvoiceStatusPaid
}

// Invoice es una fotografía inmutable del trabajo facturable de un job en un rango de fechas.
// Tras crearse solo cambian Status, PaidAt y UpdatedAt.
type Invoice struct {
	ID          InvoiceID
	Number      string // INV-<año>-NNNN, único
	Company     CompanySnapshot
	Client      ClientSnapshot
	Job         JobSnapshot
	StartDate   time.Time
	EndDate     time.Time
	DueDate     *time.Time
	Notes       string
	LineItems   []LineItem
	TotalHours  decimal.Decimal
	TotalAmount decimal.Decimal
	Status      string
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPaid informa si la factura está pagada.
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// CompanySnapshot datos del emisor al momento de facturar.
type CompanySnapshot struct {
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	TaxID      string `json:"taxId,omitempty"`
}

// ClientSnapshot datos del cliente al momento de facturar, incluida la tarifa aplicada.
type ClientSnapshot struct {
	ID         ClientID        `json:"id"`
	Name       string          `json:"name"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	Email      string          `json:"email,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Address    string          `json:"address,omitempty"`
	City       string          `json:"city,omitempty"`
	State      string          `json:"state,omitempty"`
	PostalCode string          `json:"postalCode,omitempty"`
	Country    string          `json:"country,omitempty"`
}

// JobSnapshot datos del job al momento de facturar.
type JobSnapshot struct {
	ID           JobID  `json:"id"`
	Name         string `json:"name"`
	JobNumber    string `json:"jobNumber,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
}

// NewCompanySnapshot copia el perfil de empresa; nil produce un snapshot vacío.
func NewCompanySnapshot(c *Company) CompanySnapshot {
	if c == nil {
		return CompanySnapshot{}
	}
	return CompanySnapshot{
		Name:       c.Name,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		PostalCode: c.PostalCode,
		Country:    c.Country,
		Email:      c.Email,
		Phone:      c.Phone,
		TaxID:      c.TaxID,
	}
}

// NewClientSnapshot copia el cliente.
func NewClientSnapshot(c *Client) ClientSnapshot {
	return ClientSnapshot{
		ID:         c.ID,
		Name:       c.Name,
		HourlyRate: c.HourlyRate,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		PostalCode: c.PostalCode,
		Country:    c.Country,
	}
}

// NewJobSnapshot copia el job.
func NewJobSnapshot(j *Job) JobSnapshot {
	return JobSnapshot{
		ID:           j.ID,
		Name:         j.Name,
		JobNumber:    j.JobNumber,
		ContactName:  j.ContactName,
		ContactEmail: j.ContactEmail,
	}
}

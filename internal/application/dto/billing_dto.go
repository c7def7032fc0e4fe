package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	ClientID  string `json:"clientId"`
	JobID     string `json:"jobId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	DueDate   string `json:"dueDate,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// UpdateInvoiceStatusRequest body para PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}

// InvoiceQuery filtros de GET /api/invoices.
type InvoiceQuery struct {
	Status   string `query:"status"`
	ClientID string `query:"clientId"`
}

// InvoiceResponse factura completa (snapshot) para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoiceNumber"`
	Company       CompanySnapshotDTO `json:"company"`
	Client        ClientSnapshotDTO  `json:"client"`
	Job           JobSnapshotDTO     `json:"job"`
	StartDate     time.Time          `json:"startDate"`
	EndDate       time.Time          `json:"endDate"`
	DueDate       *time.Time         `json:"dueDate,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	LineItems     []LineItemDTO      `json:"lineItems"`
	TotalHours    decimal.Decimal    `json:"totalHours"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	Status        string             `json:"status"`
	PaidAt        *time.Time         `json:"paidAt"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// CompanySnapshotDTO emisor tal como quedó en la factura.
type CompanySnapshotDTO struct {
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

// ClientSnapshotDTO cliente tal como quedó en la factura.
type ClientSnapshotDTO struct {
	ID         string          `json:"id"`
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

// JobSnapshotDTO job tal como quedó en la factura.
type JobSnapshotDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	JobNumber    string `json:"jobNumber,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
}

// LineItemDTO línea de factura.
type LineItemDTO struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Hours       decimal.Decimal `json:"hours"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceSummaryResponse fila del listado de facturas (sin líneas).
type InvoiceSummaryResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientID      string          `json:"clientId"`
	ClientName    string          `json:"clientName"`
	JobID         string          `json:"jobId"`
	JobName       string          `json:"jobName"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	TotalHours    decimal.Decimal `json:"totalHours"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	PaidAt        *time.Time      `json:"paidAt"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// RenderedDocument documento generado por GET /api/invoices/:id/{html,pdf,xml}.
type RenderedDocument struct {
	Filename    string
	ContentType string
	Body        []byte
}

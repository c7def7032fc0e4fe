package billing

import (
	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
)

// InvoiceToResponse copia el snapshot completo a la respuesta.
func InvoiceToResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.LineItemDTO, 0, len(inv.LineItems))
	for _, li := range inv.LineItems {
		items = append(items, dto.LineItemDTO{
			Date:        li.Date,
			Description: li.Description,
			Hours:       li.Hours,
			Amount:      li.Amount,
		})
	}
	c, cl, j := inv.Company, inv.Client, inv.Job
	return &dto.InvoiceResponse{
		ID:            string(inv.ID),
		InvoiceNumber: inv.Number,
		Company: dto.CompanySnapshotDTO{
			Name: c.Name, Address: c.Address, City: c.City, State: c.State, PostalCode: c.PostalCode,
			Country: c.Country, Email: c.Email, Phone: c.Phone, TaxID: c.TaxID,
		},
		Client: dto.ClientSnapshotDTO{
			ID: string(cl.ID), Name: cl.Name, HourlyRate: cl.HourlyRate, Email: cl.Email, Phone: cl.Phone,
			Address: cl.Address, City: cl.City, State: cl.State, PostalCode: cl.PostalCode, Country: cl.Country,
		},
		Job: dto.JobSnapshotDTO{
			ID: string(j.ID), Name: j.Name, JobNumber: j.JobNumber, ContactName: j.ContactName, ContactEmail: j.ContactEmail,
		},
		StartDate:   inv.StartDate,
		EndDate:     inv.EndDate,
		DueDate:     inv.DueDate,
		Notes:       inv.Notes,
		LineItems:   items,
		TotalHours:  inv.TotalHours,
		TotalAmount: inv.TotalAmount,
		Status:      inv.Status,
		PaidAt:      inv.PaidAt,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

func invoiceToSummary(inv *entity.Invoice) dto.InvoiceSummaryResponse {
	return dto.InvoiceSummaryResponse{
		ID:            string(inv.ID),
		InvoiceNumber: inv.Number,
		ClientID:      string(inv.Client.ID),
		ClientName:    inv.Client.Name,
		JobID:         string(inv.Job.ID),
		JobName:       inv.Job.Name,
		StartDate:     inv.StartDate,
		EndDate:       inv.EndDate,
		TotalHours:    inv.TotalHours,
		TotalAmount:   inv.TotalAmount,
		Status:        inv.Status,
		PaidAt:        inv.PaidAt,
		CreatedAt:     inv.CreatedAt,
	}
}

package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Horas-api/internal/application/billing"
	"github.com/jhoicas/Horas-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturación.
type InvoiceHandler struct {
	create   *billing.CreateInvoiceUseCase
	invoices *billing.InvoiceUseCase
	render   *billing.RenderUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(create *billing.CreateInvoiceUseCase, invoices *billing.InvoiceUseCase, render *billing.RenderUseCase) *InvoiceHandler {
	return &InvoiceHandler{create: create, invoices: invoices, render: render}
}

// Create genera una factura con las horas del trabajo en el rango.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	invoice, err := h.create.CreateInvoice(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List facturas más recientes primero; filtros opcionales status y clientId.
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var q dto.InvoiceQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	out, err := h.invoices.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewList(out))
}

// GetByID obtiene el snapshot completo de una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.invoices.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(invoice)
}

// UpdateStatus cambia entre unpaid y paid.
// PATCH /api/invoices/:id/status
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	invoice, err := h.invoices.UpdateStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(invoice)
}

// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.invoices.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{ID: id})
}

// Render devuelve la factura en el formato de la ruta (html, pdf, xml).
// GET /api/invoices/:id/:format   ?download=1 fuerza descarga
func (h *InvoiceHandler) Render(c *fiber.Ctx) error {
	doc, err := h.render.Render(c.UserContext(), c.Params("id"), c.Params("format"))
	if err != nil {
		return err
	}
	disposition := "inline"
	if c.QueryBool("download") {
		disposition = "attachment"
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, doc.Filename))
	return c.Send(doc.Body)
}

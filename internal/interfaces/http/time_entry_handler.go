package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/application/usecase"
)

// TimeEntryHandler CRUD de registros de horas.
type TimeEntryHandler struct {
	uc *usecase.TimeEntryUseCase
}

// NewTimeEntryHandler construye el handler.
func NewTimeEntryHandler(uc *usecase.TimeEntryUseCase) *TimeEntryHandler {
	return &TimeEntryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar horas
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTimeEntryRequest  true  "clientId, jobId, hours, date"
// @Success      201   {object}  dto.TimeEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/time-entries [post]
func (h *TimeEntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTimeEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar registros de horas (fecha descendente)
// @Tags         time-entries
// @Produce      json
// @Param        clientId   query  string  false  "Filtrar por cliente"
// @Param        jobId      query  string  false  "Filtrar por trabajo"
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD (inclusive)"
// @Success      200  {object}  dto.ListResponse[dto.TimeEntryResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/time-entries [get]
func (h *TimeEntryHandler) List(c *fiber.Ctx) error {
	var q dto.TimeEntryQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewList(out))
}

// GET /api/time-entries/:id
func (h *TimeEntryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// PUT /api/time-entries/:id
func (h *TimeEntryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTimeEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DELETE /api/time-entries/:id
func (h *TimeEntryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{ID: id})
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/pkg/logger"
)

// statusFor traduce un error de caso de uso a status HTTP y código de error.
func statusFor(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.As(err, &fe):
		if fe.Code == fiber.StatusNotFound {
			return fe.Code, "ROUTE_NOT_FOUND"
		}
		return fe.Code, "HTTP_ERROR"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// ErrorHandler error handler de Fiber: los handlers devuelven el error del caso de uso tal cual
// y aquí se responde {"code", "error"}. Los 5xx se registran con la ruta.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, code := statusFor(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Int("status", status).
				Msg("error atendiendo petición")
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
	}
}

// badBody respuesta para cuerpos JSON que no se pueden decodificar.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

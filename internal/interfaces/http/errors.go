package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/pkg/logger"
)

// Códigos de error de la API.
const (
	CodeValidation       = "VALIDATION"
	CodeInvalidBody      = "INVALID_BODY"
	CodeNotFound         = "NOT_FOUND"
	CodeDuplicate        = "DUPLICATE"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternal         = "INTERNAL"
)

// respondError traduce errores de dominio a status + dto.ErrorResponse. La causa de los
// fallos de infraestructura no llega al cliente.
//
// Además de validación (400), no encontrado (404) y servicio externo (500), se distinguen
// dos casos propios: clave activa duplicada (409) y eliminación lógica no soportada (405).
func respondError(c *fiber.Ctx, err error) error {
	var (
		verr *domain.ValidationError
		nf   *domain.NotFoundError
		ext  *domain.ExternalServiceError
	)
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: verr.Message, Field: verr.Field})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: nf.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: CodeDuplicate, Message: "ya existe un registro activo con esa clave"})
	case errors.Is(err, domain.ErrSoftDeleteUnsupported):
		return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{Code: CodeMethodNotAllowed, Message: err.Error()})
	case errors.As(err, &ext):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: ext.Service + ": " + ext.Message})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: "error interno"})
	}
}

// ErrorHandler manejador de errores de Fiber: rutas inexistentes, métodos no permitidos y errores no tratados.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := CodeInternal
			switch fe.Code {
			case fiber.StatusNotFound:
				code = CodeNotFound
			case fiber.StatusMethodNotAllowed:
				code = CodeMethodNotAllowed
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
				code = CodeInvalidBody
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		log.Error().Err(err).Str("request_id", GetRequestID(c)).Str("path", c.Path()).Msg("error no controlado")
		return respondError(c, err)
	}
}

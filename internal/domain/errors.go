package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrExternalService       = errors.New("fallo de servicio externo")
	ErrSoftDeleteUnsupported = errors.New("la entidad no admite eliminación lógica")
)

// ValidationError el llamador envió un ID o un campo inaceptable. Nunca se reintenta.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NotFoundError la clave no corresponde a un registro activo.
type NotFoundError struct {
	Entity string
	Key    Key
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con %s no encontrado", e.Entity, e.Key)
}

// Is permite errors.Is(err, ErrNotFound).
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ExternalServiceError fallo de almacenamiento o infraestructura.
// Message es seguro para el cliente; Err (la causa) solo se registra en logs.
type ExternalServiceError struct {
	Service string
	Message string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	if e.Err == nil {
		return e.Service + ": " + e.Message
	}
	return e.Service + ": " + e.Message + ": " + e.Err.Error()
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrExternalService).
func (e *ExternalServiceError) Is(target error) bool { return target == ErrExternalService }

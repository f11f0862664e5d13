package repository

import (
	"context"
	"time"

	"github.com/jhoicas/mercado-api/internal/domain"
)

// Store define el puerto de persistencia genérico para una entidad (DIP).
//
// FindByID devuelve (nil, nil) si no existe un registro activo con esa clave.
// Update, SoftDelete y HardDelete devuelven false (sin error) si ninguna fila fue afectada.
type Store[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, key domain.Key) (*T, error)
	Insert(ctx context.Context, rec *T) (*T, error)
	Update(ctx context.Context, rec *T) (bool, error)
	SoftDelete(ctx context.Context, key domain.Key, at time.Time) (bool, error)
	HardDelete(ctx context.Context, key domain.Key) (bool, error)
	// SoftDeletable informa si la tabla tiene columna de borrado lógico.
	SoftDeletable() bool
}

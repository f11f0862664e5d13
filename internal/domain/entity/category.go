package entity

import "time"

// Category categoría de productos del mercado.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	DeletedAt *time.Time // nil = activa
}

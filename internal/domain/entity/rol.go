package entity

import "time"

// Rol agrupación de permisos asignable a usuarios.
type Rol struct {
	ID        int64
	Name      string
	Code      string
	CreatedAt time.Time
	DeletedAt *time.Time
}

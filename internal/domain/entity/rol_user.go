package entity

import "time"

// RolUser asignación de un rol a un usuario.
type RolUser struct {
	ID        int64
	RolID     int64
	UserID    int64
	CreatedAt time.Time
	DeletedAt *time.Time
}

package entity

import "time"

// RolFormPermission permiso que un rol tiene sobre un formulario.
type RolFormPermission struct {
	ID           int64
	RolID        int64
	FormID       int64
	PermissionID int64
	CreatedAt    time.Time
	DeletedAt    *time.Time
}

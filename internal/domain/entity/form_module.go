package entity

import "time"

// FormModule pertenencia de un formulario a un módulo.
type FormModule struct {
	ID        int64
	FormID    int64
	ModuleID  int64
	CreatedAt time.Time
	DeletedAt *time.Time
}

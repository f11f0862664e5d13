package entity

import "time"

// User cuenta de acceso al sistema.
type User struct {
	ID              int64
	UserName        string
	ProfilePhotoURL string
	Active          bool
	CreatedAt       time.Time
	DeletedAt       *time.Time
}

package entity

import "time"

// Producer productor que ofrece productos.
type Producer struct {
	ID        int64
	Address   string
	CreatedAt time.Time
	DeletedAt *time.Time
}

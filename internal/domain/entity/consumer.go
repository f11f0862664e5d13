package entity

import "time"

// Consumer comprador registrado en el mercado.
type Consumer struct {
	ID        int64
	Active    bool
	CreatedAt time.Time
	DeletedAt *time.Time
}

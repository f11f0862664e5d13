package entity

import "time"

// Order pedido de un consumidor.
type Order struct {
	ID         int64
	ConsumerID int64
	Status     string
	Note       string
	CreatedAt  time.Time
	DeletedAt  *time.Time
}

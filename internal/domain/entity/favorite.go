package entity

import "time"

// Favorite producto de un productor marcado como favorito por un consumidor.
type Favorite struct {
	ID         int64
	ConsumerID int64
	ProducerID int64
	ProductID  int64
	DateAdded  time.Time
	CreatedAt  time.Time
	DeletedAt  *time.Time
}

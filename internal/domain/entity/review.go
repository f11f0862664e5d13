package entity

import "time"

// Review reseña de un consumidor sobre un producto. Se identifica por (ConsumerID, ProductID).
type Review struct {
	ConsumerID int64
	ProductID  int64
	Rating     int // 1..5
	Comment    string
	CreatedAt  time.Time
	DeletedAt  *time.Time
}

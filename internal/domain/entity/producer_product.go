package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProducerProduct oferta de un producto por parte de un productor (precio, disponibilidad, ficha).
type ProducerProduct struct {
	ID           int64
	ProducerID   int64
	ProductID    int64
	Name         string
	Description  string
	Price        decimal.Decimal
	Production   string // ej. orgánica, tradicional
	Availability string // ej. disponible, agotado, por temporada
	ImageURL     string
	CreatedAt    time.Time
	DeletedAt    *time.Time
}

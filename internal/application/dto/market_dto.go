package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-api/internal/domain"
)

// Category categoría de productos.
type Category struct {
	Identity
	Name string `json:"name" validate:"notblank"`
	Audit
}

// Consumer comprador. Sin reglas de validación sobre sus campos.
type Consumer struct {
	Identity
	Active bool `json:"active"`
	Audit
}

// Producer productor.
type Producer struct {
	Identity
	Address string `json:"address" validate:"notblank"`
	Audit
}

// Product producto del catálogo.
type Product struct {
	Identity
	CategoryID int64 `json:"categoryId" validate:"gt=0"`
	FavoriteID int64 `json:"favoriteId" validate:"gt=0"`
	Audit
}

// ProducerProduct oferta de un productor para un producto.
type ProducerProduct struct {
	Identity
	ProducerID   int64           `json:"producerId" validate:"gt=0"`
	ProductID    int64           `json:"productId" validate:"gt=0"`
	Name         string          `json:"name" validate:"notblank"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	Production   string          `json:"production"`
	Availability string          `json:"availability"`
	ImageURL     string          `json:"imageUrl"`
	Audit
}

// Favorite producto marcado como favorito. DateAdded se asigna al crear si no se envía.
type Favorite struct {
	Identity
	ConsumerID int64      `json:"consumerId" validate:"gt=0"`
	ProducerID int64      `json:"producerId" validate:"gt=0"`
	ProductID  int64      `json:"productId" validate:"gt=0"`
	DateAdded  *time.Time `json:"dateAdded,omitempty"`
	Audit
}

// Order pedido de un consumidor.
type Order struct {
	Identity
	ConsumerID int64  `json:"consumerId" validate:"gt=0"`
	Status     string `json:"status" validate:"notblank"`
	Note       string `json:"note"`
	Audit
}

// Review reseña identificada por (consumerId, productId).
type Review struct {
	ConsumerID int64  `json:"consumerId" validate:"gt=0"`
	ProductID  int64  `json:"productId" validate:"gt=0"`
	Rating     int    `json:"rating" validate:"gte=1,lte=5"`
	Comment    string `json:"comment" validate:"notblank"`
	Audit
}

// Key clave compuesta de la reseña.
func (r Review) Key() domain.Key { return domain.CompositeKey(r.ConsumerID, r.ProductID) }

// SetKey asigna consumerId y productId desde la ruta.
func (r *Review) SetKey(k domain.Key) {
	if v := k.Values(); len(v) == 2 {
		r.ConsumerID, r.ProductID = v[0], v[1]
	}
}

package entity

import "time"

// Product producto del catálogo. CategoryID y FavoriteID son referencias sin verificación de existencia.
type Product struct {
	ID         int64
	CategoryID int64
	FavoriteID int64
	CreatedAt  time.Time
	DeletedAt  *time.Time
}

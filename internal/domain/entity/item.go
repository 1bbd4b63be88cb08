package entity

import "github.com/shopspring/decimal"

// Item representa un artículo del hogar. Su existencia actual vive en Stock
// (se elimina en cascada junto con el item).
type Item struct {
	ID              int64
	Name            string
	Brand           string
	Unit            string
	ImageURL        string
	DefaultQuantity decimal.Decimal
	Notes           string
	IsFavorite      bool
	UserID          string
	CategoryID      int64
}

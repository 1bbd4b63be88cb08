package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingRecord es una compra completada. Su creación dispara la
// reconciliación de stock y la limpieza de la lista de compras.
type ShoppingRecord struct {
	ID       int64
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Store    string
	BoughtAt time.Time
	ItemID   int64
	UserID   string
}

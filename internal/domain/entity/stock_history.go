package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockHistory es una entrada del libro de cambios de stock: append-only,
// nunca se actualiza ni se borra vía API. Change es el delta firmado aplicado.
type StockHistory struct {
	ID        int64
	Change    decimal.Decimal // positivo entrada, negativo salida
	Reason    string
	Memo      string
	ItemID    int64
	UserID    string
	CreatedAt time.Time
}

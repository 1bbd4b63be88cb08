package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingListEntry es una intención de compra pendiente para un item.
// Se retira automáticamente al registrar la compra correspondiente, o a mano.
type ShoppingListEntry struct {
	ID       int64
	Quantity decimal.Decimal
	Checked  bool
	ItemID   int64
	UserID   string
	AddedAt  time.Time
}

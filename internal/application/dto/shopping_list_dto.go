package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingListRequest body para POST /api/v1/shopping-list.
type ShoppingListRequest struct {
	ItemID   int64           `json:"item_id" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ShoppingListCheckRequest body para PUT /api/v1/shopping-list/:id (toggle del check).
type ShoppingListCheckRequest struct {
	Checked bool `json:"checked"`
}

// ShoppingListResponse salida de una entrada de la lista de compras.
type ShoppingListResponse struct {
	ID       int64           `json:"id"`
	Quantity decimal.Decimal `json:"quantity"`
	Checked  bool            `json:"checked"`
	UserID   string          `json:"user_id"`
	ItemID   int64           `json:"item_id"`
	AddedAt  time.Time       `json:"added_at"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingRecordRequest body para POST /api/v1/shopping-records (registrar una compra).
type ShoppingRecordRequest struct {
	ItemID   int64           `json:"item_id" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Store    string          `json:"store" validate:"required,min=1"`
	BoughtAt time.Time       `json:"bought_at"`
}

// ShoppingRecordUpdateRequest body para PUT /api/v1/shopping-records/:id.
// Reason y Action controlan el re-ajuste de stock que acompaña la edición.
type ShoppingRecordUpdateRequest struct {
	ItemID   int64           `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Store    string          `json:"store" validate:"required,min=1"`
	BoughtAt time.Time       `json:"bought_at"`
	Reason   string          `json:"reason"`
	Action   string          `json:"action" validate:"required,oneof=increase decrease manual"`
}

// ShoppingRecordResponse salida de una compra.
type ShoppingRecordResponse struct {
	ID       int64           `json:"id"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Store    string          `json:"store"`
	BoughtAt time.Time       `json:"bought_at"`
	UserID   string          `json:"user_id"`
	ItemID   int64           `json:"item_id"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockRequest body para POST /api/v1/stocks: crea la fila de stock de un item.
type CreateStockRequest struct {
	Quantity  decimal.Decimal `json:"quantity"`
	Threshold decimal.Decimal `json:"threshold"`
	Location  string          `json:"location" validate:"required,min=1"`
	ItemID    int64           `json:"item_id" validate:"required"`
}

// UpdateStockRequest body para PUT /api/v1/items/:id/stock.
// Action decide la aritmética (increase/decrease/manual); threshold y location
// siempre sobrescriben; reason y memo alimentan la entrada de historial.
type UpdateStockRequest struct {
	Reason    string          `json:"reason"`
	Memo      string          `json:"memo"`
	Action    string          `json:"action" validate:"required,oneof=increase decrease manual"`
	Quantity  decimal.Decimal `json:"quantity"`
	Threshold decimal.Decimal `json:"threshold"`
	Location  string          `json:"location" validate:"required,min=1"`
}

// StockResponse salida de una fila de stock.
type StockResponse struct {
	ID        int64           `json:"id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Threshold decimal.Decimal `json:"threshold"`
	Location  string          `json:"location"`
	UserID    string          `json:"user_id"`
	ItemID    int64           `json:"item_id"`
}

// StockWithHistoryResponse salida del ajuste de stock: la fila actualizada
// más la entrada de historial que registró el delta.
type StockWithHistoryResponse struct {
	Stock   StockResponse        `json:"stock"`
	History StockHistoryResponse `json:"history"`
}

// CreateStockHistoryRequest body para POST /api/v1/items/:id/stock-history
// (entrada manual del libro, sin tocar la cantidad en stock).
type CreateStockHistoryRequest struct {
	Change decimal.Decimal `json:"change"`
	Reason string          `json:"reason" validate:"required,min=1"`
	Memo   string          `json:"memo"`
}

// StockHistoryResponse salida de una entrada del libro de cambios.
type StockHistoryResponse struct {
	ID        int64           `json:"id"`
	Change    decimal.Decimal `json:"change"`
	Reason    string          `json:"reason"`
	Memo      string          `json:"memo"`
	UserID    string          `json:"user_id"`
	ItemID    int64           `json:"item_id"`
	CreatedAt time.Time       `json:"created_at"`
}

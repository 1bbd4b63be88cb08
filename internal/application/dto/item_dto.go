package dto

import "github.com/shopspring/decimal"

// ItemRequest body para crear/actualizar un item. En update solo sobrescribe lo enviado.
type ItemRequest struct {
	Name            string          `json:"name" validate:"required,min=1"`
	Brand           string          `json:"brand"`
	Unit            string          `json:"unit"`
	ImageURL        string          `json:"image_url"`
	DefaultQuantity decimal.Decimal `json:"default_quantity"`
	Notes           string          `json:"notes"`
	IsFavorite      bool            `json:"is_favorite"`
	CategoryID      int64           `json:"category_id"`
}

// ItemResponse salida de un item.
type ItemResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Brand           string          `json:"brand"`
	Unit            string          `json:"unit"`
	ImageURL        string          `json:"image_url"`
	DefaultQuantity decimal.Decimal `json:"default_quantity"`
	Notes           string          `json:"notes"`
	IsFavorite      bool            `json:"is_favorite"`
	UserID          string          `json:"user_id"`
	CategoryID      int64           `json:"category_id"`
}

package entity

import "github.com/shopspring/decimal"

// Stock representa la existencia actual de un item para un usuario: una fila por (user, item).
// Threshold es el punto de reorden; Location describe dónde se guarda.
type Stock struct {
	ID        int64
	Quantity  decimal.Decimal
	Threshold decimal.Decimal
	Location  string
	ItemID    int64
	UserID    string
}

package stock

import (
	"github.com/shopspring/decimal"
	"github.com/stockypocky/sp-api/internal/domain"
	"github.com/stockypocky/sp-api/internal/domain/entity"
)

// Acciones de ajuste de stock.
const (
	ActionIncrease = "increase" // suma la cantidad solicitada
	ActionDecrease = "decrease" // resta la cantidad solicitada
	ActionManual   = "manual"   // fija la cantidad absoluta
)

// ValidAction indica si s es una acción de ajuste conocida.
func ValidAction(s string) bool {
	switch s {
	case ActionIncrease, ActionDecrease, ActionManual:
		return true
	}
	return false
}

// Adjustment describe un ajuste solicitado sobre una fila de stock.
// Threshold y Location siempre sobrescriben los valores actuales (no hay merge condicional).
type Adjustment struct {
	Action    string
	Quantity  decimal.Decimal
	Threshold decimal.Decimal
	Location  string
	Reason    string
	Memo      string
}

// Apply calcula el nuevo estado del stock y el delta de auditoría para un ajuste.
// No persiste nada: devuelve la fila de stock actualizada y la entrada de historial
// cuyo Change es exactamente el delta aplicado. El caller debe escribir ambas en
// la misma transacción.
//
// decrease puede dejar la cantidad en negativo: el dominio registra el agotamiento
// tal cual se reporta, sin recortar en cero.
func Apply(current entity.Stock, adj Adjustment) (entity.Stock, entity.StockHistory, error) {
	var delta decimal.Decimal

	switch adj.Action {
	case ActionIncrease:
		delta = adj.Quantity
		current.Quantity = current.Quantity.Add(adj.Quantity)
	case ActionDecrease:
		delta = adj.Quantity.Neg()
		current.Quantity = current.Quantity.Sub(adj.Quantity)
	case ActionManual:
		delta = adj.Quantity.Sub(current.Quantity)
		current.Quantity = adj.Quantity
	default:
		return entity.Stock{}, entity.StockHistory{}, domain.ErrInvalidInput
	}

	current.Threshold = adj.Threshold
	current.Location = adj.Location

	history := entity.StockHistory{
		Change: delta,
		Reason: adj.Reason,
		Memo:   adj.Memo,
		ItemID: current.ItemID,
		UserID: current.UserID,
	}
	return current, history, nil
}

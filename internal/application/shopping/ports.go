package shopping

import (
	"context"

	"github.com/stockypocky/sp-api/internal/domain/repository"
)

// TxRunner ejecuta la reconciliación de una compra dentro de una transacción:
// el registro de compra, el ajuste de stock con su historial y la limpieza de
// la lista de compras se confirman juntos o se revierten juntos.
type TxRunner interface {
	RunShopping(ctx context.Context, fn func(
		recordRepo repository.ShoppingRecordRepository,
		stockRepo repository.StockRepository,
		historyRepo repository.StockHistoryRepository,
		listRepo repository.ShoppingListRepository,
	) error) error
}

package stock

import (
	"context"

	"github.com/stockypocky/sp-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que la fila de stock y su entrada de historial se
// escriban juntas o no se escriba ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		historyRepo repository.StockHistoryRepository,
	) error) error
}

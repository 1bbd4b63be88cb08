package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockypocky/sp-api/internal/application/shopping"
	"github.com/stockypocky/sp-api/internal/application/stock"
	"github.com/stockypocky/sp-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner and shopping.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ shopping.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockRepository(tx)
	historyRepo := NewStockHistoryRepository(tx)

	if err := fn(stockRepo, historyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunShopping inicia una transacción con los repos que necesita la reconciliación
// de una compra (registro, stock, historial y lista de compras).
func (r *TxRunner) RunShopping(ctx context.Context, fn func(
	recordRepo repository.ShoppingRecordRepository,
	stockRepo repository.StockRepository,
	historyRepo repository.StockHistoryRepository,
	listRepo repository.ShoppingListRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	recordRepo := NewShoppingRecordRepository(tx)
	stockRepo := NewStockRepository(tx)
	historyRepo := NewStockHistoryRepository(tx)
	listRepo := NewShoppingListRepository(tx)

	if err := fn(recordRepo, stockRepo, historyRepo, listRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

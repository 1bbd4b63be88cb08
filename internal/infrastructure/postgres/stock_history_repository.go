package postgres

import (
	"context"
	"fmt"

	"github.com/stockypocky/sp-api/internal/domain/entity"
	"github.com/stockypocky/sp-api/internal/domain/repository"
)

var _ repository.StockHistoryRepository = (*StockHistoryRepo)(nil)

// StockHistoryRepo implementación del libro de cambios de stock sobre PostgreSQL
// (usable con pool o tx). El libro es append-only.
type StockHistoryRepo struct {
	q Querier
}

// NewStockHistoryRepository construye el adaptador de historial. Pasar pool o tx (Querier).
func NewStockHistoryRepository(q Querier) *StockHistoryRepo {
	return &StockHistoryRepo{q: q}
}

// Create persiste una entrada del libro y asigna ID y created_at.
func (r *StockHistoryRepo) Create(history *entity.StockHistory) error {
	query := `
		INSERT INTO stock_histories (change, reason, memo, item_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		history.Change, history.Reason, history.Memo, history.ItemID, history.UserID,
	).Scan(&history.ID, &history.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock history: %w", err)
	}
	return nil
}

// ListByItem lista el historial de un item, más reciente primero.
func (r *StockHistoryRepo) ListByItem(userID string, itemID int64) ([]*entity.StockHistory, error) {
	query := `
		SELECT id, change, reason, memo, item_id, user_id, created_at
		FROM stock_histories WHERE user_id = $1 AND item_id = $2
		ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stock history: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockHistory
	for rows.Next() {
		var h entity.StockHistory
		if err := rows.Scan(&h.ID, &h.Change, &h.Reason, &h.Memo, &h.ItemID, &h.UserID, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

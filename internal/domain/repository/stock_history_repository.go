package repository

import "github.com/stockypocky/sp-api/internal/domain/entity"

// StockHistoryRepository define el puerto de persistencia para el libro de cambios de stock.
// El libro es append-only: no hay Update ni Delete.
type StockHistoryRepository interface {
	Create(history *entity.StockHistory) error
	ListByItem(userID string, itemID int64) ([]*entity.StockHistory, error)
}

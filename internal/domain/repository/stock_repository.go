package repository

import "github.com/stockypocky/sp-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar el stock de un item.
// Usado dentro de transacciones para garantizar consistencia con el historial.
type StockRepository interface {
	Create(stock *entity.Stock) error
	GetByItem(userID string, itemID int64) (*entity.Stock, error)
	// GetByItemForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetByItemForUpdate(userID string, itemID int64) (*entity.Stock, error)
	ListByUser(userID string) ([]*entity.Stock, error)
	Update(stock *entity.Stock) error
}

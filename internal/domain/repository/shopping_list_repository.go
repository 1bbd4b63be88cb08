package repository

import "github.com/stockypocky/sp-api/internal/domain/entity"

// ShoppingListRepository define el puerto de persistencia para la lista de compras.
type ShoppingListRepository interface {
	Create(entry *entity.ShoppingListEntry) error
	GetByID(id int64) (*entity.ShoppingListEntry, error)
	// GetByItem devuelve la entrada pendiente de un (user, item), o nil si no hay.
	GetByItem(userID string, itemID int64) (*entity.ShoppingListEntry, error)
	ListByUser(userID string) ([]*entity.ShoppingListEntry, error)
	Update(entry *entity.ShoppingListEntry) error
	Delete(id int64) error
}

package repository

import "github.com/stockypocky/sp-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item.
// List filtra por categoría y/o favorito cuando los punteros no son nil.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id int64) (*entity.Item, error)
	List(userID string, categoryID *int64, isFavorite *bool) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id int64) error
}

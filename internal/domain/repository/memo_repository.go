package repository

import "github.com/stockypocky/sp-api/internal/domain/entity"

// MemoRepository define el puerto de persistencia para Memo.
type MemoRepository interface {
	Create(memo *entity.Memo) error
	GetByID(id int64) (*entity.Memo, error)
	ListByUser(userID string) ([]*entity.Memo, error)
	Update(memo *entity.Memo) error
	Delete(id int64) error
}

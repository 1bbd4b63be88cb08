package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockypocky/sp-api/internal/domain/entity"
)

// ShoppingRecordRepository define el puerto de persistencia para compras completadas.
type ShoppingRecordRepository interface {
	Create(record *entity.ShoppingRecord) error
	GetByID(id int64) (*entity.ShoppingRecord, error)
	ListByUser(userID string) ([]*entity.ShoppingRecord, error)
	Update(record *entity.ShoppingRecord) error
	Delete(id int64) error
}

// MonthlySpendingResult total gastado (price × quantity) por mes.
type MonthlySpendingResult struct {
	Month       time.Time       `json:"month"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SpendingByNameResult total gastado agrupado por item o por categoría.
type SpendingByNameResult struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SpendingRepository consultas de solo lectura sobre el gasto del usuario.
type SpendingRepository interface {
	GetMonthlySpending(ctx context.Context, userID string) ([]MonthlySpendingResult, error)
	GetSpendingByItem(ctx context.Context, userID string) ([]SpendingByNameResult, error)
	GetSpendingByCategory(ctx context.Context, userID string) ([]SpendingByNameResult, error)
}

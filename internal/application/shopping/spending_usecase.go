package shopping

import (
	"context"

	"github.com/stockypocky/sp-api/internal/domain/repository"
)

// SpendingUseCase expone los resúmenes de gasto del usuario (solo lectura).
type SpendingUseCase struct {
	repo repository.SpendingRepository
}

// NewSpendingUseCase construye el caso de uso.
func NewSpendingUseCase(repo repository.SpendingRepository) *SpendingUseCase {
	return &SpendingUseCase{repo: repo}
}

// Monthly total gastado por mes.
func (uc *SpendingUseCase) Monthly(ctx context.Context, userID string) ([]repository.MonthlySpendingResult, error) {
	return uc.repo.GetMonthlySpending(ctx, userID)
}

// ByItem total gastado agrupado por item.
func (uc *SpendingUseCase) ByItem(ctx context.Context, userID string) ([]repository.SpendingByNameResult, error) {
	return uc.repo.GetSpendingByItem(ctx, userID)
}

// ByCategory total gastado agrupado por categoría.
func (uc *SpendingUseCase) ByCategory(ctx context.Context, userID string) ([]repository.SpendingByNameResult, error) {
	return uc.repo.GetSpendingByCategory(ctx, userID)
}

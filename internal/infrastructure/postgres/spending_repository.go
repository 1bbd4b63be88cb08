package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockypocky/sp-api/internal/domain/repository"
)

var _ repository.SpendingRepository = (*SpendingRepo)(nil)

// SpendingRepo consultas de solo lectura sobre el gasto del usuario.
// El total de cada compra es price × quantity.
type SpendingRepo struct {
	pool *pgxpool.Pool
}

// NewSpendingRepository construye el adaptador de resúmenes de gasto.
func NewSpendingRepository(pool *pgxpool.Pool) *SpendingRepo {
	return &SpendingRepo{pool: pool}
}

// GetMonthlySpending agrupa el gasto por mes calendario, más reciente primero.
func (r *SpendingRepo) GetMonthlySpending(ctx context.Context, userID string) ([]repository.MonthlySpendingResult, error) {
	const query = `
	SELECT
	    date_trunc('month', sr.bought_at)            AS month,
	    COALESCE(SUM(sr.price * sr.quantity), 0)     AS total_amount
	FROM shopping_records sr
	WHERE sr.user_id = $1
	GROUP BY 1
	ORDER BY 1 DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("spending.GetMonthlySpending: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlySpendingResult
	for rows.Next() {
		var row repository.MonthlySpendingResult
		if err := rows.Scan(&row.Month, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("spending.GetMonthlySpending scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSpendingByItem agrupa el gasto por item, de mayor a menor.
func (r *SpendingRepo) GetSpendingByItem(ctx context.Context, userID string) ([]repository.SpendingByNameResult, error) {
	const query = `
	SELECT
	    i.id,
	    i.name,
	    COALESCE(SUM(sr.price * sr.quantity), 0)     AS total_amount
	FROM shopping_records sr
	JOIN items i ON i.id = sr.item_id
	WHERE sr.user_id = $1
	GROUP BY i.id, i.name
	ORDER BY total_amount DESC`

	return r.queryByName(ctx, query, userID, "spending.GetSpendingByItem")
}

// GetSpendingByCategory agrupa el gasto por categoría del item, de mayor a menor.
func (r *SpendingRepo) GetSpendingByCategory(ctx context.Context, userID string) ([]repository.SpendingByNameResult, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    COALESCE(SUM(sr.price * sr.quantity), 0)     AS total_amount
	FROM shopping_records sr
	JOIN items      i ON i.id = sr.item_id
	JOIN categories c ON c.id = i.category_id
	WHERE sr.user_id = $1
	GROUP BY c.id, c.name
	ORDER BY total_amount DESC`

	return r.queryByName(ctx, query, userID, "spending.GetSpendingByCategory")
}

func (r *SpendingRepo) queryByName(ctx context.Context, query, userID, op string) ([]repository.SpendingByNameResult, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var results []repository.SpendingByNameResult
	for rows.Next() {
		var row repository.SpendingByNameResult
		if err := rows.Scan(&row.ID, &row.Name, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

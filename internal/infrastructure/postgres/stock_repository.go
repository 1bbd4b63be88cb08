package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stockypocky/sp-api/internal/domain"
	"github.com/stockypocky/sp-api/internal/domain/entity"
	"github.com/stockypocky/sp-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste la fila de stock de un item y asigna su ID.
// Hay a lo sumo una fila por (user, item).
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (quantity, threshold, location, item_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		stock.Quantity, stock.Threshold, stock.Location, stock.ItemID, stock.UserID,
	).Scan(&stock.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByItem obtiene el stock de un item del usuario; nil si no existe.
func (r *StockRepo) GetByItem(userID string, itemID int64) (*entity.Stock, error) {
	query := `
		SELECT id, quantity, threshold, location, item_id, user_id
		FROM stocks WHERE user_id = $1 AND item_id = $2`
	return r.scanOne(query, userID, itemID, "get stock")
}

// GetByItemForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetByItemForUpdate(userID string, itemID int64) (*entity.Stock, error) {
	query := `
		SELECT id, quantity, threshold, location, item_id, user_id
		FROM stocks WHERE user_id = $1 AND item_id = $2
		FOR UPDATE`
	return r.scanOne(query, userID, itemID, "get stock for update")
}

func (r *StockRepo) scanOne(query, userID string, itemID int64, op string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, userID, itemID).Scan(
		&s.ID, &s.Quantity, &s.Threshold, &s.Location, &s.ItemID, &s.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// ListByUser lista el stock de todos los items del usuario.
func (r *StockRepo) ListByUser(userID string) ([]*entity.Stock, error) {
	query := `
		SELECT id, quantity, threshold, location, item_id, user_id
		FROM stocks WHERE user_id = $1 ORDER BY item_id`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.Quantity, &s.Threshold, &s.Location, &s.ItemID, &s.UserID); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza cantidad, threshold y ubicación de una fila de stock.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE stocks SET quantity = $2, threshold = $3, location = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.Quantity, stock.Threshold, stock.Location,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stockypocky/sp-api/internal/domain/entity"
	"github.com/stockypocky/sp-api/internal/domain/repository"
)

var _ repository.ShoppingRecordRepository = (*ShoppingRecordRepo)(nil)

// ShoppingRecordRepo implementación de ShoppingRecordRepository sobre PostgreSQL
// (usable con pool o tx).
type ShoppingRecordRepo struct {
	q Querier
}

// NewShoppingRecordRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewShoppingRecordRepository(q Querier) *ShoppingRecordRepo {
	return &ShoppingRecordRepo{q: q}
}

// Create persiste una compra y asigna su ID.
func (r *ShoppingRecordRepo) Create(record *entity.ShoppingRecord) error {
	query := `
		INSERT INTO shopping_records (quantity, price, store, bought_at, item_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		record.Quantity, record.Price, record.Store, record.BoughtAt, record.ItemID, record.UserID,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("insert shopping record: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID; nil si no existe.
func (r *ShoppingRecordRepo) GetByID(id int64) (*entity.ShoppingRecord, error) {
	query := `
		SELECT id, quantity, price, store, bought_at, item_id, user_id
		FROM shopping_records WHERE id = $1`
	var rec entity.ShoppingRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.Quantity, &rec.Price, &rec.Store, &rec.BoughtAt, &rec.ItemID, &rec.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shopping record by id: %w", err)
	}
	return &rec, nil
}

// ListByUser lista las compras del usuario, más reciente primero.
func (r *ShoppingRecordRepo) ListByUser(userID string) ([]*entity.ShoppingRecord, error) {
	query := `
		SELECT id, quantity, price, store, bought_at, item_id, user_id
		FROM shopping_records WHERE user_id = $1 ORDER BY bought_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list shopping records: %w", err)
	}
	defer rows.Close()
	var list []*entity.ShoppingRecord
	for rows.Next() {
		var rec entity.ShoppingRecord
		if err := rows.Scan(&rec.ID, &rec.Quantity, &rec.Price, &rec.Store, &rec.BoughtAt, &rec.ItemID, &rec.UserID); err != nil {
			return nil, fmt.Errorf("scan shopping record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Update actualiza una compra.
func (r *ShoppingRecordRepo) Update(record *entity.ShoppingRecord) error {
	query := `
		UPDATE shopping_records SET quantity = $2, price = $3, store = $4, bought_at = $5, item_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.Quantity, record.Price, record.Store, record.BoughtAt, record.ItemID,
	)
	if err != nil {
		return fmt.Errorf("update shopping record: %w", err)
	}
	return nil
}

// Delete elimina una compra por ID.
func (r *ShoppingRecordRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shopping_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shopping record: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stockypocky/sp-api/internal/domain/entity"
	"github.com/stockypocky/sp-api/internal/domain/repository"
)

var _ repository.ShoppingListRepository = (*ShoppingListRepo)(nil)

// ShoppingListRepo implementación de ShoppingListRepository sobre PostgreSQL
// (usable con pool o tx).
type ShoppingListRepo struct {
	q Querier
}

// NewShoppingListRepository construye el adaptador de la lista de compras. Pasar pool o tx (Querier).
func NewShoppingListRepository(q Querier) *ShoppingListRepo {
	return &ShoppingListRepo{q: q}
}

// Create persiste una entrada y asigna ID y added_at.
func (r *ShoppingListRepo) Create(entry *entity.ShoppingListEntry) error {
	query := `
		INSERT INTO shopping_list (quantity, checked, item_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, added_at`
	err := r.q.QueryRow(context.Background(), query,
		entry.Quantity, entry.Checked, entry.ItemID, entry.UserID,
	).Scan(&entry.ID, &entry.AddedAt)
	if err != nil {
		return fmt.Errorf("insert shopping list entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID; nil si no existe.
func (r *ShoppingListRepo) GetByID(id int64) (*entity.ShoppingListEntry, error) {
	query := `
		SELECT id, quantity, checked, item_id, user_id, added_at
		FROM shopping_list WHERE id = $1`
	var e entity.ShoppingListEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Quantity, &e.Checked, &e.ItemID, &e.UserID, &e.AddedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shopping list entry by id: %w", err)
	}
	return &e, nil
}

// GetByItem obtiene la entrada pendiente (sin marcar) de un (user, item); nil si no hay.
func (r *ShoppingListRepo) GetByItem(userID string, itemID int64) (*entity.ShoppingListEntry, error) {
	query := `
		SELECT id, quantity, checked, item_id, user_id, added_at
		FROM shopping_list WHERE user_id = $1 AND item_id = $2 AND checked = FALSE
		ORDER BY added_at LIMIT 1`
	var e entity.ShoppingListEntry
	err := r.q.QueryRow(context.Background(), query, userID, itemID).Scan(
		&e.ID, &e.Quantity, &e.Checked, &e.ItemID, &e.UserID, &e.AddedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shopping list entry by item: %w", err)
	}
	return &e, nil
}

// ListByUser lista las entradas del usuario, más antigua primero.
func (r *ShoppingListRepo) ListByUser(userID string) ([]*entity.ShoppingListEntry, error) {
	query := `
		SELECT id, quantity, checked, item_id, user_id, added_at
		FROM shopping_list WHERE user_id = $1 ORDER BY added_at, id`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list shopping list: %w", err)
	}
	defer rows.Close()
	var list []*entity.ShoppingListEntry
	for rows.Next() {
		var e entity.ShoppingListEntry
		if err := rows.Scan(&e.ID, &e.Quantity, &e.Checked, &e.ItemID, &e.UserID, &e.AddedAt); err != nil {
			return nil, fmt.Errorf("scan shopping list entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza cantidad y check de una entrada.
func (r *ShoppingListRepo) Update(entry *entity.ShoppingListEntry) error {
	query := `
		UPDATE shopping_list SET quantity = $2, checked = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, entry.ID, entry.Quantity, entry.Checked)
	if err != nil {
		return fmt.Errorf("update shopping list entry: %w", err)
	}
	return nil
}

// Delete elimina una entrada por ID.
func (r *ShoppingListRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shopping_list WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shopping list entry: %w", err)
	}
	return nil
}

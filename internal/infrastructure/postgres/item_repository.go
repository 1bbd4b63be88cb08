package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockypocky/sp-api/internal/domain/entity"
	"github.com/stockypocky/sp-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository construye el adaptador de persistencia para items.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

// Create persiste un item y asigna su ID.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (name, brand, unit, image_url, default_quantity, notes, is_favorite, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		item.Name, item.Brand, item.Unit, item.ImageURL, item.DefaultQuantity,
		item.Notes, item.IsFavorite, item.UserID, item.CategoryID,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID; nil si no existe.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	query := `
		SELECT id, name, brand, unit, image_url, default_quantity, notes, is_favorite, user_id, category_id
		FROM items WHERE id = $1`
	var i entity.Item
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Name, &i.Brand, &i.Unit, &i.ImageURL, &i.DefaultQuantity,
		&i.Notes, &i.IsFavorite, &i.UserID, &i.CategoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return &i, nil
}

// List lista los items del usuario; categoryID e isFavorite filtran cuando no son nil.
func (r *ItemRepo) List(userID string, categoryID *int64, isFavorite *bool) ([]*entity.Item, error) {
	query := `
		SELECT id, name, brand, unit, image_url, default_quantity, notes, is_favorite, user_id, category_id
		FROM items WHERE user_id = $1`
	args := []any{userID}
	if categoryID != nil {
		args = append(args, *categoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if isFavorite != nil {
		args = append(args, *isFavorite)
		query += fmt.Sprintf(" AND is_favorite = $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Brand, &i.Unit, &i.ImageURL, &i.DefaultQuantity,
			&i.Notes, &i.IsFavorite, &i.UserID, &i.CategoryID,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza un item.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, brand = $3, unit = $4, image_url = $5, default_quantity = $6,
			notes = $7, is_favorite = $8, category_id = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Name, item.Brand, item.Unit, item.ImageURL, item.DefaultQuantity,
		item.Notes, item.IsFavorite, item.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un item por ID (stock, historial, lista y compras caen en cascada).
func (r *ItemRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

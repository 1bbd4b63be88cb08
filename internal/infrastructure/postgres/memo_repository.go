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

var _ repository.MemoRepository = (*MemoRepo)(nil)

// MemoRepo implementación del puerto MemoRepository sobre PostgreSQL.
// Tags se guarda como text[].
type MemoRepo struct {
	pool *pgxpool.Pool
}

// NewMemoRepository construye el adaptador de persistencia para memos.
func NewMemoRepository(pool *pgxpool.Pool) *MemoRepo {
	return &MemoRepo{pool: pool}
}

// Create persiste un memo y asigna su ID.
func (r *MemoRepo) Create(memo *entity.Memo) error {
	query := `
		INSERT INTO memos (title, content, type, is_done, tags, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		memo.Title, memo.Content, memo.Type, memo.IsDone, memo.Tags, memo.UserID,
	).Scan(&memo.ID)
	if err != nil {
		return fmt.Errorf("insert memo: %w", err)
	}
	return nil
}

// GetByID obtiene un memo por ID; nil si no existe.
func (r *MemoRepo) GetByID(id int64) (*entity.Memo, error) {
	query := `
		SELECT id, title, content, type, is_done, tags, user_id
		FROM memos WHERE id = $1`
	var m entity.Memo
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Title, &m.Content, &m.Type, &m.IsDone, &m.Tags, &m.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get memo by id: %w", err)
	}
	return &m, nil
}

// ListByUser lista los memos del usuario.
func (r *MemoRepo) ListByUser(userID string) ([]*entity.Memo, error) {
	query := `
		SELECT id, title, content, type, is_done, tags, user_id
		FROM memos WHERE user_id = $1 ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list memos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Memo
	for rows.Next() {
		var m entity.Memo
		if err := rows.Scan(&m.ID, &m.Title, &m.Content, &m.Type, &m.IsDone, &m.Tags, &m.UserID); err != nil {
			return nil, fmt.Errorf("scan memo: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un memo.
func (r *MemoRepo) Update(memo *entity.Memo) error {
	query := `
		UPDATE memos SET title = $2, content = $3, type = $4, is_done = $5, tags = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		memo.ID, memo.Title, memo.Content, memo.Type, memo.IsDone, memo.Tags,
	)
	if err != nil {
		return fmt.Errorf("update memo: %w", err)
	}
	return nil
}

// Delete elimina un memo por ID.
func (r *MemoRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM memos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete memo: %w", err)
	}
	return nil
}

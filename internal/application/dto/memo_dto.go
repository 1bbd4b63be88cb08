package dto

// CreateMemoRequest body para crear/actualizar un memo.
type CreateMemoRequest struct {
	Title   string   `json:"title" validate:"required,min=1"`
	Content string   `json:"content"`
	Type    string   `json:"type"`
	IsDone  bool     `json:"is_done"`
	Tags    []string `json:"tags"`
}

// MemoResponse salida de un memo.
type MemoResponse struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Type    string   `json:"type"`
	IsDone  bool     `json:"is_done"`
	Tags    []string `json:"tags"`
	UserID  string   `json:"user_id"`
}

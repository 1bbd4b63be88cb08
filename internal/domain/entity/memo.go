package entity

// Memo representa una nota libre del usuario (lista de pendientes, recordatorios).
type Memo struct {
	ID      int64
	Title   string
	Content string
	Type    string
	IsDone  bool
	Tags    []string // text[] en PostgreSQL
	UserID  string
}

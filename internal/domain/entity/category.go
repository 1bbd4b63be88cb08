package entity

// Category representa una categoría de artículos del hogar.
type Category struct {
	ID     int64
	Name   string
	Icon   string
	UserID string
}

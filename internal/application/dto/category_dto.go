package dto

// CreateCategoryRequest body para POST /api/v1/categories.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1"`
	Icon string `json:"icon"`
}

// UpdateCategoryRequest body para PUT /api/v1/categories/:id; solo sobrescribe lo enviado.
type UpdateCategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	UserID string `json:"user_id"`
}

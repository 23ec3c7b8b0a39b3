package dto

// CategoryRequest entrada para crear o reemplazar una categoría (PUT es reemplazo completo).
type CategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

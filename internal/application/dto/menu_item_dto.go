package dto

import "github.com/shopspring/decimal"

// CreateMenuItemRequest entrada para crear un ítem del menú.
// Price y CategoryID son obligatorios; IsAvailable por defecto es true.
type CreateMenuItemRequest struct {
	Name          string           `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	ImageURL      *string          `json:"image_url"`
	IsAvailable   *bool            `json:"is_available"`
	CategoryID    *int64           `json:"category_id"`
	IngredientIDs []int64          `json:"ingredient_ids"`
}

// UpdateMenuItemRequest actualización parcial: solo cambian los campos presentes.
// null limpia description/image_url; ingredient_ids null equivale a ausente.
type UpdateMenuItemRequest struct {
	Name          Optional[string]          `json:"name"`
	Description   Optional[string]          `json:"description"`
	Price         Optional[decimal.Decimal] `json:"price"`
	ImageURL      Optional[string]          `json:"image_url"`
	IsAvailable   Optional[bool]            `json:"is_available"`
	CategoryID    Optional[int64]           `json:"category_id"`
	IngredientIDs Optional[[]int64]         `json:"ingredient_ids"`
}

// MenuItemResponse salida de un ítem con su categoría e ingredientes resueltos.
type MenuItemResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description *string              `json:"description"`
	Price       decimal.Decimal      `json:"price"`
	ImageURL    *string              `json:"image_url"`
	IsAvailable bool                 `json:"is_available"`
	CategoryID  int64                `json:"category_id"`
	Category    *CategoryResponse    `json:"category"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

// MenuItemFilter filtros del listado de ítems (GET /menu-items).
type MenuItemFilter struct {
	CategoryID    int64
	AvailableOnly bool
}

package dto

// IngredientRequest entrada para crear o reemplazar un ingrediente.
type IngredientRequest struct {
	Name       string `json:"name"`
	IsAllergen bool   `json:"is_allergen"`
}

// IngredientResponse salida de un ingrediente.
type IngredientResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsAllergen bool   `json:"is_allergen"`
}

package entity

// Ingredient componente con nombre que pueden usar los ítems del menú.
type Ingredient struct {
	ID         int64
	Name       string // único
	IsAllergen bool
}

package entity

import "github.com/shopspring/decimal"

// MenuItem plato o bebida que se puede pedir.
// IngredientIDs refleja la tabla de asociación menu_item_ingredients (sin propiedad).
type MenuItem struct {
	ID            int64
	Name          string
	Description   *string
	Price         decimal.Decimal // >= 0
	ImageURL      *string
	IsAvailable   bool
	CategoryID    int64
	IngredientIDs []int64
}

package repository

import (
	"context"

	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para Ingredient (DIP).
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	GetByID(ctx context.Context, id int64) (*entity.Ingredient, error)
	// GetByIDs devuelve solo los que existen; el llamador compara cantidades.
	GetByIDs(ctx context.Context, ids []int64) ([]*entity.Ingredient, error)
	Update(ctx context.Context, ingredient *entity.Ingredient) error
	List(ctx context.Context, offset, limit int) ([]*entity.Ingredient, error)
	Delete(ctx context.Context, id int64) error
}

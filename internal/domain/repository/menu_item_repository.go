package repository

import (
	"context"

	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
)

// MenuItemFilter filtros conjuntivos del listado de ítems. CategoryID 0 = sin filtro.
type MenuItemFilter struct {
	CategoryID    int64
	AvailableOnly bool
}

// MenuItemRepository define el puerto de persistencia para MenuItem (DIP).
// Create y Update solo tocan la fila; los ingredientes se manejan con SetIngredients.
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id int64) (*entity.MenuItem, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	List(ctx context.Context, filter MenuItemFilter, offset, limit int) ([]*entity.MenuItem, error)
	Delete(ctx context.Context, id int64) error
	// SetIngredients reemplaza el conjunto completo de ingredientes del ítem.
	SetIngredients(ctx context.Context, menuItemID int64, ingredientIDs []int64) error
	// IngredientIDs devuelve, por ítem, los IDs de ingredientes asociados (orden ascendente).
	IngredientIDs(ctx context.Context, menuItemIDs []int64) (map[int64][]int64, error)
}

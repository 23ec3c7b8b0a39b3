package repository

import (
	"context"

	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID devuelve (nil, nil) si no existe; Update y Delete devuelven domain.ErrNotFound.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, offset, limit int) ([]*entity.Category, error)
	Delete(ctx context.Context, id int64) error
}

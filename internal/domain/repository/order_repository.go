package repository

import (
	"context"

	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus OrderItems (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	// Update modifica table_number, customer_name y status; nunca created_at.
	Update(ctx context.Context, order *entity.Order) error
	// List ordena por created_at descendente. status vacío = sin filtro.
	List(ctx context.Context, status entity.OrderStatus, offset, limit int) ([]*entity.Order, error)
	// Delete elimina el pedido y, en cascada, sus líneas.
	Delete(ctx context.Context, id int64) error
	CreateItem(ctx context.Context, item *entity.OrderItem) error
	ListItemsByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]*entity.OrderItem, error)
}

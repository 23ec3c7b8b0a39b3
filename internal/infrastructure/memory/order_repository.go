package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/restaurant-menu-api/internal/domain"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación en memoria de OrderRepository.
type OrderRepo struct {
	s  *Store
	mu locker
}

// NewOrderRepository construye el repositorio sobre s.
func NewOrderRepository(s *Store) *OrderRepo { return &OrderRepo{s: s, mu: &s.mu} }

func (r *OrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s.data.nextOrderID++
	order.ID = r.s.data.nextOrderID
	r.s.data.orders[order.ID] = copyOrder(*order)
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.s.data.orders[id]
	if !ok {
		return nil, nil
	}
	out := copyOrder(o)
	return &out, nil
}

// Update modifica mesa, cliente y estado. created_at se conserva.
func (r *OrderRepo) Update(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.s.data.orders[order.ID]
	if !ok {
		return domain.ErrNotFound
	}
	current.TableNumber = copyInt(order.TableNumber)
	current.CustomerName = copyString(order.CustomerName)
	current.Status = order.Status
	r.s.data.orders[order.ID] = current
	return nil
}

// List ordena del más reciente al más antiguo, con id descendente como desempate.
func (r *OrderRepo) List(_ context.Context, status entity.OrderStatus, offset, limit int) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []entity.Order
	for _, o := range r.s.data.orders {
		if status != "" && o.Status != status {
			continue
		}
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	var list []*entity.Order
	for _, o := range window(all, offset, limit) {
		out := copyOrder(o)
		list = append(list, &out)
	}
	return list, nil
}

// Delete elimina el pedido junto con sus líneas.
func (r *OrderRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.data.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.data.orders, id)
	for itemID, it := range r.s.data.orderItems {
		if it.OrderID == id {
			delete(r.s.data.orderItems, itemID)
		}
	}
	return nil
}

// CreateItem guarda una línea. domain.ErrConflict si el pedido o el ítem del menú no existen.
func (r *OrderRepo) CreateItem(_ context.Context, item *entity.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.data.orders[item.OrderID]; !ok {
		return domain.ErrConflict
	}
	if _, ok := r.s.data.menuItems[item.MenuItemID]; !ok {
		return domain.ErrConflict
	}
	r.s.data.nextOrderItemID++
	item.ID = r.s.data.nextOrderItemID
	it := *item
	it.Notes = copyString(item.Notes)
	r.s.data.orderItems[item.ID] = it
	return nil
}

// ListItemsByOrderIDs devuelve las líneas de cada pedido en orden de creación.
func (r *OrderRepo) ListItemsByOrderIDs(_ context.Context, orderIDs []int64) (map[int64][]*entity.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[int64][]*entity.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}
	wanted := make(map[int64]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	var ids []int64
	for id, it := range r.s.data.orderItems {
		if wanted[it.OrderID] {
			ids = append(ids, id)
		}
	}
	for _, id := range sortedIDs(ids) {
		it := r.s.data.orderItems[id]
		it.Notes = copyString(it.Notes)
		out[it.OrderID] = append(out[it.OrderID], &it)
	}
	return out, nil
}

func copyOrder(o entity.Order) entity.Order {
	o.TableNumber = copyInt(o.TableNumber)
	o.CustomerName = copyString(o.CustomerName)
	return o
}

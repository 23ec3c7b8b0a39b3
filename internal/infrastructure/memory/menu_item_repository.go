package memory

import (
	"context"

	"github.com/jhoicas/restaurant-menu-api/internal/domain"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación en memoria de MenuItemRepository.
type MenuItemRepo struct {
	s  *Store
	mu locker
}

// NewMenuItemRepository construye el repositorio sobre s.
func NewMenuItemRepository(s *Store) *MenuItemRepo { return &MenuItemRepo{s: s, mu: &s.mu} }

// Create guarda la fila sin ingredientes. domain.ErrConflict si la categoría no existe.
func (r *MenuItemRepo) Create(_ context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.data.categories[item.CategoryID]; !ok {
		return domain.ErrConflict
	}
	r.s.data.nextMenuItemID++
	item.ID = r.s.data.nextMenuItemID
	r.s.data.menuItems[item.ID] = copyMenuItem(*item)
	return nil
}

func (r *MenuItemRepo) GetByID(_ context.Context, id int64) (*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.s.data.menuItems[id]
	if !ok {
		return nil, nil
	}
	out := copyMenuItem(m)
	return &out, nil
}

func (r *MenuItemRepo) GetByIDs(_ context.Context, ids []int64) ([]*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.MenuItem
	for _, id := range sortedIDs(ids) {
		if m, ok := r.s.data.menuItems[id]; ok {
			out := copyMenuItem(m)
			list = append(list, &out)
		}
	}
	return list, nil
}

func (r *MenuItemRepo) Update(_ context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.data.menuItems[item.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.data.categories[item.CategoryID]; !ok {
		return domain.ErrConflict
	}
	r.s.data.menuItems[item.ID] = copyMenuItem(*item)
	return nil
}

func (r *MenuItemRepo) List(_ context.Context, filter repository.MenuItemFilter, offset, limit int) ([]*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []int64
	for id, m := range r.s.data.menuItems {
		if filter.CategoryID != 0 && m.CategoryID != filter.CategoryID {
			continue
		}
		if filter.AvailableOnly && !m.IsAvailable {
			continue
		}
		ids = append(ids, id)
	}
	var list []*entity.MenuItem
	for _, id := range window(sortedIDs(ids), offset, limit) {
		out := copyMenuItem(r.s.data.menuItems[id])
		list = append(list, &out)
	}
	return list, nil
}

// Delete aplica RESTRICT frente a líneas de pedido y CASCADE sobre sus ingredientes.
func (r *MenuItemRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.data.menuItems[id]; !ok {
		return domain.ErrNotFound
	}
	for _, it := range r.s.data.orderItems {
		if it.MenuItemID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.data.menuItems, id)
	delete(r.s.data.menuItemIngredients, id)
	return nil
}

// SetIngredients reemplaza el conjunto de ingredientes del ítem.
// domain.ErrConflict si el ítem o alguno de los ingredientes no existe.
func (r *MenuItemRepo) SetIngredients(_ context.Context, menuItemID int64, ingredientIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.data.menuItems[menuItemID]; !ok {
		return domain.ErrConflict
	}
	ids := sortedIDs(ingredientIDs)
	for _, id := range ids {
		if _, ok := r.s.data.ingredients[id]; !ok {
			return domain.ErrConflict
		}
	}
	if len(ids) == 0 {
		delete(r.s.data.menuItemIngredients, menuItemID)
		return nil
	}
	r.s.data.menuItemIngredients[menuItemID] = ids
	return nil
}

func (r *MenuItemRepo) IngredientIDs(_ context.Context, menuItemIDs []int64) (map[int64][]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[int64][]int64, len(menuItemIDs))
	for _, id := range menuItemIDs {
		if ids := r.s.data.menuItemIngredients[id]; len(ids) > 0 {
			out[id] = append([]int64(nil), ids...)
		}
	}
	return out, nil
}

func copyMenuItem(m entity.MenuItem) entity.MenuItem {
	m.Description = copyString(m.Description)
	m.ImageURL = copyString(m.ImageURL)
	m.IngredientIDs = nil
	return m
}

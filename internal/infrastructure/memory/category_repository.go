package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/restaurant-menu-api/internal/domain"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct {
	s  *Store
	mu locker
}

// NewCategoryRepository construye el repositorio sobre s.
func NewCategoryRepository(s *Store) *CategoryRepo { return &CategoryRepo{s: s, mu: &s.mu} }

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.s.data.categories {
		if c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.data.nextCategoryID++
	category.ID = r.s.data.nextCategoryID
	r.s.data.categories[category.ID] = copyCategory(*category)
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.s.data.categories[id]
	if !ok {
		return nil, nil
	}
	out := copyCategory(c)
	return &out, nil
}

func (r *CategoryRepo) GetByIDs(_ context.Context, ids []int64) ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Category
	for _, id := range sortedIDs(ids) {
		if c, ok := r.s.data.categories[id]; ok {
			out := copyCategory(c)
			list = append(list, &out)
		}
	}
	return list, nil
}

func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.data.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, c := range r.s.data.categories {
		if id != category.ID && c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.data.categories[category.ID] = copyCategory(*category)
	return nil
}

func (r *CategoryRepo) List(_ context.Context, offset, limit int) ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.s.data.categories))
	for id := range r.s.data.categories {
		ids = append(ids, id)
	}
	var list []*entity.Category
	for _, id := range window(sortedIDs(ids), offset, limit) {
		out := copyCategory(r.s.data.categories[id])
		list = append(list, &out)
	}
	return list, nil
}

// Delete aplica RESTRICT: no se borra una categoría usada por algún ítem del menú.
func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.data.categories[id]; !ok {
		return domain.ErrNotFound
	}
	for _, m := range r.s.data.menuItems {
		if m.CategoryID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.data.categories, id)
	return nil
}

func copyCategory(c entity.Category) entity.Category {
	c.Description = copyString(c.Description)
	return c
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyInt(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}

// sortedIDs devuelve una copia ordenada y sin duplicados.
func sortedIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

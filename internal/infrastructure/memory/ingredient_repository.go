package memory

import (
	"context"

	"github.com/jhoicas/restaurant-menu-api/internal/domain"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación en memoria de IngredientRepository.
type IngredientRepo struct {
	s  *Store
	mu locker
}

// NewIngredientRepository construye el repositorio sobre s.
func NewIngredientRepository(s *Store) *IngredientRepo { return &IngredientRepo{s: s, mu: &s.mu} }

func (r *IngredientRepo) Create(_ context.Context, ingredient *entity.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.s.data.ingredients {
		if i.Name == ingredient.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.data.nextIngredientID++
	ingredient.ID = r.s.data.nextIngredientID
	r.s.data.ingredients[ingredient.ID] = *ingredient
	return nil
}

func (r *IngredientRepo) GetByID(_ context.Context, id int64) (*entity.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.s.data.ingredients[id]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

func (r *IngredientRepo) GetByIDs(_ context.Context, ids []int64) ([]*entity.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Ingredient
	for _, id := range sortedIDs(ids) {
		if i, ok := r.s.data.ingredients[id]; ok {
			i := i
			list = append(list, &i)
		}
	}
	return list, nil
}

func (r *IngredientRepo) Update(_ context.Context, ingredient *entity.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.data.ingredients[ingredient.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, i := range r.s.data.ingredients {
		if id != ingredient.ID && i.Name == ingredient.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.data.ingredients[ingredient.ID] = *ingredient
	return nil
}

func (r *IngredientRepo) List(_ context.Context, offset, limit int) ([]*entity.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.s.data.ingredients))
	for id := range r.s.data.ingredients {
		ids = append(ids, id)
	}
	var list []*entity.Ingredient
	for _, id := range window(sortedIDs(ids), offset, limit) {
		i := r.s.data.ingredients[id]
		list = append(list, &i)
	}
	return list, nil
}

// Delete borra el ingrediente y sus asociaciones (CASCADE).
func (r *IngredientRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.data.ingredients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.data.ingredients, id)
	for itemID, ids := range r.s.data.menuItemIngredients {
		kept := ids[:0]
		for _, ingID := range ids {
			if ingID != id {
				kept = append(kept, ingID)
			}
		}
		r.s.data.menuItemIngredients[itemID] = kept
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/restaurant-menu-api/internal/application/dto"
	"github.com/jhoicas/restaurant-menu-api/internal/domain"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/repository"
)

// IngredientUseCase casos de uso CRUD para ingredientes.
type IngredientUseCase struct {
	repo repository.IngredientRepository
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

// Create crea un ingrediente. Nombre duplicado → domain.ErrDuplicate.
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.InvalidInput("name is required")
	}
	ingredient := &entity.Ingredient{Name: name, IsAllergen: in.IsAllergen}
	if err := uc.repo.Create(ctx, ingredient); err != nil {
		return nil, ingredientWriteError(err, name)
	}
	return toIngredientResponse(ingredient), nil
}

// GetByID obtiene un ingrediente por ID.
func (uc *IngredientUseCase) GetByID(ctx context.Context, id int64) (*dto.IngredientResponse, error) {
	ingredient, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, domain.NotFound("Ingredient not found")
	}
	return toIngredientResponse(ingredient), nil
}

// Update reemplaza ambos campos (todo o nada).
func (uc *IngredientUseCase) Update(ctx context.Context, id int64, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.InvalidInput("name is required")
	}
	ingredient := &entity.Ingredient{ID: id, Name: name, IsAllergen: in.IsAllergen}
	if err := uc.repo.Update(ctx, ingredient); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Ingredient not found")
		}
		return nil, ingredientWriteError(err, name)
	}
	return toIngredientResponse(ingredient), nil
}

// List lista ingredientes en orden de inserción.
func (uc *IngredientUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.IngredientResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IngredientResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toIngredientResponse(i))
	}
	return items, nil
}

// Delete elimina un ingrediente; sus asociaciones con ítems del menú se borran en cascada.
func (uc *IngredientUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound("Ingredient not found")
		}
		return err
	}
	return nil
}

func ingredientWriteError(err error, name string) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.Duplicate(fmt.Sprintf("Ingredient '%s' already exists", name))
	}
	return err
}

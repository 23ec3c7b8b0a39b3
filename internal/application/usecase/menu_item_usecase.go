package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-menu-api/internal/application/dto"
	"github.com/jhoicas/restaurant-menu-api/internal/domain"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/repository"
)

const (
	msgCategoryNotFound    = "Category not found"
	msgIngredientsNotFound = "One or more ingredients not found"
)

// MenuItemUseCase casos de uso para ítems del menú: valida categoría e ingredientes
// antes de escribir y mantiene el conjunto de ingredientes del ítem.
type MenuItemUseCase struct {
	repos    Repos
	txRunner TxRunner
	mode     WriteMode
}

// NewMenuItemUseCase construye el caso de uso.
func NewMenuItemUseCase(repos Repos, txRunner TxRunner, mode WriteMode) *MenuItemUseCase {
	return &MenuItemUseCase{repos: repos, txRunner: txRunner, mode: mode}
}

// Create valida la categoría, crea el ítem y le asocia los ingredientes.
// Si algún ingrediente no existe no queda ninguna fila del ítem.
func (uc *MenuItemUseCase) Create(ctx context.Context, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.InvalidInput("name is required")
	}
	if in.Price == nil {
		return nil, domain.InvalidInput("price is required")
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.InvalidInput("price must be greater than or equal to 0")
	}
	if in.CategoryID == nil {
		return nil, domain.InvalidInput("category_id is required")
	}

	// 1) Categoría
	category, err := uc.repos.Categories.GetByID(ctx, *in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.InvalidInput(msgCategoryNotFound)
	}

	item := &entity.MenuItem{
		Name:        name,
		Description: in.Description,
		Price:       *in.Price,
		ImageURL:    in.ImageURL,
		IsAvailable: true,
		CategoryID:  category.ID,
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	ingredientIDs := in.IngredientIDs

	// 2) Fila + ingredientes
	if uc.mode == WriteModeCompensate {
		err = uc.createCompensating(ctx, item, ingredientIDs)
	} else {
		err = uc.txRunner.Run(ctx, func(repos Repos) error {
			if err := checkIngredients(ctx, repos.Ingredients, ingredientIDs); err != nil {
				return err
			}
			if err := repos.MenuItems.Create(ctx, item); err != nil {
				return err
			}
			if len(ingredientIDs) == 0 {
				return nil
			}
			return repos.MenuItems.SetIngredients(ctx, item.ID, ingredientIDs)
		})
	}
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.InvalidInput(msgCategoryNotFound)
		}
		return nil, err
	}
	return uc.GetByID(ctx, item.ID)
}

// createCompensating (WRITE_MODE=compensate): la fila se confirma primero y,
// si los ingredientes no cuadran, se borra con un DELETE compensatorio.
func (uc *MenuItemUseCase) createCompensating(ctx context.Context, item *entity.MenuItem, ingredientIDs []int64) error {
	if err := uc.repos.MenuItems.Create(ctx, item); err != nil {
		return err
	}
	if len(ingredientIDs) == 0 {
		return nil
	}
	if err := checkIngredients(ctx, uc.repos.Ingredients, ingredientIDs); err != nil {
		if derr := uc.repos.MenuItems.Delete(ctx, item.ID); derr != nil {
			return fmt.Errorf("compensate menu item %d: %w", item.ID, derr)
		}
		return err
	}
	if err := uc.repos.MenuItems.SetIngredients(ctx, item.ID, ingredientIDs); err != nil {
		if derr := uc.repos.MenuItems.Delete(ctx, item.ID); derr != nil {
			return fmt.Errorf("compensate menu item %d: %w", item.ID, derr)
		}
		return err
	}
	return nil
}

// GetByID obtiene un ítem con su categoría e ingredientes.
func (uc *MenuItemUseCase) GetByID(ctx context.Context, id int64) (*dto.MenuItemResponse, error) {
	item, err := uc.repos.MenuItems.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("Menu item not found")
	}
	out, err := graphLoader{repos: uc.repos}.menuItems(ctx, []*entity.MenuItem{item})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// List lista ítems aplicando los filtros de forma conjuntiva.
func (uc *MenuItemUseCase) List(ctx context.Context, filter dto.MenuItemFilter, page dto.PageRequest) ([]dto.MenuItemResponse, error) {
	page.DefaultPage()
	list, err := uc.repos.MenuItems.List(ctx, repository.MenuItemFilter{
		CategoryID:    filter.CategoryID,
		AvailableOnly: filter.AvailableOnly,
	}, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}
	return graphLoader{repos: uc.repos}.menuItems(ctx, list)
}

// Update aplica una actualización parcial. Si llega category_id o ingredient_ids
// se validan antes de escribir; ingredient_ids reemplaza el conjunto completo.
func (uc *MenuItemUseCase) Update(ctx context.Context, id int64, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.repos.MenuItems.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("Menu item not found")
	}

	if in.Name.Set {
		name := strings.TrimSpace(in.Name.Value)
		if in.Name.Null || name == "" {
			return nil, domain.InvalidInput("name cannot be empty")
		}
		item.Name = name
	}
	if in.Description.Set {
		item.Description = in.Description.Ptr()
	}
	if in.Price.Set {
		if in.Price.Null {
			return nil, domain.InvalidInput("price cannot be null")
		}
		if in.Price.Value.LessThan(decimal.Zero) {
			return nil, domain.InvalidInput("price must be greater than or equal to 0")
		}
		item.Price = in.Price.Value
	}
	if in.ImageURL.Set {
		item.ImageURL = in.ImageURL.Ptr()
	}
	if in.IsAvailable.Set {
		if in.IsAvailable.Null {
			return nil, domain.InvalidInput("is_available cannot be null")
		}
		item.IsAvailable = in.IsAvailable.Value
	}
	if in.CategoryID.Set {
		if in.CategoryID.Null {
			return nil, domain.InvalidInput("category_id cannot be null")
		}
		category, err := uc.repos.Categories.GetByID(ctx, in.CategoryID.Value)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.InvalidInput(msgCategoryNotFound)
		}
		item.CategoryID = category.ID
	}

	replaceIngredients := in.IngredientIDs.HasValue()
	var ingredientIDs []int64
	if replaceIngredients {
		ingredientIDs = in.IngredientIDs.Value
		if err := checkIngredients(ctx, uc.repos.Ingredients, ingredientIDs); err != nil {
			return nil, err
		}
	}

	write := func(repos Repos) error {
		if err := repos.MenuItems.Update(ctx, item); err != nil {
			return err
		}
		if !replaceIngredients {
			return nil
		}
		return repos.MenuItems.SetIngredients(ctx, item.ID, ingredientIDs)
	}
	if uc.mode == WriteModeCompensate {
		err = write(uc.repos)
	} else {
		err = uc.txRunner.Run(ctx, write)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Menu item not found")
		}
		if errors.Is(err, domain.ErrConflict) {
			// La categoría o un ingrediente desapareció entre la validación y la escritura.
			return nil, domain.InvalidInput("Category or ingredient no longer exists")
		}
		return nil, err
	}
	return uc.GetByID(ctx, item.ID)
}

// Delete elimina un ítem. Si hay pedidos que lo referencian → domain.ErrConflict.
func (uc *MenuItemUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.repos.MenuItems.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.NotFound("Menu item not found")
	case errors.Is(err, domain.ErrConflict):
		return domain.Conflict("Menu item is referenced by orders; set is_available to false instead")
	}
	return err
}

// checkIngredients exige que existan todos los IDs pedidos (sin coincidencias parciales).
// Compara contra la longitud de la petición: un ID repetido cuenta como no encontrado.
func checkIngredients(ctx context.Context, repo repository.IngredientRepository, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return domain.InvalidInput(msgIngredientsNotFound)
	}
	return nil
}

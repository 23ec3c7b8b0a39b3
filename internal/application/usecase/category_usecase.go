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

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Nombre duplicado → domain.ErrDuplicate.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.InvalidInput("name is required")
	}
	category := &entity.Category{Name: name, Description: in.Description}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, categoryWriteError(err, name)
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound("Category not found")
	}
	return toCategoryResponse(category), nil
}

// Update reemplaza nombre y descripción (una descripción ausente queda en null).
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.InvalidInput("name is required")
	}
	category := &entity.Category{ID: id, Name: name, Description: in.Description}
	if err := uc.repo.Update(ctx, category); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Category not found")
		}
		return nil, categoryWriteError(err, name)
	}
	return toCategoryResponse(category), nil
}

// List lista categorías en orden de inserción.
func (uc *CategoryUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.CategoryResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Delete elimina una categoría. Si algún ítem del menú la usa → domain.ErrConflict.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.repo.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.NotFound("Category not found")
	case errors.Is(err, domain.ErrConflict):
		return domain.Conflict("Category is still used by menu items")
	}
	return err
}

func categoryWriteError(err error, name string) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.Duplicate(fmt.Sprintf("Category '%s' already exists", name))
	}
	return err
}

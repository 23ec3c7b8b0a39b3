package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurant-menu-api/internal/application/dto"
	"github.com/jhoicas/restaurant-menu-api/internal/application/usecase"
	"github.com/jhoicas/restaurant-menu-api/internal/infrastructure/memory"
)

// env agrupa los casos de uso sobre un almacén en memoria nuevo.
type env struct {
	categories  *usecase.CategoryUseCase
	ingredients *usecase.IngredientUseCase
	menuItems   *usecase.MenuItemUseCase
	orders      *usecase.OrderUseCase
}

var writeModes = []usecase.WriteMode{usecase.WriteModeAtomic, usecase.WriteModeCompensate}

func newEnv(t *testing.T, mode usecase.WriteMode) *env {
	t.Helper()
	store := memory.NewStore()
	repos := memory.NewRepos(store)
	tx := memory.NewTxRunner(store)
	return &env{
		categories:  usecase.NewCategoryUseCase(repos.Categories),
		ingredients: usecase.NewIngredientUseCase(repos.Ingredients),
		menuItems:   usecase.NewMenuItemUseCase(repos, tx, mode),
		orders:      usecase.NewOrderUseCase(repos, tx, mode),
	}
}

func (e *env) category(t *testing.T, name string) *dto.CategoryResponse {
	t.Helper()
	c, err := e.categories.Create(context.Background(), dto.CategoryRequest{Name: name})
	require.NoError(t, err)
	return c
}

func (e *env) ingredient(t *testing.T, name string, allergen bool) *dto.IngredientResponse {
	t.Helper()
	i, err := e.ingredients.Create(context.Background(), dto.IngredientRequest{Name: name, IsAllergen: allergen})
	require.NoError(t, err)
	return i
}

func (e *env) menuItem(t *testing.T, name, price string, categoryID int64, ingredientIDs ...int64) *dto.MenuItemResponse {
	t.Helper()
	p := decimal.RequireFromString(price)
	m, err := e.menuItems.Create(context.Background(), dto.CreateMenuItemRequest{
		Name:          name,
		Price:         &p,
		CategoryID:    &categoryID,
		IngredientIDs: ingredientIDs,
	})
	require.NoError(t, err)
	return m
}

func ptr[T any](v T) *T { return &v }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

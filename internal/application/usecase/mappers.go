package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurant-menu-api/internal/application/dto"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
)

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func toIngredientResponse(i *entity.Ingredient) *dto.IngredientResponse {
	if i == nil {
		return nil
	}
	return &dto.IngredientResponse{
		ID:         i.ID,
		Name:       i.Name,
		IsAllergen: i.IsAllergen,
	}
}

// graphLoader arma las respuestas anidadas (ítem → categoría + ingredientes,
// pedido → líneas → ítem) con consultas por lotes en lugar de una por fila.
type graphLoader struct {
	repos Repos
}

// menuItems resuelve categoría e ingredientes de cada ítem, conservando el orden de entrada.
func (l graphLoader) menuItems(ctx context.Context, items []*entity.MenuItem) ([]dto.MenuItemResponse, error) {
	out := make([]dto.MenuItemResponse, 0, len(items))
	if len(items) == 0 {
		return out, nil
	}

	itemIDs := make([]int64, 0, len(items))
	categoryIDs := make([]int64, 0, len(items))
	for _, it := range items {
		itemIDs = append(itemIDs, it.ID)
		categoryIDs = append(categoryIDs, it.CategoryID)
	}

	categories, err := l.repos.Categories.GetByIDs(ctx, uniqueIDs(categoryIDs))
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	categoryByID := make(map[int64]*entity.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}

	links, err := l.repos.MenuItems.IngredientIDs(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("load menu item ingredients: %w", err)
	}
	var allIngredientIDs []int64
	for _, ids := range links {
		allIngredientIDs = append(allIngredientIDs, ids...)
	}
	ingredientByID := make(map[int64]*entity.Ingredient)
	if len(allIngredientIDs) > 0 {
		ingredients, err := l.repos.Ingredients.GetByIDs(ctx, uniqueIDs(allIngredientIDs))
		if err != nil {
			return nil, fmt.Errorf("load ingredients: %w", err)
		}
		for _, i := range ingredients {
			ingredientByID[i.ID] = i
		}
	}

	for _, it := range items {
		resp := dto.MenuItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			ImageURL:    it.ImageURL,
			IsAvailable: it.IsAvailable,
			CategoryID:  it.CategoryID,
			Category:    toCategoryResponse(categoryByID[it.CategoryID]),
			Ingredients: make([]dto.IngredientResponse, 0, len(links[it.ID])),
		}
		for _, id := range links[it.ID] {
			if ing, ok := ingredientByID[id]; ok {
				resp.Ingredients = append(resp.Ingredients, *toIngredientResponse(ing))
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

// orders resuelve las líneas de cada pedido y el ítem del menú de cada línea.
func (l graphLoader) orders(ctx context.Context, orders []*entity.Order) ([]dto.OrderResponse, error) {
	out := make([]dto.OrderResponse, 0, len(orders))
	if len(orders) == 0 {
		return out, nil
	}

	orderIDs := make([]int64, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}
	itemsByOrder, err := l.repos.Orders.ListItemsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}

	var menuItemIDs []int64
	for _, items := range itemsByOrder {
		for _, it := range items {
			menuItemIDs = append(menuItemIDs, it.MenuItemID)
		}
	}
	menuByID := make(map[int64]dto.MenuItemResponse)
	if len(menuItemIDs) > 0 {
		menuItems, err := l.repos.MenuItems.GetByIDs(ctx, uniqueIDs(menuItemIDs))
		if err != nil {
			return nil, fmt.Errorf("load menu items: %w", err)
		}
		resolved, err := l.menuItems(ctx, menuItems)
		if err != nil {
			return nil, err
		}
		for _, m := range resolved {
			menuByID[m.ID] = m
		}
	}

	for _, o := range orders {
		resp := dto.OrderResponse{
			ID:           o.ID,
			TableNumber:  o.TableNumber,
			CustomerName: o.CustomerName,
			Status:       string(o.Status),
			CreatedAt:    o.CreatedAt,
			Items:        make([]dto.OrderItemResponse, 0, len(itemsByOrder[o.ID])),
		}
		for _, it := range itemsByOrder[o.ID] {
			line := dto.OrderItemResponse{
				ID:         it.ID,
				OrderID:    it.OrderID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				Notes:      it.Notes,
			}
			if m, ok := menuByID[it.MenuItemID]; ok {
				m := m
				line.MenuItem = &m
			}
			resp.Items = append(resp.Items, line)
		}
		out = append(out, resp)
	}
	return out, nil
}

// uniqueIDs elimina duplicados conservando el orden de primera aparición.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-menu-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC   *usecase.CategoryUseCase
	IngredientUC *usecase.IngredientUseCase
	MenuItemUC   *usecase.MenuItemUseCase
	OrderUC      *usecase.OrderUseCase
	ReceiptUC    *usecase.ReceiptUseCase
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	app.Get("/", Welcome)

	categories := app.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	ingredients := app.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Delete("/:id", ingredientHandler.Delete)

	menuItems := app.Group("/menu-items")
	menuItemHandler := NewMenuItemHandler(deps.MenuItemUC)
	menuItems.Post("/", menuItemHandler.Create)
	menuItems.Get("/", menuItemHandler.List)
	menuItems.Get("/:id", menuItemHandler.GetByID)
	menuItems.Put("/:id", menuItemHandler.Update)
	menuItems.Delete("/:id", menuItemHandler.Delete)

	orders := app.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	if deps.ReceiptUC != nil {
		orders.Get("/:id/receipt", orderHandler.Receipt)
	}
}

// Welcome godoc
// @Summary      Bienvenida
// @Description  Lista los recursos disponibles.
// @Tags         root
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func Welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to the Restaurant Menu API",
		"docs":    "/docs",
		"endpoints": fiber.Map{
			"categories":  "/categories",
			"menu_items":  "/menu-items",
			"ingredients": "/ingredients",
			"orders":      "/orders",
		},
	})
}

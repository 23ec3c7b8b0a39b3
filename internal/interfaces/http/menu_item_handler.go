package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-menu-api/internal/application/dto"
	"github.com/jhoicas/restaurant-menu-api/internal/application/usecase"
	"github.com/jhoicas/restaurant-menu-api/internal/domain"
)

// MenuItemHandler maneja las peticiones HTTP para los ítems del menú.
type MenuItemHandler struct {
	uc *usecase.MenuItemUseCase
}

// NewMenuItemHandler construye el handler.
func NewMenuItemHandler(uc *usecase.MenuItemUseCase) *MenuItemHandler {
	return &MenuItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ítem del menú
// @Description  Valida la categoría y los ingredientes antes de guardar.
// @Tags         menu-items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMenuItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /menu-items [post]
func (h *MenuItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ítems del menú
// @Tags         menu-items
// @Produce      json
// @Param        skip            query  int   false  "Registros a saltar"  default(0)
// @Param        limit           query  int   false  "Límite"              default(100)
// @Param        category_id     query  int   false  "Filtrar por categoría"
// @Param        available_only  query  bool  false  "Solo disponibles"    default(false)
// @Success      200  {array}   dto.MenuItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /menu-items [get]
func (h *MenuItemHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	var filter dto.MenuItemFilter
	if raw := c.Query("category_id"); raw != "" {
		filter.CategoryID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return writeError(c, domain.InvalidInput("category_id must be an integer"))
		}
	}
	if raw := c.Query("available_only"); raw != "" {
		filter.AvailableOnly, err = strconv.ParseBool(raw)
		if err != nil {
			return writeError(c, domain.InvalidInput("available_only must be a boolean"))
		}
	}
	out, err := h.uc.List(c.UserContext(), filter, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ítem del menú por ID
// @Tags         menu-items
// @Produce      json
// @Param        id   path  int  true  "ID del ítem"
// @Success      200  {object}  dto.MenuItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /menu-items/{id} [get]
func (h *MenuItemHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ítem del menú (parcial)
// @Description  Solo cambian los campos enviados. ingredient_ids reemplaza el conjunto completo.
// @Tags         menu-items
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del ítem"
// @Param        body  body  dto.UpdateMenuItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /menu-items/{id} [put]
func (h *MenuItemHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem del menú
// @Tags         menu-items
// @Param        id   path  int  true  "ID del ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /menu-items/{id} [delete]
func (h *MenuItemHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

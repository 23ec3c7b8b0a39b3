package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-menu-api/internal/application/dto"
	"github.com/jhoicas/restaurant-menu-api/internal/application/usecase"
)

// IngredientHandler maneja las peticiones HTTP para Ingredient.
type IngredientHandler struct {
	uc *usecase.IngredientUseCase
}

// NewIngredientHandler construye el handler.
func NewIngredientHandler(uc *usecase.IngredientUseCase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ingrediente
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IngredientRequest  true  "Datos del ingrediente"
// @Success      201   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /ingredients [post]
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var in dto.IngredientRequest
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
// @Summary      Listar ingredientes
// @Tags         ingredients
// @Produce      json
// @Param        skip   query  int  false  "Registros a saltar"  default(0)
// @Param        limit  query  int  false  "Límite"              default(100)
// @Success      200    {array}  dto.IngredientResponse
// @Router       /ingredients [get]
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ingrediente por ID
// @Tags         ingredients
// @Produce      json
// @Param        id   path  int  true  "ID del ingrediente"
// @Success      200  {object}  dto.IngredientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ingredients/{id} [get]
func (h *IngredientHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Reemplazar ingrediente
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del ingrediente"
// @Param        body  body  dto.IngredientRequest  true  "Datos del ingrediente"
// @Success      200   {object}  dto.IngredientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /ingredients/{id} [put]
func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.IngredientRequest
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
// @Summary      Eliminar ingrediente
// @Tags         ingredients
// @Param        id   path  int  true  "ID del ingrediente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

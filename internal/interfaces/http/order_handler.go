package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-menu-api/internal/application/dto"
	"github.com/jhoicas/restaurant-menu-api/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP para pedidos y su ticket PDF.
type OrderHandler struct {
	uc      *usecase.OrderUseCase
	receipt *usecase.ReceiptUseCase
}

// NewOrderHandler construye el handler. receipt puede ser nil si no se expone el ticket.
func NewOrderHandler(uc *usecase.OrderUseCase, receipt *usecase.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, receipt: receipt}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Cada línea debe referenciar un ítem existente y disponible. Falla con la primera línea inválida.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
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
// @Summary      Listar pedidos
// @Description  Del más reciente al más antiguo.
// @Tags         orders
// @Produce      json
// @Param        skip    query  int     false  "Registros a saltar"  default(0)
// @Param        limit   query  int     false  "Límite"              default(100)
// @Param        status  query  string  false  "pending, preparing, ready, delivered, cancelled"
// @Success      200  {array}   dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), c.Query("status"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar pedido (parcial)
// @Description  Mesa, cliente y estado. Las líneas no se modifican.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateOrderRequest
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
// @Summary      Eliminar pedido
// @Tags         orders
// @Param        id   path  int  true  "ID del pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Descargar ticket del pedido
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	pdfBytes, filename, err := h.receipt.DownloadReceiptPDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

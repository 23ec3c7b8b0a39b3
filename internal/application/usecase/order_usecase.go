package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/restaurant-menu-api/internal/application/dto"
	"github.com/jhoicas/restaurant-menu-api/internal/domain"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
)

// OrderUseCase casos de uso para pedidos. Las líneas solo se crean junto con el pedido
// y exigen que el ítem del menú exista y esté disponible en ese momento.
type OrderUseCase struct {
	repos    Repos
	txRunner TxRunner
	mode     WriteMode
	now      func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repos Repos, txRunner TxRunner, mode WriteMode) *OrderUseCase {
	return &OrderUseCase{
		repos:    repos,
		txRunner: txRunner,
		mode:     mode,
		now:      time.Now,
	}
}

// Create crea el pedido y sus líneas en el orden recibido. Falla en la primera línea
// inválida (fail-fast) y en ese caso el pedido no persiste.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	status := entity.OrderStatusPending
	if in.Status != nil {
		status = entity.OrderStatus(*in.Status)
		if !status.Valid() {
			return nil, invalidStatus(*in.Status)
		}
	}

	lines := make([]*entity.OrderItem, 0, len(in.Items))
	for i, it := range in.Items {
		if it.MenuItemID == nil {
			return nil, domain.InvalidInput(fmt.Sprintf("items[%d].menu_item_id is required", i))
		}
		qty := 1
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		if qty < 1 {
			return nil, domain.InvalidInput(fmt.Sprintf("items[%d].quantity must be greater than 0", i))
		}
		lines = append(lines, &entity.OrderItem{
			MenuItemID: *it.MenuItemID,
			Quantity:   qty,
			Notes:      it.Notes,
		})
	}

	order := &entity.Order{
		TableNumber:  in.TableNumber,
		CustomerName: in.CustomerName,
		Status:       status,
		// Postgres guarda microsegundos; truncar evita diferencias en el round-trip.
		CreatedAt: uc.now().UTC().Truncate(time.Microsecond),
	}

	var err error
	if uc.mode == WriteModeCompensate {
		err = uc.createCompensating(ctx, order, lines)
	} else {
		err = uc.txRunner.Run(ctx, func(repos Repos) error {
			if err := repos.Orders.Create(ctx, order); err != nil {
				return err
			}
			for _, line := range lines {
				if err := addLine(ctx, repos, order.ID, line); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, order.ID)
}

// createCompensating confirma la cabecera primero y la borra si una línea falla.
func (uc *OrderUseCase) createCompensating(ctx context.Context, order *entity.Order, lines []*entity.OrderItem) error {
	if err := uc.repos.Orders.Create(ctx, order); err != nil {
		return err
	}
	for _, line := range lines {
		if err := addLine(ctx, uc.repos, order.ID, line); err != nil {
			if derr := uc.repos.Orders.Delete(ctx, order.ID); derr != nil {
				return fmt.Errorf("compensate order %d: %w", order.ID, derr)
			}
			return err
		}
	}
	return nil
}

// addLine valida el ítem del menú (existe y está disponible) y crea la línea.
func addLine(ctx context.Context, repos Repos, orderID int64, line *entity.OrderItem) error {
	menuItem, err := repos.MenuItems.GetByID(ctx, line.MenuItemID)
	if err != nil {
		return err
	}
	if menuItem == nil {
		return domain.InvalidInput(fmt.Sprintf("Menu item with id %d not found", line.MenuItemID))
	}
	if !menuItem.IsAvailable {
		return domain.InvalidInput(fmt.Sprintf("Menu item '%s' is not available", menuItem.Name))
	}
	line.OrderID = orderID
	if err := repos.Orders.CreateItem(ctx, line); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.InvalidInput(fmt.Sprintf("Menu item with id %d not found", line.MenuItemID))
		}
		return err
	}
	return nil
}

// GetByID obtiene un pedido con sus líneas y el ítem del menú de cada una.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.repos.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFound("Order not found")
	}
	out, err := graphLoader{repos: uc.repos}.orders(ctx, []*entity.Order{order})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// List lista pedidos del más reciente al más antiguo, opcionalmente filtrados por estado.
func (uc *OrderUseCase) List(ctx context.Context, status string, page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	status = strings.TrimSpace(status)
	if status != "" && !entity.OrderStatus(status).Valid() {
		return nil, invalidStatus(status)
	}
	list, err := uc.repos.Orders.List(ctx, entity.OrderStatus(status), page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}
	return graphLoader{repos: uc.repos}.orders(ctx, list)
}

// Update aplica una actualización parcial de mesa, cliente y estado.
// No hay tabla de transiciones: cualquier estado válido se acepta.
func (uc *OrderUseCase) Update(ctx context.Context, id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repos.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFound("Order not found")
	}
	if in.TableNumber.Set {
		order.TableNumber = in.TableNumber.Ptr()
	}
	if in.CustomerName.Set {
		order.CustomerName = in.CustomerName.Ptr()
	}
	if in.Status.Set {
		if in.Status.Null {
			return nil, domain.InvalidInput("status cannot be null")
		}
		status := entity.OrderStatus(in.Status.Value)
		if !status.Valid() {
			return nil, invalidStatus(in.Status.Value)
		}
		order.Status = status
	}
	if err := uc.repos.Orders.Update(ctx, order); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Order not found")
		}
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina el pedido y sus líneas.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repos.Orders.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound("Order not found")
		}
		return err
	}
	return nil
}

func invalidStatus(s string) error {
	names := make([]string, 0, len(entity.OrderStatuses))
	for _, st := range entity.OrderStatuses {
		names = append(names, string(st))
	}
	return domain.InvalidInput(fmt.Sprintf("invalid status '%s', expected one of: %s", s, strings.Join(names, ", ")))
}

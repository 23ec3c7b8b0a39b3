package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/restaurant-menu-api/internal/domain"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, table_number, customer_name, status, created_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido y asigna el ID generado.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO orders (table_number, customer_name, status, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		order.TableNumber, order.CustomerName, string(order.Status), order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID (sin líneas). (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	row := r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// Update modifica mesa, cliente y estado. created_at nunca se toca.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE orders SET table_number = $2, customer_name = $3, status = $4
		WHERE id = $1`,
		order.ID, order.TableNumber, order.CustomerName, string(order.Status),
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista pedidos del más reciente al más antiguo (id como desempate).
func (r *OrderRepo) List(ctx context.Context, status entity.OrderStatus, offset, limit int) ([]*entity.Order, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status != "" {
		rows, err = r.q.Query(ctx, `
			SELECT `+orderColumns+` FROM orders WHERE status = $1
			ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`, string(status), limit, offset)
	} else {
		rows, err = r.q.Query(ctx, `
			SELECT `+orderColumns+` FROM orders
			ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Delete elimina el pedido; order_items se borra en cascada (ON DELETE CASCADE).
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateItem persiste una línea del pedido. domain.ErrConflict si el ítem del menú no existe.
func (r *OrderRepo) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO order_items (order_id, menu_item_id, quantity, notes)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		item.OrderID, item.MenuItemID, item.Quantity, item.Notes,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// ListItemsByOrderIDs devuelve las líneas de cada pedido en orden de creación.
func (r *OrderRepo) ListItemsByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]*entity.OrderItem, error) {
	out := make(map[int64][]*entity.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, menu_item_id, quantity, notes FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Quantity, &it.Notes); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out[it.OrderID] = append(out[it.OrderID], &it)
	}
	return out, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var status string
	if err := row.Scan(&o.ID, &o.TableNumber, &o.CustomerName, &status, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.Status = entity.OrderStatus(status)
	o.CreatedAt = o.CreatedAt.UTC()
	return &o, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/restaurant-menu-api/internal/domain"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

const menuItemColumns = `id, name, description, price, image_url, is_available, category_id`

// MenuItemRepo implementación del puerto MenuItemRepository sobre PostgreSQL.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

// Create persiste la fila del ítem (sin ingredientes) y asigna el ID generado.
// domain.ErrConflict si la categoría no existe (violación de FK).
func (r *MenuItemRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO menu_items (name, description, price, image_url, is_available, category_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		item.Name, item.Description, item.Price, item.ImageURL, item.IsAvailable, item.CategoryID,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. (nil, nil) si no existe. IngredientIDs no se carga.
func (r *MenuItemRepo) GetByID(ctx context.Context, id int64) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.q.QueryRow(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.ImageURL, &m.IsAvailable, &m.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &m, nil
}

// GetByIDs obtiene los ítems existentes entre ids.
func (r *MenuItemRepo) GetByIDs(ctx context.Context, ids []int64) ([]*entity.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("get menu items: %w", err)
	}
	return scanMenuItems(rows)
}

// Update reescribe todos los campos de la fila. domain.ErrNotFound si no existe.
func (r *MenuItemRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, image_url = $5, is_available = $6, category_id = $7
		WHERE id = $1`,
		item.ID, item.Name, item.Description, item.Price, item.ImageURL, item.IsAvailable, item.CategoryID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update menu item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista ítems por ID aplicando los filtros presentes.
func (r *MenuItemRepo) List(ctx context.Context, filter repository.MenuItemFilter, offset, limit int) ([]*entity.MenuItem, error) {
	var where []string
	var args []any
	if filter.CategoryID != 0 {
		args = append(args, filter.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.AvailableOnly {
		where = append(where, "is_available = TRUE")
	}
	query := `SELECT ` + menuItemColumns + ` FROM menu_items`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return scanMenuItems(rows)
}

// Delete elimina un ítem; sus asociaciones con ingredientes se borran en cascada.
// domain.ErrConflict si alguna línea de pedido lo referencia.
func (r *MenuItemRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete menu item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetIngredients reemplaza el conjunto de ingredientes del ítem (DELETE + INSERT).
// Dentro de una tx el reemplazo es atómico.
func (r *MenuItemRepo) SetIngredients(ctx context.Context, menuItemID int64, ingredientIDs []int64) error {
	if _, err := r.q.Exec(ctx,
		`DELETE FROM menu_item_ingredients WHERE menu_item_id = $1`, menuItemID); err != nil {
		return fmt.Errorf("clear menu item ingredients: %w", err)
	}
	if len(ingredientIDs) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO menu_item_ingredients (menu_item_id, ingredient_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`,
		menuItemID, ingredientIDs,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert menu item ingredients: %w", err)
	}
	return nil
}

// IngredientIDs devuelve los ingredientes asociados a cada ítem.
func (r *MenuItemRepo) IngredientIDs(ctx context.Context, menuItemIDs []int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(menuItemIDs))
	if len(menuItemIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT menu_item_id, ingredient_id FROM menu_item_ingredients
		WHERE menu_item_id = ANY($1)
		ORDER BY menu_item_id, ingredient_id`, menuItemIDs)
	if err != nil {
		return nil, fmt.Errorf("list menu item ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var itemID, ingredientID int64
		if err := rows.Scan(&itemID, &ingredientID); err != nil {
			return nil, fmt.Errorf("scan menu item ingredient: %w", err)
		}
		out[itemID] = append(out[itemID], ingredientID)
	}
	return out, rows.Err()
}

func scanMenuItems(rows pgx.Rows) ([]*entity.MenuItem, error) {
	defer rows.Close()
	var list []*entity.MenuItem
	for rows.Next() {
		var m entity.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.ImageURL, &m.IsAvailable, &m.CategoryID); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

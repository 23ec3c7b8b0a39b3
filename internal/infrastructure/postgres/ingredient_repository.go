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

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación del puerto IngredientRepository sobre PostgreSQL.
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create persiste un ingrediente y asigna el ID generado.
func (r *IngredientRepo) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO ingredients (name, is_allergen) VALUES ($1, $2) RETURNING id`,
		ingredient.Name, ingredient.IsAllergen,
	).Scan(&ingredient.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por ID. (nil, nil) si no existe.
func (r *IngredientRepo) GetByID(ctx context.Context, id int64) (*entity.Ingredient, error) {
	var i entity.Ingredient
	err := r.q.QueryRow(ctx,
		`SELECT id, name, is_allergen FROM ingredients WHERE id = $1`, id,
	).Scan(&i.ID, &i.Name, &i.IsAllergen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &i, nil
}

// GetByIDs obtiene los ingredientes existentes entre ids.
func (r *IngredientRepo) GetByIDs(ctx context.Context, ids []int64) ([]*entity.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT id, name, is_allergen FROM ingredients WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("get ingredients: %w", err)
	}
	return scanIngredients(rows)
}

// Update reemplaza nombre e is_allergen. domain.ErrNotFound si no existe.
func (r *IngredientRepo) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE ingredients SET name = $2, is_allergen = $3 WHERE id = $1`,
		ingredient.ID, ingredient.Name, ingredient.IsAllergen,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ingredient: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista ingredientes en orden de inserción.
func (r *IngredientRepo) List(ctx context.Context, offset, limit int) ([]*entity.Ingredient, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, is_allergen FROM ingredients ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	return scanIngredients(rows)
}

// Delete elimina un ingrediente; menu_item_ingredients borra sus asociaciones en cascada.
func (r *IngredientRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanIngredients(rows pgx.Rows) ([]*entity.Ingredient, error) {
	defer rows.Close()
	var list []*entity.Ingredient
	for rows.Next() {
		var i entity.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.IsAllergen); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

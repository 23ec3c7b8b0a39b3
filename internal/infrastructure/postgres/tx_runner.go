package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/restaurant-menu-api/internal/application/usecase"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// El error de fn se devuelve tal cual para que el llamador pueda mapearlo.
func (r *TxRunner) Run(ctx context.Context, fn func(repos usecase.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepos construye el juego completo de repositorios sobre q (pool o tx).
func NewRepos(q Querier) usecase.Repos {
	return usecase.Repos{
		Categories:  NewCategoryRepository(q),
		Ingredients: NewIngredientRepository(q),
		MenuItems:   NewMenuItemRepository(q),
		Orders:      NewOrderRepository(q),
	}
}

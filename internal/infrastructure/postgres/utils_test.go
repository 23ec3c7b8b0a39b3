package postgres

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgErrorCodes(t *testing.T) {
	unique := fmt.Errorf("insert category: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueViolation(unique), "el código se detecta a través del wrap")
	assert.False(t, isForeignKeyViolation(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(errors.New("23505")))
	assert.False(t, isUniqueViolation(nil))
}

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "migrations/001_init.sql", names[0])

	raw, err := migrationsFS.ReadFile(names[0])
	require.NoError(t, err)
	sql := string(raw)
	for _, table := range []string{"categories", "ingredients", "menu_items", "menu_item_ingredients", "orders", "order_items"} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table+" ", table)
	}
	assert.True(t, strings.Contains(sql, "ON DELETE RESTRICT"), "categorías e ítems con pedidos usan RESTRICT")
	assert.Contains(t, sql, "price        NUMERIC(12, 2) NOT NULL", "precio con dos decimales")
}

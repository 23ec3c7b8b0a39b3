package usecase

import (
	"context"

	"github.com/jhoicas/restaurant-menu-api/internal/domain/repository"
)

// Repos agrupa los repositorios de la aplicación. Los adaptadores construyen una
// instancia atada al pool y otra atada a cada transacción (ver TxRunner).
type Repos struct {
	Categories  repository.CategoryRepository
	Ingredients repository.IngredientRepository
	MenuItems   repository.MenuItemRepository
	Orders      repository.OrderRepository
}

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados a ella.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}

// WriteMode controla cómo se ejecutan las escrituras de varios pasos
// (ítem + ingredientes, pedido + líneas).
type WriteMode string

const (
	// WriteModeAtomic: una sola transacción con rollback garantizado.
	WriteModeAtomic WriteMode = "atomic"
	// WriteModeCompensate: cada paso confirma por separado y un fallo se deshace
	// con un DELETE compensatorio. Un lector concurrente puede ver estados intermedios.
	WriteModeCompensate WriteMode = "compensate"
)

// ParseWriteMode valida el modo leído de configuración. Vacío = atomic.
func ParseWriteMode(s string) (WriteMode, bool) {
	switch WriteMode(s) {
	case "", WriteModeAtomic:
		return WriteModeAtomic, true
	case WriteModeCompensate:
		return WriteModeCompensate, true
	}
	return "", false
}

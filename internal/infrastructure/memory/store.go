// Package memory implementa los puertos de persistencia en memoria del proceso.
// Sirve para ejecutar la API sin PostgreSQL (STORAGE_DRIVER=memory) y en los tests.
// Reproduce las reglas del esquema SQL: nombres únicos, RESTRICT en categorías e
// ítems con pedidos, CASCADE en asociaciones y líneas.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/restaurant-menu-api/internal/application/usecase"
	"github.com/jhoicas/restaurant-menu-api/internal/domain/entity"
)

// Store contiene todas las tablas. mu protege data; una transacción lo retiene
// en exclusiva desde que empieza hasta el commit o el rollback.
type Store struct {
	mu   sync.RWMutex
	data state
}

// locker es el subconjunto de sync.RWMutex que usan los repositorios.
type locker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// heldLock lo usan los repositorios de una transacción: el TxRunner ya tiene s.mu.
type heldLock struct{}

func (heldLock) Lock()    {}
func (heldLock) Unlock()  {}
func (heldLock) RLock()   {}
func (heldLock) RUnlock() {}

type state struct {
	categories          map[int64]entity.Category
	ingredients         map[int64]entity.Ingredient
	menuItems           map[int64]entity.MenuItem
	menuItemIngredients map[int64][]int64
	orders              map[int64]entity.Order
	orderItems          map[int64]entity.OrderItem

	nextCategoryID   int64
	nextIngredientID int64
	nextMenuItemID   int64
	nextOrderID      int64
	nextOrderItemID  int64
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{data: state{
		categories:          make(map[int64]entity.Category),
		ingredients:         make(map[int64]entity.Ingredient),
		menuItems:           make(map[int64]entity.MenuItem),
		menuItemIngredients: make(map[int64][]int64),
		orders:              make(map[int64]entity.Order),
		orderItems:          make(map[int64]entity.OrderItem),
	}}
}

// clone copia profunda del estado (snapshot para rollback).
func (s state) clone() state {
	c := s
	c.categories = make(map[int64]entity.Category, len(s.categories))
	for k, v := range s.categories {
		c.categories[k] = v
	}
	c.ingredients = make(map[int64]entity.Ingredient, len(s.ingredients))
	for k, v := range s.ingredients {
		c.ingredients[k] = v
	}
	c.menuItems = make(map[int64]entity.MenuItem, len(s.menuItems))
	for k, v := range s.menuItems {
		c.menuItems[k] = v
	}
	c.menuItemIngredients = make(map[int64][]int64, len(s.menuItemIngredients))
	for k, v := range s.menuItemIngredients {
		c.menuItemIngredients[k] = append([]int64(nil), v...)
	}
	c.orders = make(map[int64]entity.Order, len(s.orders))
	for k, v := range s.orders {
		c.orders[k] = v
	}
	c.orderItems = make(map[int64]entity.OrderItem, len(s.orderItems))
	for k, v := range s.orderItems {
		c.orderItems[k] = v
	}
	return c
}

// NewRepos construye el juego completo de repositorios sobre el almacén.
func NewRepos(s *Store) usecase.Repos {
	return usecase.Repos{
		Categories:  NewCategoryRepository(s),
		Ingredients: NewIngredientRepository(s),
		MenuItems:   NewMenuItemRepository(s),
		Orders:      NewOrderRepository(s),
	}
}

// txRepos repositorios ligados a una transacción en curso; no toman s.mu.
func txRepos(s *Store) usecase.Repos {
	return usecase.Repos{
		Categories:  &CategoryRepo{s: s, mu: heldLock{}},
		Ingredients: &IngredientRepo{s: s, mu: heldLock{}},
		MenuItems:   &MenuItemRepo{s: s, mu: heldLock{}},
		Orders:      &OrderRepo{s: s, mu: heldLock{}},
	}
}

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner emula una transacción: retiene s.mu en exclusiva, toma un snapshot,
// ejecuta fn y, si falla, restaura el snapshot. Mientras dura, el resto de
// lecturas y escrituras esperan, así que el rollback solo deshace cambios de fn.
// fn debe usar únicamente los repositorios que recibe.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repositorios de la transacción y deshace sus cambios si devuelve error.
func (r *TxRunner) Run(ctx context.Context, fn func(repos usecase.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snapshot := r.s.data.clone()
	if err := fn(txRepos(r.s)); err != nil {
		r.s.data = snapshot
		return err
	}
	return nil
}

// window aplica offset/limit sobre una lista ya ordenada.
func window[T any](list []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return nil
	}
	end := len(list)
	if limit >= 0 && offset+limit < end {
		end = offset + limit
	}
	return list[offset:end]
}

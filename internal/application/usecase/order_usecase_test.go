package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurant-menu-api/internal/application/dto"
	"github.com/jhoicas/restaurant-menu-api/internal/application/usecase"
	"github.com/jhoicas/restaurant-menu-api/internal/domain"
)

// fixedClock devuelve instantes crecientes de un minuto a partir de start.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

func TestOrder_CreateWithItems(t *testing.T) {
	for _, mode := range writeModes {
		t.Run(string(mode), func(t *testing.T) {
			ctx := context.Background()
			e := newEnv(t, mode)
			c := e.category(t, "Drinks")
			cola := e.menuItem(t, "Cola", "2.50", c.ID)

			start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("COT", -5*3600))
			e.orders.SetClock(fixedClock(start))

			order, err := e.orders.Create(ctx, dto.CreateOrderRequest{
				TableNumber: ptr(4),
				Items: []dto.CreateOrderItemRequest{
					{MenuItemID: &cola.ID, Quantity: ptr(2), Notes: ptr("no ice")},
					{MenuItemID: &cola.ID},
				},
			})
			require.NoError(t, err)
			assert.Equal(t, "pending", order.Status)
			assert.Equal(t, time.UTC, order.CreatedAt.Location())
			assert.True(t, order.CreatedAt.Equal(start))
			require.Len(t, order.Items, 2)
			assert.Equal(t, 2, order.Items[0].Quantity)
			assert.Equal(t, 1, order.Items[1].Quantity, "quantity por defecto es 1")
			require.NotNil(t, order.Items[0].MenuItem)
			assert.Equal(t, "Cola", order.Items[0].MenuItem.Name)
			assert.Equal(t, "Drinks", order.Items[0].MenuItem.Category.Name)

			got, err := e.orders.GetByID(ctx, order.ID)
			require.NoError(t, err)
			assert.Equal(t, order, got)
		})
	}
}

func TestOrder_CreateWithoutItems(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, "")

	order, err := e.orders.Create(ctx, dto.CreateOrderRequest{CustomerName: ptr("Ana"), Status: ptr("preparing")})
	require.NoError(t, err)
	assert.Equal(t, "preparing", order.Status)
	assert.NotNil(t, order.Items)
	assert.Empty(t, order.Items)
}

func TestOrder_UnavailableItemNotPersisted(t *testing.T) {
	for _, mode := range writeModes {
		t.Run(string(mode), func(t *testing.T) {
			ctx := context.Background()
			e := newEnv(t, mode)
			c := e.category(t, "Drinks")
			cola := e.menuItem(t, "Cola", "2.50", c.ID)
			juice := e.menuItem(t, "Juice", "3", c.ID)
			_, err := e.menuItems.Update(ctx, juice.ID, dto.UpdateMenuItemRequest{IsAvailable: dto.Some(false)})
			require.NoError(t, err)

			_, err = e.orders.Create(ctx, dto.CreateOrderRequest{
				Items: []dto.CreateOrderItemRequest{
					{MenuItemID: &cola.ID},
					{MenuItemID: &juice.ID},
				},
			})
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, "Menu item 'Juice' is not available", err.Error())

			list, err := e.orders.List(ctx, "", dto.PageRequest{})
			require.NoError(t, err)
			assert.Empty(t, list, "el pedido no persiste")

			// Sin líneas huérfanas: cola se puede borrar.
			assert.NoError(t, e.menuItems.Delete(ctx, cola.ID))
		})
	}
}

func TestOrder_MissingMenuItem(t *testing.T) {
	for _, mode := range writeModes {
		t.Run(string(mode), func(t *testing.T) {
			ctx := context.Background()
			e := newEnv(t, mode)

			_, err := e.orders.Create(ctx, dto.CreateOrderRequest{
				Items: []dto.CreateOrderItemRequest{{MenuItemID: ptr(int64(77))}},
			})
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, "Menu item with id 77 not found", err.Error())

			list, err := e.orders.List(ctx, "", dto.PageRequest{})
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestOrder_CreateValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, "")
	c := e.category(t, "Drinks")
	cola := e.menuItem(t, "Cola", "2.50", c.ID)

	cases := map[string]dto.CreateOrderRequest{
		"estado desconocido": {Status: ptr("lost")},
		"cantidad cero":      {Items: []dto.CreateOrderItemRequest{{MenuItemID: &cola.ID, Quantity: ptr(0)}}},
		"sin menu_item_id":   {Items: []dto.CreateOrderItemRequest{{Quantity: ptr(1)}}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := e.orders.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestOrder_ListByStatusNewestFirst(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, "")
	e.orders.SetClock(fixedClock(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)))

	var pendingIDs []int64
	for _, st := range []string{"pending", "ready", "pending", "cancelled", "pending"} {
		o, err := e.orders.Create(ctx, dto.CreateOrderRequest{Status: ptr(st)})
		require.NoError(t, err)
		if st == "pending" {
			pendingIDs = append(pendingIDs, o.ID)
		}
	}

	list, err := e.orders.List(ctx, "pending", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, o := range list {
		assert.Equal(t, "pending", o.Status)
		assert.Equal(t, pendingIDs[len(pendingIDs)-1-i], o.ID, "del más reciente al más antiguo")
	}
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i-1].CreatedAt.After(list[i].CreatedAt))
	}

	all, err := e.orders.List(ctx, "", dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = e.orders.List(ctx, "lost", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrder_ListSameInstantTieBreaksByID(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, "")
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	e.orders.SetClock(func() time.Time { return at })

	first, err := e.orders.Create(ctx, dto.CreateOrderRequest{})
	require.NoError(t, err)
	second, err := e.orders.Create(ctx, dto.CreateOrderRequest{})
	require.NoError(t, err)

	list, err := e.orders.List(ctx, "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestOrder_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, "")
	c := e.category(t, "Drinks")
	cola := e.menuItem(t, "Cola", "2.50", c.ID)

	order, err := e.orders.Create(ctx, dto.CreateOrderRequest{
		TableNumber:  ptr(3),
		CustomerName: ptr("Ana"),
		Items:        []dto.CreateOrderItemRequest{{MenuItemID: &cola.ID}},
	})
	require.NoError(t, err)

	// Enumeración abierta: se puede volver de delivered a pending.
	updated, err := e.orders.Update(ctx, order.ID, dto.UpdateOrderRequest{Status: dto.Some("delivered")})
	require.NoError(t, err)
	assert.Equal(t, "delivered", updated.Status)
	updated, err = e.orders.Update(ctx, order.ID, dto.UpdateOrderRequest{Status: dto.Some("pending")})
	require.NoError(t, err)
	assert.Equal(t, "pending", updated.Status)

	updated, err = e.orders.Update(ctx, order.ID, dto.UpdateOrderRequest{TableNumber: dto.Null[int]()})
	require.NoError(t, err)
	assert.Nil(t, updated.TableNumber)
	assert.Equal(t, "Ana", *updated.CustomerName)
	assert.True(t, updated.CreatedAt.Equal(order.CreatedAt), "created_at no cambia")
	assert.Len(t, updated.Items, 1, "las líneas no se modifican")

	_, err = e.orders.Update(ctx, order.ID, dto.UpdateOrderRequest{Status: dto.Null[string]()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.orders.Update(ctx, order.ID, dto.UpdateOrderRequest{Status: dto.Some("lost")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.orders.Update(ctx, 999, dto.UpdateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrder_DeleteCascadesItems(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, "")
	c := e.category(t, "Drinks")
	cola := e.menuItem(t, "Cola", "2.50", c.ID)
	order, err := e.orders.Create(ctx, dto.CreateOrderRequest{
		Items: []dto.CreateOrderItemRequest{{MenuItemID: &cola.ID}},
	})
	require.NoError(t, err)

	require.NoError(t, e.orders.Delete(ctx, order.ID))
	_, err = e.orders.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Sin líneas que lo referencien, el ítem ya se puede borrar.
	assert.NoError(t, e.menuItems.Delete(ctx, cola.ID))
}

type fakeGenerator struct {
	got *usecase.Receipt
}

func (f *fakeGenerator) GenerateReceiptPDF(_ context.Context, r *usecase.Receipt) ([]byte, error) {
	f.got = r
	return []byte("%PDF-fake"), nil
}

func TestReceipt_TotalsWithCurrentPrices(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, "")
	c := e.category(t, "Drinks")
	cola := e.menuItem(t, "Cola", "2.50", c.ID)
	juice := e.menuItem(t, "Juice", "3.10", c.ID)

	order, err := e.orders.Create(ctx, dto.CreateOrderRequest{
		CustomerName: ptr("Ana"),
		Items: []dto.CreateOrderItemRequest{
			{MenuItemID: &cola.ID, Quantity: ptr(2)},
			{MenuItemID: &juice.ID, Notes: ptr("no sugar")},
		},
	})
	require.NoError(t, err)

	gen := &fakeGenerator{}
	receipts := usecase.NewReceiptUseCase(e.orders, gen)
	pdf, filename, err := receipts.DownloadReceiptPDF(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Equal(t, "order-1.pdf", filename)

	require.NotNil(t, gen.got)
	assert.Equal(t, "Ana", gen.got.CustomerName)
	require.Len(t, gen.got.Lines, 2)
	assert.True(t, gen.got.Lines[0].Subtotal.Equal(decimal.RequireFromString("5")))
	assert.Equal(t, "no sugar", gen.got.Lines[1].Notes)
	assert.True(t, gen.got.Total.Equal(decimal.RequireFromString("8.10")))

	_, _, err = receipts.DownloadReceiptPDF(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

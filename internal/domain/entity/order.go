package entity

import "time"

// OrderStatus estado de un pedido. Enumeración abierta: no hay tabla de transiciones,
// cualquier estado válido puede pasar a cualquier otro.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lista los estados aceptados, en el orden del ciclo habitual.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Valid indica si s pertenece a la enumeración.
func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order pedido de un cliente o mesa. CreatedAt se fija al crear y no se modifica.
type Order struct {
	ID           int64
	TableNumber  *int
	CustomerName *string
	Status       OrderStatus
	CreatedAt    time.Time
}

// OrderItem línea de un pedido. MenuItemID debía existir y estar disponible al crear el pedido.
type OrderItem struct {
	ID         int64
	OrderID    int64
	MenuItemID int64
	Quantity   int // > 0
	Notes      *string
}

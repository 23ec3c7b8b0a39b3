package dto

import "time"

// CreateOrderItemRequest línea de un pedido nuevo. Quantity por defecto es 1.
type CreateOrderItemRequest struct {
	MenuItemID *int64  `json:"menu_item_id"`
	Quantity   *int    `json:"quantity"`
	Notes      *string `json:"notes"`
}

// CreateOrderRequest entrada para crear un pedido. Status por defecto es "pending".
type CreateOrderRequest struct {
	TableNumber  *int                     `json:"table_number"`
	CustomerName *string                  `json:"customer_name"`
	Status       *string                  `json:"status"`
	Items        []CreateOrderItemRequest `json:"items"`
}

// UpdateOrderRequest actualización parcial de la cabecera (las líneas no se modifican).
type UpdateOrderRequest struct {
	TableNumber  Optional[int]    `json:"table_number"`
	CustomerName Optional[string] `json:"customer_name"`
	Status       Optional[string] `json:"status"`
}

// OrderItemResponse salida de una línea con el ítem del menú resuelto.
type OrderItemResponse struct {
	ID         int64             `json:"id"`
	OrderID    int64             `json:"order_id"`
	MenuItemID int64             `json:"menu_item_id"`
	Quantity   int               `json:"quantity"`
	Notes      *string           `json:"notes"`
	MenuItem   *MenuItemResponse `json:"menu_item"`
}

// OrderResponse salida de un pedido con sus líneas.
type OrderResponse struct {
	ID           int64               `json:"id"`
	TableNumber  *int                `json:"table_number"`
	CustomerName *string             `json:"customer_name"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	Items        []OrderItemResponse `json:"items"`
}

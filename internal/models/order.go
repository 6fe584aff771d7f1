package models

import "github.com/google/uuid"

// OrderType distinguishes how an order is fulfilled.
type OrderType string

const (
	OrderTypeEatIn    OrderType = "EAT_IN"
	OrderTypeDelivery OrderType = "DELIVERY"
	OrderTypeTakeout  OrderType = "TAKEOUT"
)

// OrderStatus is the lifecycle state of an order. COMPLETED is the
// only terminal state; a table cannot be cleared while any order
// referencing it is in another state.
type OrderStatus string

const (
	OrderStatusWaiting    OrderStatus = "WAITING"
	OrderStatusAccepted   OrderStatus = "ACCEPTED"
	OrderStatusServed     OrderStatus = "SERVED"
	OrderStatusDelivering OrderStatus = "DELIVERING"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
)

// Order is a customer transaction. Eat-in orders carry a reference to
// the table they occupy; the table engine only ever asks whether a
// non-completed order exists for a given table.
type Order struct {
	ID           uuid.UUID   `json:"id"`
	Type         OrderType   `json:"type"`
	Status       OrderStatus `json:"status"`
	OrderTableID uuid.UUID   `json:"orderTableId,omitempty"`
}

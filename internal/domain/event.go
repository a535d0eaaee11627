package domain

import "time"

// Routing keys for order lifecycle events.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusUpdated = "order.status_updated"
	EventOrderCancelled     = "order.cancelled"
)

// OrderEvent is the payload published to the order exchange whenever an
// order is created or changes state.
type OrderEvent struct {
	OrderID     string      `json:"orderId"`
	OrderNumber string      `json:"orderNumber"`
	UserID      string      `json:"userId"`
	Status      OrderStatus `json:"status"`
	TotalAmount int64       `json:"totalAmount"`
	OccurredAt  time.Time   `json:"occurredAt"`
}

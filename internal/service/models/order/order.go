package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/ordersapi/orders-svc/internal/service/models/orderitem"
)

// Order represents a customer's purchase record with its line items.
// ID and CreatedAt are assigned by the repository on creation; values set by
// callers are overwritten there.
type Order struct {
	ID           uuid.UUID             `json:"orderId"`
	CustomerName string                `json:"customerName"`
	CreatedAt    time.Time             `json:"createdAt"`
	Items        []orderitem.OrderItem `json:"items"`
}

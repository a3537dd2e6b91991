package order

import (
	"time"

	"github.com/google/uuid"
)

// CreateOrderRequest is the inbound shape of the create-order operation.
type CreateOrderRequest struct {
	CustomerName string                   `json:"customerName" validate:"required,max=200"`
	Items        []CreateOrderItemRequest `json:"items"        validate:"required,min=1,dive"`
}

// CreateOrderItemRequest is one requested line item.
type CreateOrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity"  validate:"required,min=1"`
}

// CreateOrderResponse is the created-order representation returned to clients.
type CreateOrderResponse struct {
	OrderID      uuid.UUID           `json:"orderId"`
	CustomerName string              `json:"customerName"`
	CreatedAt    time.Time           `json:"createdAt"`
	Items        []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one created line item.
type OrderItemResponse struct {
	ID        int64     `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

package iaudit

import (
	"context"

	"github.com/ordersapi/orders-svc/internal/service/models/order"
)

// Repository publishes audit events for created orders. Publishing is
// observability only and must not affect the outcome of the creation.
type Repository interface {
	LogOrderCreated(ctx context.Context, orders ...order.Order) error
}

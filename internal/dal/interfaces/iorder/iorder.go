package iorder

import (
	"context"

	"github.com/ordersapi/orders-svc/internal/service/models/order"
)

// Repository is the service-facing order persistence contract. CreateOrder
// assigns identity and timestamp, persists the order and its items in one
// atomic transaction and returns the persisted entity.
type Repository interface {
	CreateOrder(ctx context.Context, o order.Order) (*order.Order, error)
}

// Store is the low-level order row store, bound to a transaction by the unit
// of work.
type Store interface {
	Insert(ctx context.Context, o order.Order) error
}

package iorderitem

import (
	"context"

	"github.com/ordersapi/orders-svc/internal/service/models/orderitem"
)

// Store is the low-level order item store, bound to a transaction by the
// unit of work. BulkInsert returns the inserted items with store-assigned ids.
type Store interface {
	BulkInsert(ctx context.Context, items []orderitem.OrderItem) ([]orderitem.OrderItem, error)
}

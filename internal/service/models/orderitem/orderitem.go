package orderitem

import (
	"github.com/google/uuid"
)

// OrderItem represents one product-quantity line within an order. Items are
// created together with their order and never independently; OrderID is set
// by the repository before insert and ID is assigned by the store.
type OrderItem struct {
	ID        int64     `json:"id"`
	OrderID   uuid.UUID `json:"orderId"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

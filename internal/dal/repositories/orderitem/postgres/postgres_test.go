package postgresrepo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordersapi/orders-svc/internal/service/models/orderitem"
)

func TestBulkInsert_EmptyInput(t *testing.T) {
	// An empty batch must not touch the connection at all.
	store := NewOrderItemStore(nil)

	result, err := store.BulkInsert(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestOrderItemDalConversion(t *testing.T) {
	model := &orderitem.OrderItem{
		ID:        7,
		OrderID:   uuid.New(),
		ProductID: uuid.New(),
		Quantity:  3,
	}

	dal := OrderItemDalFromModel(model)
	assert.Equal(t, model, dal.ToModel())
}

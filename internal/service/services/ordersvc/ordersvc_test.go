package ordersvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordersapi/orders-svc/internal/service/models/order"
	"github.com/ordersapi/orders-svc/internal/service/models/orderitem"
)

// --- Mock implementations ---

type mockOrderRepo struct {
	calls     int
	lastOrder order.Order
	err       error
}

// CreateOrder mimics the real repository: assigns identity, timestamp and
// item ids to the received entity.
func (m *mockOrderRepo) CreateOrder(_ context.Context, o order.Order) (*order.Order, error) {
	m.calls++
	m.lastOrder = o
	if m.err != nil {
		return nil, m.err
	}

	o.ID = uuid.New()
	o.CreatedAt = time.Now().UTC()
	items := make([]orderitem.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	for i := range o.Items {
		o.Items[i].ID = int64(i + 1)
		o.Items[i].OrderID = o.ID
	}

	return &o, nil
}

type mockAuditRepo struct {
	calls int
	last  []order.Order
	err   error
}

func (m *mockAuditRepo) LogOrderCreated(_ context.Context, orders ...order.Order) error {
	m.calls++
	m.last = orders
	return m.err
}

// --- Helpers ---

func newCreateRequest() order.CreateOrderRequest {
	return order.CreateOrderRequest{
		CustomerName: "Ann",
		Items: []order.CreateOrderItemRequest{
			{ProductID: uuid.New(), Quantity: 2},
			{ProductID: uuid.New(), Quantity: 1},
		},
	}
}

// --- Tests ---

func TestCreateOrder_MapsRequestToEntity(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := MustNewOrderService(WithOrderRepository(repo))
	req := newCreateRequest()

	_, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, 1, repo.calls)
	got := repo.lastOrder
	assert.Equal(t, uuid.Nil, got.ID, "identity is assigned by the repository, not the service")
	assert.True(t, got.CreatedAt.IsZero(), "timestamp is assigned by the repository, not the service")
	assert.Equal(t, "Ann", got.CustomerName)
	require.Len(t, got.Items, 2)
	for i, item := range got.Items {
		assert.Equal(t, req.Items[i].ProductID, item.ProductID)
		assert.Equal(t, req.Items[i].Quantity, item.Quantity)
		assert.Equal(t, uuid.Nil, item.OrderID)
		assert.Zero(t, item.ID)
	}
}

func TestCreateOrder_MapsResultToResponse(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := MustNewOrderService(WithOrderRepository(repo))
	req := newCreateRequest()

	resp, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.OrderID)
	assert.Equal(t, "Ann", resp.CustomerName)
	assert.False(t, resp.CreatedAt.IsZero())
	require.Len(t, resp.Items, len(req.Items))
	for i, item := range resp.Items {
		assert.Equal(t, req.Items[i].ProductID, item.ProductID)
		assert.Equal(t, req.Items[i].Quantity, item.Quantity)
		assert.NotZero(t, item.ID)
	}
}

func TestCreateOrder_RepositoryErrorRethrown(t *testing.T) {
	repoErr := errors.New("insert failed")
	repo := &mockOrderRepo{err: repoErr}
	svc := MustNewOrderService(WithOrderRepository(repo))

	resp, err := svc.CreateOrder(context.Background(), newCreateRequest())

	require.ErrorIs(t, err, repoErr, "failures propagate unchanged through the service")
	assert.Nil(t, resp)
}

func TestCreateOrder_PublishesAuditEvent(t *testing.T) {
	repo := &mockOrderRepo{}
	auditRepo := &mockAuditRepo{}
	svc := MustNewOrderService(
		WithOrderRepository(repo),
		WithAuditRepository(auditRepo),
	)

	resp, err := svc.CreateOrder(context.Background(), newCreateRequest())
	require.NoError(t, err)

	require.Equal(t, 1, auditRepo.calls)
	require.Len(t, auditRepo.last, 1)
	assert.Equal(t, resp.OrderID, auditRepo.last[0].ID)
}

func TestCreateOrder_AuditFailureDoesNotFailRequest(t *testing.T) {
	repo := &mockOrderRepo{}
	auditRepo := &mockAuditRepo{err: errors.New("broker unavailable")}
	svc := MustNewOrderService(
		WithOrderRepository(repo),
		WithAuditRepository(auditRepo),
	)

	resp, err := svc.CreateOrder(context.Background(), newCreateRequest())

	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestCreateOrder_NoAuditRepositoryConfigured(t *testing.T) {
	svc := MustNewOrderService(WithOrderRepository(&mockOrderRepo{}))

	resp, err := svc.CreateOrder(context.Background(), newCreateRequest())

	require.NoError(t, err)
	assert.NotNil(t, resp)
}

package ordersvc

import (
	"context"
	"log/slog"

	"github.com/ordersapi/orders-svc/internal/dal/interfaces/iaudit"
	"github.com/ordersapi/orders-svc/internal/dal/interfaces/iorder"
	"github.com/ordersapi/orders-svc/internal/service/models/order"
	"github.com/ordersapi/orders-svc/internal/service/models/orderitem"
)

// OrderService is a service for creating orders. It translates the request
// shape into the persistence shape, invokes the repository and translates the
// persisted result back. Failures are logged and re-raised unchanged.
type OrderService struct {
	orderRepo iorder.Repository
	auditRepo iaudit.Repository
}

// Option is a function that configures the OrderService.
type Option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...Option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.orderRepo == nil {
		panic("ordersvc: order repository is required")
	}

	return s
}

// WithOrderRepository sets the order repository for the OrderService.
func WithOrderRepository(repo iorder.Repository) Option {
	return func(s *OrderService) {
		s.orderRepo = repo
	}
}

// WithAuditRepository sets the audit repository for the OrderService.
// Auditing is optional; when unset, order-created events are not published.
func WithAuditRepository(repo iaudit.Repository) Option {
	return func(s *OrderService) {
		s.auditRepo = repo
	}
}

// CreateOrder creates a single order with its items in one transaction.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	req order.CreateOrderRequest,
) (*order.CreateOrderResponse, error) {
	slog.Info("Creating order",
		"customer_name", req.CustomerName,
		"item_count", len(req.Items),
	)

	created, err := s.orderRepo.CreateOrder(ctx, mapToEntity(req))
	if err != nil {
		slog.Error("Failed to create order",
			"customer_name", req.CustomerName,
			"error", err,
		)

		return nil, err
	}

	slog.Info("Order created", "order_id", created.ID)

	if s.auditRepo != nil {
		if err := s.auditRepo.LogOrderCreated(ctx, *created); err != nil {
			slog.Warn("Failed to publish order created event",
				"order_id", created.ID,
				"error", err,
			)
		}
	}

	return mapToResponse(created), nil
}

// mapToEntity converts the request shape into the persistence entity.
// Identity and timestamps are left unset; the repository assigns them.
func mapToEntity(req order.CreateOrderRequest) order.Order {
	items := make([]orderitem.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = orderitem.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return order.Order{
		CustomerName: req.CustomerName,
		Items:        items,
	}
}

// mapToResponse converts the persisted entity into the response shape.
func mapToResponse(o *order.Order) *order.CreateOrderResponse {
	items := make([]order.OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = order.OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return &order.CreateOrderResponse{
		OrderID:      o.ID,
		CustomerName: o.CustomerName,
		CreatedAt:    o.CreatedAt,
		Items:        items,
	}
}

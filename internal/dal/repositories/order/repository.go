package orderrepo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ordersapi/orders-svc/internal/dal/uow"
	"github.com/ordersapi/orders-svc/internal/service/models/order"
)

// Postgres error codes classified as data validation failures. The quantity
// check constraint and the order foreign key both guard invariants that are
// also validated at the boundary.
const (
	pgCheckViolation      = "23514"
	pgForeignKeyViolation = "23503"
)

// OrderRepository persists orders transactionally. It is the only
// state-mutating component in the system.
type OrderRepository struct {
	newUOW func() uow.UnitOfWork
}

// NewOrderRepository creates an OrderRepository that opens a unit of work per
// call via the given factory.
func NewOrderRepository(newUOW func() uow.UnitOfWork) *OrderRepository {
	return &OrderRepository{newUOW: newUOW}
}

// CreateOrder assigns a fresh order id and a current UTC timestamp,
// overwriting any caller-supplied values, stamps the order id onto every item
// and inserts the order with all its items in one atomic transaction. On any
// failure the transaction is rolled back in full and the failure is returned
// to the caller.
func (r *OrderRepository) CreateOrder(ctx context.Context, o order.Order) (*order.Order, error) {
	o.ID = uuid.New()
	o.CreatedAt = time.Now().UTC()
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}

	work := r.newUOW()

	if err := work.Begin(ctx); err != nil {
		return nil, err
	}

	if err := work.OrderStore().Insert(ctx, o); err != nil {
		r.rollback(ctx, work)
		return nil, classify(err)
	}

	items, err := work.OrderItemStore().BulkInsert(ctx, o.Items)
	if err != nil {
		r.rollback(ctx, work)
		return nil, classify(err)
	}
	o.Items = items

	if err := work.Commit(ctx); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *OrderRepository) rollback(ctx context.Context, work uow.UnitOfWork) {
	if err := work.Rollback(ctx); err != nil {
		slog.Error("Failed to roll back order transaction", "error", err)
	}
}

// classify maps storage constraint violations on the order tables to a
// validation failure; anything else is returned unchanged.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCheckViolation, pgForeignKeyViolation:
			return order.NewValidationError("order data rejected by storage constraints: " + pgErr.Message)
		}
	}

	return err
}

package uow

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/ordersapi/orders-svc/internal/dal/interfaces/iorder"
	"github.com/ordersapi/orders-svc/internal/dal/interfaces/iorderitem"
	"github.com/ordersapi/orders-svc/internal/dal/postgres"
	orderstore "github.com/ordersapi/orders-svc/internal/dal/repositories/order/postgres"
	orderitemstore "github.com/ordersapi/orders-svc/internal/dal/repositories/orderitem/postgres"
)

// UnitOfWork scopes the order and order item stores to a single transaction.
// Begin rebinds both stores to the transaction; Commit and Rollback end it.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderStore() iorder.Store
	OrderItemStore() iorderitem.Store
}

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type unitOfWork struct {
	db             txBeginner
	tx             pgx.Tx
	orderStore     iorder.Store
	orderItemStore iorderitem.Store
}

// NewUnitOfWork creates a unit of work over the given Postgres client. Until
// Begin is called the stores run directly against the pool.
func NewUnitOfWork(client *postgres.Client) UnitOfWork {
	return &unitOfWork{
		db:             client.Pool(),
		orderStore:     orderstore.NewOrderStore(client.Pool()),
		orderItemStore: orderitemstore.NewOrderItemStore(client.Pool()),
	}
}

func (u *unitOfWork) OrderStore() iorder.Store {
	return u.orderStore
}

func (u *unitOfWork) OrderItemStore() iorderitem.Store {
	return u.orderItemStore
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return err
	}

	u.tx = tx
	u.orderStore = orderstore.NewOrderStore(tx)
	u.orderItemStore = orderitemstore.NewOrderItemStore(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Commit(ctx)
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Rollback(ctx)
}

package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	orderitemstore "github.com/ordersapi/orders-svc/internal/dal/repositories/orderitem/postgres"
	"github.com/ordersapi/orders-svc/internal/service/models/order"
)

// OrderDal represents the order data access layer model.
type OrderDal struct {
	OrderId      uuid.UUID `db:"order_id"`
	CustomerName string    `db:"customer_name"`
	CreatedAt    time.Time `db:"created_at"`
}

// ToModel converts OrderDal to the service layer Order model. Items are
// populated separately.
func (o *OrderDal) ToModel() *order.Order {
	return &order.Order{
		ID:           o.OrderId,
		CustomerName: o.CustomerName,
		CreatedAt:    o.CreatedAt,
	}
}

// OrderDalFromModel converts the service layer Order model to OrderDal.
func OrderDalFromModel(o *order.Order) *OrderDal {
	return &OrderDal{
		OrderId:      o.ID,
		CustomerName: o.CustomerName,
		CreatedAt:    o.CreatedAt,
	}
}

// OrderStore is a Postgres order row store.
type OrderStore struct {
	conn orderitemstore.GenericConn
	sb   sq.StatementBuilderType
}

// NewOrderStore creates a new Postgres order row store.
func NewOrderStore(conn orderitemstore.GenericConn) *OrderStore {
	return &OrderStore{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert inserts a single order row.
func (r *OrderStore) Insert(ctx context.Context, o order.Order) error {
	dal := OrderDalFromModel(&o)

	sql, args, err := r.sb.
		Insert("orders").
		Columns("order_id", "customer_name", "created_at").
		Values(dal.OrderId, dal.CustomerName, dal.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

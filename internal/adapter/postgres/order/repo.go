// Package order implements the order and order-item repositories using
// PostgreSQL. Order items live in their own table and are loaded in a second
// query; callers that need atomicity run both stores inside one transaction.
package order

import (
	"context"

	"github.com/kdtech/site-backend/internal/adapter/postgres"
	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const (
	ordersTable = "orders"
	itemsTable  = "order_items"
)

var orderColumns = []string{
	"id", "order_number", "customer_name", "customer_email", "customer_phone",
	"company_name", "billing_address", "shipping_address", "order_type",
	"subtotal", "tax_amount", "shipping_amount", "total_amount", "currency",
	"order_status", "payment_status", "payment_method", "payment_reference",
	"notes", "admin_notes", "created_at", "updated_at",
}

var orderFillable = []string{
	"order_number", "customer_name", "customer_email", "customer_phone",
	"company_name", "billing_address", "shipping_address", "order_type",
	"subtotal", "tax_amount", "shipping_amount", "total_amount", "currency",
	"order_status", "payment_status", "payment_method", "payment_reference",
	"notes", "admin_notes",
}

var itemColumns = []string{
	"id", "order_id", "item_type", "item_id", "item_name",
	"item_description", "quantity", "unit_price", "total_price",
}

var itemFillable = []string{
	"order_id", "item_type", "item_id", "item_name",
	"item_description", "quantity", "unit_price", "total_price",
}

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	*record.Store[domain.Order]
	items *record.Store[domain.OrderItem]
}

// New creates a new order repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		Store: record.New[domain.Order](db, record.Config{
			Table:    ordersTable,
			Entity:   "order",
			Columns:  orderColumns,
			Fillable: orderFillable,
		}),
		items: record.New[domain.OrderItem](db, record.Config{
			Table:    itemsTable,
			Entity:   "order item",
			Columns:  itemColumns,
			Fillable: itemFillable,
		}),
	}
}

// Items exposes the order-item store for use inside order transactions.
func (r *Repo) Items() *record.Store[domain.OrderItem] {
	return r.items
}

const statsSQL = `
SELECT
    COUNT(*) AS total_orders,
    COUNT(*) FILTER (WHERE order_status = 'pending') AS pending_orders,
    COUNT(*) FILTER (WHERE order_status = 'delivered') AS delivered_orders,
    COUNT(*) FILTER (WHERE order_status = 'cancelled') AS cancelled_orders,
    COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid'), 0) AS total_revenue,
    COALESCE(AVG(total_amount) FILTER (WHERE payment_status = 'paid'), 0) AS average_order_value
FROM orders`

const searchSQL = `
SELECT
    id, order_number, customer_name, customer_email, customer_phone,
    company_name, billing_address, shipping_address, order_type,
    subtotal, tax_amount, shipping_amount, total_amount, currency,
    order_status, payment_status, payment_method, payment_reference,
    notes, admin_notes, created_at, updated_at
FROM orders
WHERE order_number ILIKE $1 OR customer_name ILIKE $1 OR customer_email ILIKE $1
ORDER BY created_at DESC
LIMIT $2`

// GetByNumber returns the order with the given order number.
func (r *Repo) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	rows, err := r.List(ctx, record.Conditions{"order_number": number}, "", 1, 0)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}

// NumberExists reports whether an order already uses the given number.
func (r *Repo) NumberExists(ctx context.Context, number string) (bool, error) {
	return r.Exists(ctx, record.Conditions{"order_number": number})
}

// GetWithItems returns the order and its line items.
func (r *Repo) GetWithItems(ctx context.Context, id int64) (*domain.OrderWithItems, error) {
	ord, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := r.items.List(ctx, record.Conditions{"order_id": id}, "id ASC", 0, 0)
	if err != nil {
		return nil, err
	}
	return &domain.OrderWithItems{Order: *ord, Items: items}, nil
}

// ListByEmail returns the customer's orders, newest first.
func (r *Repo) ListByEmail(ctx context.Context, email string, limit, offset uint64) ([]domain.Order, error) {
	return r.List(ctx, record.Conditions{"customer_email": email}, "created_at DESC", limit, offset)
}

// ListByStatus returns orders in the given status, newest first.
func (r *Repo) ListByStatus(ctx context.Context, status domain.OrderStatus, limit, offset uint64) ([]domain.Order, error) {
	return r.List(ctx, record.Conditions{"order_status": status}, "created_at DESC", limit, offset)
}

// Recent returns the most recently created orders.
func (r *Repo) Recent(ctx context.Context, limit uint64) ([]domain.Order, error) {
	return r.List(ctx, nil, "created_at DESC", limit, 0)
}

// Search matches orders by number, customer name, or email.
func (r *Repo) Search(ctx context.Context, q string, limit int) ([]domain.Order, error) {
	rows := []domain.Order{}
	if err := r.Select(ctx, &rows, searchSQL, "%"+q+"%", limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// Stats returns the order aggregate counters in a single query.
func (r *Repo) Stats(ctx context.Context) (*domain.OrderStats, error) {
	var stats domain.OrderStats
	if err := r.Get(ctx, &stats, statsSQL); err != nil {
		return nil, err
	}
	return &stats, nil
}

package order

import (
	"context"

	"github.com/kdtech/site-backend/internal/domain"
)

const (
	defaultRecentLimit = 10
	defaultListLimit   = 20
)

// GetOrder returns an order with its line items.
func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.OrderWithItems, error) {
	return s.orders.GetWithItems(ctx, id)
}

// GetOrderByNumber looks an order up by its public order number.
func (s *Service) GetOrderByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return s.orders.GetByNumber(ctx, number)
}

// ListOrdersByEmail returns a customer's orders, newest first.
func (s *Service) ListOrdersByEmail(ctx context.Context, email string, limit, offset uint64) ([]domain.Order, error) {
	if limit == 0 {
		limit = defaultListLimit
	}
	return s.orders.ListByEmail(ctx, email, limit, offset)
}

// ListOrdersByStatus returns orders in the given lifecycle state.
func (s *Service) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus, limit, offset uint64) ([]domain.Order, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("order_status", "unknown status")
	}
	if limit == 0 {
		limit = defaultListLimit
	}
	return s.orders.ListByStatus(ctx, status, limit, offset)
}

// RecentOrders returns the latest orders for the dashboard.
func (s *Service) RecentOrders(ctx context.Context, limit uint64) ([]domain.Order, error) {
	if limit == 0 {
		limit = defaultRecentLimit
	}
	return s.orders.Recent(ctx, limit)
}

// SearchOrders matches orders by number, customer name or email.
func (s *Service) SearchOrders(ctx context.Context, query string, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.orders.Search(ctx, query, limit)
}

// OrderStats returns the aggregate order counters.
func (s *Service) OrderStats(ctx context.Context) (*domain.OrderStats, error) {
	return s.orders.Stats(ctx)
}

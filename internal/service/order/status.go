package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

// UpdateStatus sets an order's fulfilment status. Any value from the status
// enumeration is accepted regardless of the current state; only values
// outside the enumeration are rejected, and rejection leaves the row
// untouched.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, adminNotes *string) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("order_status", fmt.Sprintf("unknown status %q", status))
	}

	current, err := s.orders.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := record.Fields{"order_status": status}
	if adminNotes != nil {
		fields["admin_notes"] = strings.TrimSpace(*adminNotes)
	}
	updated, err := s.orders.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.record(ctx, id, "status_update",
		fmt.Sprintf("order %s: %s -> %s", updated.OrderNumber, current.OrderStatus, status))
	s.notifier.OrderStatusChanged(ctx, updated, current.OrderStatus)

	return updated, nil
}

// UpdatePaymentStatus records a payment state change, optionally attaching
// the gateway reference.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus, reference *string) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("payment_status", fmt.Sprintf("unknown status %q", status))
	}

	current, err := s.orders.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := record.Fields{"payment_status": status}
	if reference != nil {
		fields["payment_reference"] = strings.TrimSpace(*reference)
	}
	updated, err := s.orders.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.record(ctx, id, "payment_update",
		fmt.Sprintf("order %s payment: %s -> %s", updated.OrderNumber, current.PaymentStatus, status))

	return updated, nil
}

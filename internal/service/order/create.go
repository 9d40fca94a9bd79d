package order

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

// CreateOrder places an order. The order row and all its items are written
// inside one transaction: on any failure nothing is persisted. Totals are
// computed server-side from the item lines; after commit a best-effort
// confirmation notification goes out.
func (s *Service) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.OrderWithItems, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	totals := s.ComputeTotals(input.Items)

	var result *domain.OrderWithItems
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		number, numErr := s.generateOrderNumber(txCtx)
		if numErr != nil {
			return fmt.Errorf("generate order number: %w", numErr)
		}

		created, createErr := s.orders.Create(txCtx, record.Fields{
			"order_number":     number,
			"customer_name":    strings.TrimSpace(input.CustomerName),
			"customer_email":   strings.TrimSpace(input.CustomerEmail),
			"customer_phone":   input.CustomerPhone,
			"company_name":     input.CompanyName,
			"billing_address":  input.BillingAddress,
			"shipping_address": input.ShippingAddress,
			"order_type":       input.OrderType,
			"subtotal":         totals.Subtotal,
			"tax_amount":       totals.TaxAmount,
			"shipping_amount":  totals.ShippingAmount,
			"total_amount":     totals.TotalAmount,
			"currency":         s.cfg.Currency,
			"order_status":     domain.OrderStatusPending,
			"payment_status":   domain.PaymentStatusPending,
			"payment_method":   input.PaymentMethod,
			"notes":            input.Notes,
		})
		if createErr != nil {
			return fmt.Errorf("create order: %w", createErr)
		}

		items := make([]domain.OrderItem, 0, len(input.Items))
		for i, line := range input.Items {
			item, itemErr := s.items.Create(txCtx, record.Fields{
				"order_id":         created.ID,
				"item_type":        line.ItemType,
				"item_id":          line.ItemID,
				"item_name":        line.ItemName,
				"item_description": line.ItemDescription,
				"quantity":         line.Quantity,
				"unit_price":       line.UnitPrice,
				"total_price":      lineTotal(line),
			})
			if itemErr != nil {
				return fmt.Errorf("create order item %d: %w", i, itemErr)
			}
			items = append(items, *item)
		}

		result = &domain.OrderWithItems{Order: *created, Items: items}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.record(ctx, result.ID, "create",
		fmt.Sprintf("order %s placed: %d items, total %.2f %s",
			result.OrderNumber, len(result.Items), result.TotalAmount, result.Currency))
	s.notifier.OrderPlaced(ctx, result)

	return result, nil
}

// ComputeTotals derives the money fields from the order lines: subtotal is
// the sum of line totals, tax applies the configured rate, shipping is
// waived at or above the free-shipping threshold.
func (s *Service) ComputeTotals(items []OrderItemInput) domain.OrderTotals {
	var subtotal float64
	for _, line := range items {
		subtotal += lineTotal(line)
	}

	tax := roundMoney(subtotal * s.cfg.TaxRatePercent / 100)

	shipping := s.cfg.FlatShippingFee
	if subtotal >= s.cfg.FreeShippingThreshold {
		shipping = 0
	}

	return domain.OrderTotals{
		Subtotal:       roundMoney(subtotal),
		TaxAmount:      tax,
		ShippingAmount: shipping,
		TotalAmount:    roundMoney(subtotal + tax + shipping),
	}
}

func lineTotal(line OrderItemInput) float64 {
	return roundMoney(float64(line.Quantity) * line.UnitPrice)
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// generateOrderNumber builds prefix + yyyymmdd + 4 random digits and
// retries while the number is taken. The unique index on
// orders.order_number remains the authoritative guard under races.
func (s *Service) generateOrderNumber(ctx context.Context) (string, error) {
	date := s.now().Format("20060102")

	for attempt := 0; attempt < s.cfg.NumberMaxAttempts; attempt++ {
		number := fmt.Sprintf("%s%s%04d", s.cfg.NumberPrefix, date, 1+rand.IntN(9999))

		taken, err := s.orders.NumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}

	return "", fmt.Errorf("no free order number after %d attempts", s.cfg.NumberMaxAttempts)
}

// Package notify delivers best-effort notifications about new orders,
// quote requests, and contact messages. Delivery failures are logged and
// never propagate to the caller: intake must succeed even when the
// notification channel is down.
package notify

import (
	"context"
	"log/slog"

	"github.com/kdtech/site-backend/internal/domain"
)

// Notifier receives intake events. Implementations must be safe for
// concurrent use and must not block for long.
type Notifier interface {
	OrderPlaced(ctx context.Context, order *domain.OrderWithItems)
	OrderStatusChanged(ctx context.Context, order *domain.Order, from domain.OrderStatus)
	QuoteRequested(ctx context.Context, quote *domain.Quote)
	ContactReceived(ctx context.Context, msg *domain.ContactMessage)
}

// LogNotifier writes every event to the structured log. It stands in for
// an email or chat integration in environments that have none configured.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("component", "notify")}
}

func (n *LogNotifier) OrderPlaced(ctx context.Context, order *domain.OrderWithItems) {
	n.log.InfoContext(ctx, "order placed",
		"order_number", order.OrderNumber,
		"customer_email", order.CustomerEmail,
		"total_amount", order.TotalAmount,
		"items", len(order.Items),
	)
}

func (n *LogNotifier) OrderStatusChanged(ctx context.Context, order *domain.Order, from domain.OrderStatus) {
	n.log.InfoContext(ctx, "order status changed",
		"order_number", order.OrderNumber,
		"customer_email", order.CustomerEmail,
		"from", from,
		"to", order.OrderStatus,
	)
}

func (n *LogNotifier) QuoteRequested(ctx context.Context, quote *domain.Quote) {
	n.log.InfoContext(ctx, "quote requested",
		"quote_number", quote.QuoteNumber,
		"customer_email", quote.CustomerEmail,
		"service_type", quote.ServiceType,
	)
}

func (n *LogNotifier) ContactReceived(ctx context.Context, msg *domain.ContactMessage) {
	n.log.InfoContext(ctx, "contact message received",
		"email", msg.Email,
		"subject", msg.Subject,
		"message_type", msg.MessageType,
	)
}

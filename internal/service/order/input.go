package order

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/kdtech/site-backend/internal/domain"
)

// OrderItemInput is one requested order line. TotalPrice is always
// recomputed server-side as Quantity × UnitPrice.
type OrderItemInput struct {
	ItemType        domain.ItemType
	ItemID          int64
	ItemName        string
	ItemDescription *string
	Quantity        int
	UnitPrice       float64
}

// CreateOrderInput holds the parameters for placing an order.
type CreateOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	CompanyName     *string
	BillingAddress  *string
	ShippingAddress *string
	OrderType       string
	PaymentMethod   *string
	Notes           *string
	Items           []OrderItemInput
}

// Validate checks all fields and collects all errors.
func (i CreateOrderInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.CustomerName) == "" {
		errs = append(errs, domain.FieldError{Field: "customer_name", Message: "required"})
	}
	if strings.TrimSpace(i.CustomerEmail) == "" {
		errs = append(errs, domain.FieldError{Field: "customer_email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.CustomerEmail); err != nil {
		errs = append(errs, domain.FieldError{Field: "customer_email", Message: "invalid email address"})
	}
	if strings.TrimSpace(i.OrderType) == "" {
		errs = append(errs, domain.FieldError{Field: "order_type", Message: "required"})
	}
	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "at least one item required"})
	}

	for idx, item := range i.Items {
		errs = append(errs, item.validate(idx)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i OrderItemInput) validate(idx int) []domain.FieldError {
	var errs []domain.FieldError
	prefix := fmt.Sprintf("items[%d].", idx)

	if !i.ItemType.IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + "item_type", Message: "must be product or service"})
	}
	if i.ItemID <= 0 {
		errs = append(errs, domain.FieldError{Field: prefix + "item_id", Message: "required"})
	}
	if strings.TrimSpace(i.ItemName) == "" {
		errs = append(errs, domain.FieldError{Field: prefix + "item_name", Message: "required"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: prefix + "quantity", Message: "must be positive"})
	}
	if i.UnitPrice < 0 {
		errs = append(errs, domain.FieldError{Field: prefix + "unit_price", Message: "must not be negative"})
	}
	return errs
}

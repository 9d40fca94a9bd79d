package domain

import "time"

// Order is a customer order. Its items are created atomically with the
// order row and deleted with it (ON DELETE CASCADE).
type Order struct {
	ID               int64         `db:"id" json:"id"`
	OrderNumber      string        `db:"order_number" json:"order_number"`
	CustomerName     string        `db:"customer_name" json:"customer_name"`
	CustomerEmail    string        `db:"customer_email" json:"customer_email"`
	CustomerPhone    *string       `db:"customer_phone" json:"customer_phone,omitempty"`
	CompanyName      *string       `db:"company_name" json:"company_name,omitempty"`
	BillingAddress   *string       `db:"billing_address" json:"billing_address,omitempty"`
	ShippingAddress  *string       `db:"shipping_address" json:"shipping_address,omitempty"`
	OrderType        string        `db:"order_type" json:"order_type"`
	Subtotal         float64       `db:"subtotal" json:"subtotal"`
	TaxAmount        float64       `db:"tax_amount" json:"tax_amount"`
	ShippingAmount   float64       `db:"shipping_amount" json:"shipping_amount"`
	TotalAmount      float64       `db:"total_amount" json:"total_amount"`
	Currency         string        `db:"currency" json:"currency"`
	OrderStatus      OrderStatus   `db:"order_status" json:"order_status"`
	PaymentStatus    PaymentStatus `db:"payment_status" json:"payment_status"`
	PaymentMethod    *string       `db:"payment_method" json:"payment_method,omitempty"`
	PaymentReference *string       `db:"payment_reference" json:"payment_reference,omitempty"`
	Notes            *string       `db:"notes" json:"notes,omitempty"`
	AdminNotes       *string       `db:"admin_notes" json:"admin_notes,omitempty"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at" json:"updated_at"`
}

// OrderItem is one line of an order. ItemType + ItemID form a tagged
// reference to either a Product or a Service.
type OrderItem struct {
	ID              int64    `db:"id" json:"id"`
	OrderID         int64    `db:"order_id" json:"order_id"`
	ItemType        ItemType `db:"item_type" json:"item_type"`
	ItemID          int64    `db:"item_id" json:"item_id"`
	ItemName        string   `db:"item_name" json:"item_name"`
	ItemDescription *string  `db:"item_description" json:"item_description,omitempty"`
	Quantity        int      `db:"quantity" json:"quantity"`
	UnitPrice       float64  `db:"unit_price" json:"unit_price"`
	TotalPrice      float64  `db:"total_price" json:"total_price"`
}

// OrderWithItems bundles an order with its line items for API responses.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// OrderTotals are the computed money fields of an order.
type OrderTotals struct {
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	ShippingAmount float64 `json:"shipping_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

// OrderStats are the aggregate order counters for the dashboard. Revenue
// figures only count orders whose payment status is paid.
type OrderStats struct {
	TotalOrders       int64   `db:"total_orders" json:"total_orders"`
	PendingOrders     int64   `db:"pending_orders" json:"pending_orders"`
	DeliveredOrders   int64   `db:"delivered_orders" json:"delivered_orders"`
	CancelledOrders   int64   `db:"cancelled_orders" json:"cancelled_orders"`
	TotalRevenue      float64 `db:"total_revenue" json:"total_revenue"`
	AverageOrderValue float64 `db:"average_order_value" json:"average_order_value"`
}

package domain

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// PaymentStatus represents the payment state of an order, independent of
// its fulfilment status.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string { return string(s) }

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed,
		PaymentStatusPartial, PaymentStatusRefunded:
		return true
	}
	return false
}

// ProjectStatus represents the delivery state of a portfolio project.
type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusInProgress, ProjectStatusOnHold:
		return true
	}
	return false
}

// CategoryType discriminates which catalog a category belongs to.
type CategoryType string

const (
	CategoryTypePortfolio CategoryType = "portfolio"
	CategoryTypeProduct   CategoryType = "product"
	CategoryTypeService   CategoryType = "service"
)

func (t CategoryType) String() string { return string(t) }

func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypePortfolio, CategoryTypeProduct, CategoryTypeService:
		return true
	}
	return false
}

// ItemType identifies what an order line refers to.
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

func (t ItemType) String() string { return string(t) }

func (t ItemType) IsValid() bool {
	return t == ItemTypeProduct || t == ItemTypeService
}

// EntityType identifies the kind of domain entity (used in activity logs).
type EntityType string

const (
	EntityTypeProject EntityType = "portfolio"
	EntityTypeProduct EntityType = "product"
	EntityTypeService EntityType = "service"
	EntityTypeOrder   EntityType = "order"
	EntityTypeQuote   EntityType = "quote"
	EntityTypeContact EntityType = "contact"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeProject, EntityTypeProduct, EntityTypeService, EntityTypeOrder, EntityTypeQuote, EntityTypeContact:
		return true
	}
	return false
}

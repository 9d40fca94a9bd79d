package domain

import "time"

// Product is a catalog item with inventory tracking.
// Specifications and GalleryImages are jsonb list columns.
type Product struct {
	ID               int64     `db:"id" json:"id"`
	CategoryID       *int64    `db:"category_id" json:"category_id,omitempty"`
	Name             string    `db:"name" json:"name"`
	Slug             string    `db:"slug" json:"slug"`
	SKU              string    `db:"sku" json:"sku"`
	ShortDescription string    `db:"short_description" json:"short_description"`
	FullDescription  *string   `db:"full_description" json:"full_description,omitempty"`
	Specifications   []string  `db:"specifications" json:"specifications"`
	Price            float64   `db:"price" json:"price"`
	SalePrice        *float64  `db:"sale_price" json:"sale_price,omitempty"`
	StockQuantity    int       `db:"stock_quantity" json:"stock_quantity"`
	MinStockLevel    int       `db:"min_stock_level" json:"min_stock_level"`
	ImageURL         *string   `db:"image_url" json:"image_url,omitempty"`
	GalleryImages    []string  `db:"gallery_images" json:"gallery_images"`
	IsFeatured       bool      `db:"is_featured" json:"is_featured"`
	IsActive         bool      `db:"is_active" json:"is_active"`
	SortOrder        int       `db:"sort_order" json:"sort_order"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// IsLowStock reports whether the product is at or below its reorder threshold.
func (p Product) IsLowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}

// DiscountPercentage returns the rounded sale discount, or 0 when the
// product is not on sale.
func (p Product) DiscountPercentage() int {
	if p.SalePrice == nil || *p.SalePrice <= 0 || p.Price <= 0 {
		return 0
	}
	return int((p.Price-*p.SalePrice)/p.Price*100 + 0.5)
}

// ProductWithCategory is a Product joined with its category's display fields.
type ProductWithCategory struct {
	Product
	CategoryName *string `db:"category_name" json:"category_name,omitempty"`
	CategorySlug *string `db:"category_slug" json:"category_slug,omitempty"`
}

// StockOperation selects how Product stock updates are applied.
type StockOperation string

const (
	StockOperationSet      StockOperation = "set"
	StockOperationAdd      StockOperation = "add"
	StockOperationSubtract StockOperation = "subtract"
)

func (o StockOperation) IsValid() bool {
	switch o {
	case StockOperationSet, StockOperationAdd, StockOperationSubtract:
		return true
	}
	return false
}

// ProductStats are the aggregate inventory counters for the dashboard.
type ProductStats struct {
	TotalProducts       int64   `db:"total_products" json:"total_products"`
	ActiveProducts      int64   `db:"active_products" json:"active_products"`
	FeaturedProducts    int64   `db:"featured_products" json:"featured_products"`
	LowStockProducts    int64   `db:"low_stock_products" json:"low_stock_products"`
	OutOfStockProducts  int64   `db:"out_of_stock_products" json:"out_of_stock_products"`
	AveragePrice        float64 `db:"average_price" json:"average_price"`
	TotalInventoryValue float64 `db:"total_inventory_value" json:"total_inventory_value"`
}

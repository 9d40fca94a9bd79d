package domain

import "time"

// Service is an offered service in the public catalog.
// Features is a jsonb list column.
type Service struct {
	ID               int64     `db:"id" json:"id"`
	CategoryID       *int64    `db:"category_id" json:"category_id,omitempty"`
	Title            string    `db:"title" json:"title"`
	Slug             string    `db:"slug" json:"slug"`
	ShortDescription string    `db:"short_description" json:"short_description"`
	FullDescription  *string   `db:"full_description" json:"full_description,omitempty"`
	Features         []string  `db:"features" json:"features"`
	PriceRange       *string   `db:"price_range" json:"price_range,omitempty"`
	ImageURL         *string   `db:"image_url" json:"image_url,omitempty"`
	IconClass        *string   `db:"icon_class" json:"icon_class,omitempty"`
	IsFeatured       bool      `db:"is_featured" json:"is_featured"`
	IsActive         bool      `db:"is_active" json:"is_active"`
	SortOrder        int       `db:"sort_order" json:"sort_order"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// ServiceWithCategory is a Service joined with its category's display fields.
type ServiceWithCategory struct {
	Service
	CategoryName *string `db:"category_name" json:"category_name,omitempty"`
	CategorySlug *string `db:"category_slug" json:"category_slug,omitempty"`
}

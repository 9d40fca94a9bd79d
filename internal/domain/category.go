package domain

import "time"

// Category groups projects, products, or services. It is referenced by
// catalog entities but never owned by them.
type Category struct {
	ID          int64        `db:"id" json:"id"`
	Type        CategoryType `db:"type" json:"type"`
	Name        string       `db:"name" json:"name"`
	Slug        string       `db:"slug" json:"slug"`
	Description *string      `db:"description" json:"description,omitempty"`
	IsActive    bool         `db:"is_active" json:"is_active"`
	SortOrder   int          `db:"sort_order" json:"sort_order"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

// Package category implements the category repository using PostgreSQL.
package category

import (
	"context"

	"github.com/kdtech/site-backend/internal/adapter/postgres"
	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const table = "categories"

var columns = []string{
	"id", "type", "name", "slug", "description",
	"is_active", "sort_order", "created_at", "updated_at",
}

var fillable = []string{
	"type", "name", "slug", "description", "is_active", "sort_order",
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	*record.Store[domain.Category]
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		Store: record.New[domain.Category](db, record.Config{
			Table:    table,
			Entity:   "category",
			Columns:  columns,
			Fillable: fillable,
		}),
	}
}

// ListByType returns the active categories of the given type in display order.
func (r *Repo) ListByType(ctx context.Context, t domain.CategoryType) ([]domain.Category, error) {
	return r.List(ctx, record.Conditions{
		"type":      t,
		"is_active": true,
	}, "sort_order ASC, name ASC", 0, 0)
}

// GetBySlug returns the category with the given slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	rows, err := r.List(ctx, record.Conditions{"slug": slug}, "", 1, 0)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}

// Package service implements the service-offering repository using PostgreSQL.
package service

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/kdtech/site-backend/internal/adapter/postgres"
	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const table = "services"

var columns = []string{
	"id", "category_id", "title", "slug", "short_description",
	"full_description", "features", "price_range", "image_url", "icon_class",
	"is_featured", "is_active", "sort_order", "created_at", "updated_at",
}

var fillable = []string{
	"category_id", "title", "slug", "short_description",
	"full_description", "features", "price_range", "image_url", "icon_class",
	"is_featured", "is_active", "sort_order",
}

// Repo provides service-offering persistence backed by PostgreSQL.
type Repo struct {
	*record.Store[domain.Service]
}

// New creates a new service repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		Store: record.New[domain.Service](db, record.Config{
			Table:    table,
			Entity:   "service",
			Columns:  columns,
			Fillable: fillable,
		}),
	}
}

const selectWithCategory = `
SELECT
    s.id, s.category_id, s.title, s.slug, s.short_description,
    s.full_description, s.features, s.price_range, s.image_url, s.icon_class,
    s.is_featured, s.is_active, s.sort_order, s.created_at, s.updated_at,
    c.name AS category_name, c.slug AS category_slug
FROM services s
LEFT JOIN categories c ON s.category_id = c.id`

const getBySlugSQL = selectWithCategory + `
WHERE s.slug = $1 AND s.is_active = TRUE
LIMIT 1`

const relatedSQL = selectWithCategory + `
WHERE s.is_active = TRUE
  AND s.id <> $1
  AND s.category_id = $2
ORDER BY random()
LIMIT $3`

// GetBySlug returns the active service with the given slug, joined with
// its category.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.ServiceWithCategory, error) {
	var row domain.ServiceWithCategory
	if err := r.Get(ctx, &row, getBySlugSQL, slug); err != nil {
		return nil, err
	}
	return &row, nil
}

// ListWithCategory returns services joined with category display fields.
func (r *Repo) ListWithCategory(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ServiceWithCategory, error) {
	query := record.Builder().
		Select(
			"s.id", "s.category_id", "s.title", "s.slug", "s.short_description",
			"s.full_description", "s.features", "s.price_range", "s.image_url", "s.icon_class",
			"s.is_featured", "s.is_active", "s.sort_order", "s.created_at", "s.updated_at",
			"c.name AS category_name", "c.slug AS category_slug",
		).
		From("services s").
		LeftJoin("categories c ON s.category_id = c.id")

	if len(conds) > 0 {
		qualified := make(map[string]any, len(conds))
		for col, v := range conds {
			qualified["s."+col] = v
		}
		query = query.Where(squirrel.Eq(qualified))
	}
	if orderBy != "" {
		query = query.OrderBy(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows := []domain.ServiceWithCategory{}
	if err := r.Select(ctx, &rows, sql, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// Related returns up to limit other active services in the same category,
// in random order.
func (r *Repo) Related(ctx context.Context, s *domain.Service, limit int) ([]domain.ServiceWithCategory, error) {
	rows := []domain.ServiceWithCategory{}
	if err := r.Select(ctx, &rows, relatedSQL, s.ID, s.CategoryID, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// Package project implements the portfolio project repository using
// PostgreSQL. It wraps the generic record store and adds category JOIN
// reads, related-project lookups, and aggregation queries.
package project

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/kdtech/site-backend/internal/adapter/postgres"
	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const table = "portfolio_projects"

var columns = []string{
	"id", "category_id", "title", "slug", "client_name", "project_type",
	"short_description", "full_description", "technologies", "project_url",
	"github_url", "image_url", "gallery_images", "start_date", "end_date",
	"project_status", "is_featured", "is_active", "sort_order",
	"created_at", "updated_at",
}

var fillable = []string{
	"category_id", "title", "slug", "client_name", "project_type",
	"short_description", "full_description", "technologies", "project_url",
	"github_url", "image_url", "gallery_images", "start_date", "end_date",
	"project_status", "is_featured", "is_active", "sort_order",
}

// Repo provides portfolio project persistence backed by PostgreSQL.
type Repo struct {
	*record.Store[domain.Project]
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		Store: record.New[domain.Project](db, record.Config{
			Table:    table,
			Entity:   "project",
			Columns:  columns,
			Fillable: fillable,
		}),
	}
}

// ---------------------------------------------------------------------------
// Raw SQL for JOIN and aggregation reads
// ---------------------------------------------------------------------------

const selectWithCategory = `
SELECT
    p.id, p.category_id, p.title, p.slug, p.client_name, p.project_type,
    p.short_description, p.full_description, p.technologies, p.project_url,
    p.github_url, p.image_url, p.gallery_images, p.start_date, p.end_date,
    p.project_status, p.is_featured, p.is_active, p.sort_order,
    p.created_at, p.updated_at,
    c.name AS category_name, c.slug AS category_slug
FROM portfolio_projects p
LEFT JOIN categories c ON p.category_id = c.id`

const getBySlugSQL = selectWithCategory + `
WHERE p.slug = $1 AND p.is_active = TRUE
LIMIT 1`

const relatedSQL = selectWithCategory + `
WHERE p.is_active = TRUE
  AND p.id <> $1
  AND (p.category_id = $2 OR p.project_type = $3)
ORDER BY random()
LIMIT $4`

const statsSQL = `
SELECT
    COUNT(*) AS total_projects,
    COUNT(*) FILTER (WHERE project_status = 'completed') AS completed_projects,
    COUNT(*) FILTER (WHERE project_status = 'in_progress') AS in_progress_projects,
    COUNT(*) FILTER (WHERE is_featured) AS featured_projects,
    COUNT(DISTINCT client_name) AS unique_clients,
    COUNT(DISTINCT project_type) AS project_types
FROM portfolio_projects
WHERE is_active = TRUE`

// GetBySlug returns the active project with the given slug, joined with its
// category. Returns domain.ErrNotFound when no such project exists.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.ProjectWithCategory, error) {
	var row domain.ProjectWithCategory
	if err := r.Get(ctx, &row, getBySlugSQL, slug); err != nil {
		return nil, err
	}
	return &row, nil
}

// ListWithCategory returns projects joined with category display fields
// under the generic condition semantics. Conditions refer to project
// columns and must be qualified by the caller only with known columns.
func (r *Repo) ListWithCategory(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ProjectWithCategory, error) {
	query := record.Builder().
		Select(
			"p.id", "p.category_id", "p.title", "p.slug", "p.client_name", "p.project_type",
			"p.short_description", "p.full_description", "p.technologies", "p.project_url",
			"p.github_url", "p.image_url", "p.gallery_images", "p.start_date", "p.end_date",
			"p.project_status", "p.is_featured", "p.is_active", "p.sort_order",
			"p.created_at", "p.updated_at",
			"c.name AS category_name", "c.slug AS category_slug",
		).
		From("portfolio_projects p").
		LeftJoin("categories c ON p.category_id = c.id")

	if len(conds) > 0 {
		qualified := make(map[string]any, len(conds))
		for col, v := range conds {
			qualified["p."+col] = v
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

	rows := []domain.ProjectWithCategory{}
	if err := r.Select(ctx, &rows, sql, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// Related returns up to limit other active projects sharing the project's
// category or type, in random order. This is a presentation convenience,
// not a recommendation engine.
func (r *Repo) Related(ctx context.Context, p *domain.Project, limit int) ([]domain.ProjectWithCategory, error) {
	rows := []domain.ProjectWithCategory{}
	if err := r.Select(ctx, &rows, relatedSQL, p.ID, p.CategoryID, p.ProjectType, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// Stats returns the portfolio aggregate counters in a single query.
func (r *Repo) Stats(ctx context.Context) (*domain.PortfolioStats, error) {
	var stats domain.PortfolioStats
	if err := r.Get(ctx, &stats, statsSQL); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Package product implements the product repository using PostgreSQL.
// It wraps the generic record store and adds category JOIN reads, SKU
// uniqueness checks, inventory queries, and aggregation queries.
package product

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/kdtech/site-backend/internal/adapter/postgres"
	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const table = "products"

var columns = []string{
	"id", "category_id", "name", "slug", "sku", "short_description",
	"full_description", "specifications", "price", "sale_price",
	"stock_quantity", "min_stock_level", "image_url", "gallery_images",
	"is_featured", "is_active", "sort_order", "created_at", "updated_at",
}

var fillable = []string{
	"category_id", "name", "slug", "sku", "short_description",
	"full_description", "specifications", "price", "sale_price",
	"stock_quantity", "min_stock_level", "image_url", "gallery_images",
	"is_featured", "is_active", "sort_order",
}

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	*record.Store[domain.Product]
}

// New creates a new product repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		Store: record.New[domain.Product](db, record.Config{
			Table:    table,
			Entity:   "product",
			Columns:  columns,
			Fillable: fillable,
		}),
	}
}

// ---------------------------------------------------------------------------
// Raw SQL for JOIN, search, and aggregation reads
// ---------------------------------------------------------------------------

const selectWithCategory = `
SELECT
    p.id, p.category_id, p.name, p.slug, p.sku, p.short_description,
    p.full_description, p.specifications, p.price, p.sale_price,
    p.stock_quantity, p.min_stock_level, p.image_url, p.gallery_images,
    p.is_featured, p.is_active, p.sort_order, p.created_at, p.updated_at,
    c.name AS category_name, c.slug AS category_slug
FROM products p
LEFT JOIN categories c ON p.category_id = c.id`

const getBySlugSQL = selectWithCategory + `
WHERE p.slug = $1 AND p.is_active = TRUE
LIMIT 1`

const searchSQL = selectWithCategory + `
WHERE p.is_active = TRUE
  AND (p.name ILIKE $1 OR p.short_description ILIKE $1 OR p.sku ILIKE $1 OR c.name ILIKE $1)
ORDER BY p.name ASC
LIMIT $2`

const relatedSQL = selectWithCategory + `
WHERE p.is_active = TRUE
  AND p.id <> $1
  AND p.category_id = $2
ORDER BY random()
LIMIT $3`

const lowStockSQL = `
SELECT
    id, category_id, name, slug, sku, short_description,
    full_description, specifications, price, sale_price,
    stock_quantity, min_stock_level, image_url, gallery_images,
    is_featured, is_active, sort_order, created_at, updated_at
FROM products
WHERE is_active = TRUE AND stock_quantity <= min_stock_level
ORDER BY stock_quantity ASC`

const statsSQL = `
SELECT
    COUNT(*) AS total_products,
    COUNT(*) FILTER (WHERE is_active) AS active_products,
    COUNT(*) FILTER (WHERE is_featured) AS featured_products,
    COUNT(*) FILTER (WHERE stock_quantity <= min_stock_level) AS low_stock_products,
    COUNT(*) FILTER (WHERE stock_quantity = 0) AS out_of_stock_products,
    COALESCE(AVG(price), 0) AS average_price,
    COALESCE(SUM(stock_quantity * price), 0) AS total_inventory_value
FROM products`

// GetBySlug returns the active product with the given slug, joined with
// its category. Returns domain.ErrNotFound when no such product exists.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.ProductWithCategory, error) {
	var row domain.ProductWithCategory
	if err := r.Get(ctx, &row, getBySlugSQL, slug); err != nil {
		return nil, err
	}
	return &row, nil
}

// ListWithCategory returns products joined with category display fields
// under the generic condition semantics.
func (r *Repo) ListWithCategory(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ProductWithCategory, error) {
	query := record.Builder().
		Select(
			"p.id", "p.category_id", "p.name", "p.slug", "p.sku", "p.short_description",
			"p.full_description", "p.specifications", "p.price", "p.sale_price",
			"p.stock_quantity", "p.min_stock_level", "p.image_url", "p.gallery_images",
			"p.is_featured", "p.is_active", "p.sort_order", "p.created_at", "p.updated_at",
			"c.name AS category_name", "c.slug AS category_slug",
		).
		From("products p").
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

	rows := []domain.ProductWithCategory{}
	if err := r.Select(ctx, &rows, sql, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// Search returns active products matching the query across name,
// description, SKU, and category name.
func (r *Repo) Search(ctx context.Context, q string, limit int) ([]domain.ProductWithCategory, error) {
	rows := []domain.ProductWithCategory{}
	if err := r.Select(ctx, &rows, searchSQL, "%"+q+"%", limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// Related returns up to limit other active products in the same category,
// in random order.
func (r *Repo) Related(ctx context.Context, p *domain.Product, limit int) ([]domain.ProductWithCategory, error) {
	rows := []domain.ProductWithCategory{}
	if err := r.Select(ctx, &rows, relatedSQL, p.ID, p.CategoryID, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// LowStock returns active products at or below their reorder threshold,
// most depleted first.
func (r *Repo) LowStock(ctx context.Context) ([]domain.Product, error) {
	rows := []domain.Product{}
	if err := r.Select(ctx, &rows, lowStockSQL); err != nil {
		return nil, err
	}
	return rows, nil
}

// SKUExists reports whether any product already uses the given SKU.
func (r *Repo) SKUExists(ctx context.Context, sku string) (bool, error) {
	return r.Exists(ctx, record.Conditions{"sku": sku})
}

// Stats returns the product aggregate counters in a single query.
func (r *Repo) Stats(ctx context.Context) (*domain.ProductStats, error) {
	var stats domain.ProductStats
	if err := r.Get(ctx, &stats, statsSQL); err != nil {
		return nil, err
	}
	return &stats, nil
}

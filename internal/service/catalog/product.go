package catalog

import (
	"context"
	"fmt"

	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const productOrder = "p.sort_order ASC, p.created_at DESC"

const defaultMinStockLevel = 5

// ProductDetail is a product with its related products attached.
type ProductDetail struct {
	domain.ProductWithCategory
	Related []domain.ProductWithCategory `json:"related"`
}

// ListProducts returns active products under the given filter plus the
// total matching count. A non-empty Search bypasses pagination and runs
// the ILIKE search capped at the configured search limit.
func (s *Service) ListProducts(ctx context.Context, filter ListFilter) ([]domain.ProductWithCategory, int64, error) {
	if filter.Search != "" {
		items, err := s.products.Search(ctx, filter.Search, s.cfg.SearchLimit)
		if err != nil {
			return nil, 0, fmt.Errorf("search products: %w", err)
		}
		return items, int64(len(items)), nil
	}

	page := s.normalizePage(filter.Page, filter.Limit)

	conds := record.Conditions{"is_active": true}
	if filter.CategoryID != nil {
		conds["category_id"] = *filter.CategoryID
	}
	if filter.Featured != nil {
		conds["is_featured"] = *filter.Featured
	}

	items, err := s.products.ListWithCategory(ctx, conds, productOrder, page.limit(), page.offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	total, err := s.products.Count(ctx, conds)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	return items, total, nil
}

// GetProductByID returns one product with category fields and up to the
// configured number of related products.
func (s *Service) GetProductByID(ctx context.Context, id int64) (*ProductDetail, error) {
	p, err := s.products.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.productDetail(ctx, &domain.ProductWithCategory{Product: *p})
}

// GetProductBySlug returns one active product by slug with related products.
func (s *Service) GetProductBySlug(ctx context.Context, slug string) (*ProductDetail, error) {
	p, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.productDetail(ctx, p)
}

func (s *Service) productDetail(ctx context.Context, p *domain.ProductWithCategory) (*ProductDetail, error) {
	related, err := s.products.Related(ctx, &p.Product, s.cfg.RelatedLimit)
	if err != nil {
		return nil, fmt.Errorf("related products: %w", err)
	}
	return &ProductDetail{ProductWithCategory: *p, Related: related}, nil
}

// CreateProduct validates the input, derives a unique slug and SKU when
// absent, applies defaults, and stores the product.
func (s *Service) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	slug := record.Slugify(input.Slug)
	if slug == "" {
		var err error
		slug, err = s.products.UniqueSlug(ctx, input.Name, 0)
		if err != nil {
			return nil, fmt.Errorf("derive slug: %w", err)
		}
	}

	sku := input.SKU
	if sku == "" {
		var err error
		sku, err = s.generateSKU(ctx, input.Name)
		if err != nil {
			return nil, fmt.Errorf("generate sku: %w", err)
		}
	}

	fields := record.Fields{
		"category_id":       input.CategoryID,
		"name":              input.Name,
		"slug":              slug,
		"sku":               sku,
		"short_description": input.ShortDescription,
		"full_description":  input.FullDescription,
		"specifications":    emptyIfNil(input.Specifications),
		"price":             input.Price,
		"sale_price":        input.SalePrice,
		"stock_quantity":    intOr(input.StockQuantity, 0),
		"min_stock_level":   intOr(input.MinStockLevel, defaultMinStockLevel),
		"image_url":         trimOrNil(input.ImageURL),
		"gallery_images":    emptyIfNil(input.GalleryImages),
		"is_featured":       boolOr(input.IsFeatured, false),
		"is_active":         boolOr(input.IsActive, true),
		"sort_order":        intOr(input.SortOrder, 0),
	}

	created, err := s.products.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.EntityTypeProduct, created.ID, "create", "product created: "+created.Name)
	return created, nil
}

// UpdateProduct applies the non-nil fields of input to an existing product.
func (s *Service) UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := record.Fields{}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}
	if input.Name != nil {
		fields["name"] = *input.Name
		slug, err := s.products.UniqueSlug(ctx, *input.Name, id)
		if err != nil {
			return nil, fmt.Errorf("derive slug: %w", err)
		}
		fields["slug"] = slug
	}
	if input.ShortDescription != nil {
		fields["short_description"] = *input.ShortDescription
	}
	if input.FullDescription != nil {
		fields["full_description"] = input.FullDescription
	}
	if input.Specifications != nil {
		fields["specifications"] = input.Specifications
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.SalePrice != nil {
		fields["sale_price"] = input.SalePrice
	}
	if input.StockQuantity != nil {
		fields["stock_quantity"] = *input.StockQuantity
	}
	if input.MinStockLevel != nil {
		fields["min_stock_level"] = *input.MinStockLevel
	}
	if input.ImageURL != nil {
		fields["image_url"] = trimOrNil(input.ImageURL)
	}
	if input.GalleryImages != nil {
		fields["gallery_images"] = input.GalleryImages
	}
	if input.IsFeatured != nil {
		fields["is_featured"] = *input.IsFeatured
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if input.SortOrder != nil {
		fields["sort_order"] = *input.SortOrder
	}

	if len(fields) == 0 {
		return nil, domain.NewValidationError("fields", "nothing to update")
	}

	updated, err := s.products.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.EntityTypeProduct, id, "update", "product updated: "+updated.Name)
	return updated, nil
}

// DeleteProduct removes a product.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, domain.EntityTypeProduct, id, "delete", "product deleted")
	return nil
}

// UpdateStock applies a stock operation to a product. The resulting
// quantity never goes below zero.
func (s *Service) UpdateStock(ctx context.Context, id int64, op domain.StockOperation, quantity int) (*domain.Product, error) {
	if !op.IsValid() {
		return nil, domain.NewValidationError("operation", "must be one of set, add, subtract")
	}
	if quantity < 0 {
		return nil, domain.NewValidationError("quantity", "must not be negative")
	}

	p, err := s.products.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	next := p.StockQuantity
	switch op {
	case domain.StockOperationSet:
		next = quantity
	case domain.StockOperationAdd:
		next += quantity
	case domain.StockOperationSubtract:
		next -= quantity
	}
	if next < 0 {
		next = 0
	}

	updated, err := s.products.Update(ctx, id, record.Fields{"stock_quantity": next})
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.EntityTypeProduct, id, "stock_update",
		fmt.Sprintf("stock %s %d: %d -> %d", op, quantity, p.StockQuantity, next))
	return updated, nil
}

// LowStockProducts returns active products at or below their reorder
// threshold.
func (s *Service) LowStockProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.LowStock(ctx)
}

// ProductStats returns the product dashboard counters.
func (s *Service) ProductStats(ctx context.Context) (*domain.ProductStats, error) {
	return s.products.Stats(ctx)
}

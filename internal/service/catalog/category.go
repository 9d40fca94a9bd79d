package catalog

import (
	"context"

	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const categoryOrder = "sort_order ASC, name ASC"

// ListCategories returns active categories, optionally restricted to one
// catalog type.
func (s *Service) ListCategories(ctx context.Context, categoryType string) ([]domain.Category, error) {
	if categoryType == "" {
		return s.categories.List(ctx, record.Conditions{"is_active": true}, categoryOrder, 0, 0)
	}

	t := domain.CategoryType(categoryType)
	if !t.IsValid() {
		return nil, domain.NewValidationError("type", "must be one of portfolio, product, service")
	}
	return s.categories.ListByType(ctx, t)
}

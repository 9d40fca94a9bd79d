package catalog

import (
	"context"
	"fmt"

	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const serviceOrder = "s.sort_order ASC, s.created_at DESC"

// ServiceDetail is a service offering with its related offerings attached.
type ServiceDetail struct {
	domain.ServiceWithCategory
	Related []domain.ServiceWithCategory `json:"related"`
}

// ListServices returns active service offerings under the given filter.
func (s *Service) ListServices(ctx context.Context, filter ListFilter) ([]domain.ServiceWithCategory, int64, error) {
	page := s.normalizePage(filter.Page, filter.Limit)

	conds := record.Conditions{"is_active": true}
	if filter.CategoryID != nil {
		conds["category_id"] = *filter.CategoryID
	}
	if filter.Featured != nil {
		conds["is_featured"] = *filter.Featured
	}

	items, err := s.services.ListWithCategory(ctx, conds, serviceOrder, page.limit(), page.offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list services: %w", err)
	}

	total, err := s.services.Count(ctx, conds)
	if err != nil {
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	return items, total, nil
}

// GetServiceByID returns one service offering with related offerings.
func (s *Service) GetServiceByID(ctx context.Context, id int64) (*ServiceDetail, error) {
	svc, err := s.services.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.serviceDetail(ctx, &domain.ServiceWithCategory{Service: *svc})
}

// GetServiceBySlug returns one active service offering by slug.
func (s *Service) GetServiceBySlug(ctx context.Context, slug string) (*ServiceDetail, error) {
	svc, err := s.services.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.serviceDetail(ctx, svc)
}

func (s *Service) serviceDetail(ctx context.Context, svc *domain.ServiceWithCategory) (*ServiceDetail, error) {
	related, err := s.services.Related(ctx, &svc.Service, s.cfg.RelatedLimit)
	if err != nil {
		return nil, fmt.Errorf("related services: %w", err)
	}
	return &ServiceDetail{ServiceWithCategory: *svc, Related: related}, nil
}

// CreateService validates the input, derives a unique slug when none is
// supplied, applies defaults, and stores the offering.
func (s *Service) CreateService(ctx context.Context, input CreateServiceInput) (*domain.Service, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	slug := record.Slugify(input.Slug)
	if slug == "" {
		var err error
		slug, err = s.services.UniqueSlug(ctx, input.Title, 0)
		if err != nil {
			return nil, fmt.Errorf("derive slug: %w", err)
		}
	}

	fields := record.Fields{
		"category_id":       input.CategoryID,
		"title":             input.Title,
		"slug":              slug,
		"short_description": input.ShortDescription,
		"full_description":  input.FullDescription,
		"features":          emptyIfNil(input.Features),
		"price_range":       trimOrNil(input.PriceRange),
		"image_url":         trimOrNil(input.ImageURL),
		"icon_class":        trimOrNil(input.IconClass),
		"is_featured":       boolOr(input.IsFeatured, false),
		"is_active":         boolOr(input.IsActive, true),
		"sort_order":        intOr(input.SortOrder, 0),
	}

	created, err := s.services.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.EntityTypeService, created.ID, "create", "service created: "+created.Title)
	return created, nil
}

// UpdateService applies the non-nil fields of input to an existing offering.
func (s *Service) UpdateService(ctx context.Context, id int64, input UpdateServiceInput) (*domain.Service, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := record.Fields{}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}
	if input.Title != nil {
		fields["title"] = *input.Title
		slug, err := s.services.UniqueSlug(ctx, *input.Title, id)
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
	if input.Features != nil {
		fields["features"] = input.Features
	}
	if input.PriceRange != nil {
		fields["price_range"] = trimOrNil(input.PriceRange)
	}
	if input.ImageURL != nil {
		fields["image_url"] = trimOrNil(input.ImageURL)
	}
	if input.IconClass != nil {
		fields["icon_class"] = trimOrNil(input.IconClass)
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

	updated, err := s.services.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.EntityTypeService, id, "update", "service updated: "+updated.Title)
	return updated, nil
}

// DeleteService removes a service offering.
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if err := s.services.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, domain.EntityTypeService, id, "delete", "service deleted")
	return nil
}

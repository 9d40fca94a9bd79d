// Package catalog implements the public catalog business logic: portfolio
// projects, products, service offerings, and their categories.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/config"
	"github.com/kdtech/site-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type projectRepo interface {
	Find(ctx context.Context, id int64) (*domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.ProjectWithCategory, error)
	ListWithCategory(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ProjectWithCategory, error)
	Related(ctx context.Context, p *domain.Project, limit int) ([]domain.ProjectWithCategory, error)
	Create(ctx context.Context, fields record.Fields) (*domain.Project, error)
	Update(ctx context.Context, id int64, fields record.Fields) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, conds record.Conditions) (int64, error)
	UniqueSlug(ctx context.Context, title string, excludeID int64) (string, error)
	Stats(ctx context.Context) (*domain.PortfolioStats, error)
}

type productRepo interface {
	Find(ctx context.Context, id int64) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.ProductWithCategory, error)
	ListWithCategory(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ProductWithCategory, error)
	Related(ctx context.Context, p *domain.Product, limit int) ([]domain.ProductWithCategory, error)
	Search(ctx context.Context, q string, limit int) ([]domain.ProductWithCategory, error)
	LowStock(ctx context.Context) ([]domain.Product, error)
	SKUExists(ctx context.Context, sku string) (bool, error)
	Create(ctx context.Context, fields record.Fields) (*domain.Product, error)
	Update(ctx context.Context, id int64, fields record.Fields) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, conds record.Conditions) (int64, error)
	UniqueSlug(ctx context.Context, title string, excludeID int64) (string, error)
	Stats(ctx context.Context) (*domain.ProductStats, error)
}

type serviceRepo interface {
	Find(ctx context.Context, id int64) (*domain.Service, error)
	GetBySlug(ctx context.Context, slug string) (*domain.ServiceWithCategory, error)
	ListWithCategory(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ServiceWithCategory, error)
	Related(ctx context.Context, s *domain.Service, limit int) ([]domain.ServiceWithCategory, error)
	Create(ctx context.Context, fields record.Fields) (*domain.Service, error)
	Update(ctx context.Context, id int64, fields record.Fields) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, conds record.Conditions) (int64, error)
	UniqueSlug(ctx context.Context, title string, excludeID int64) (string, error)
}

type categoryRepo interface {
	ListByType(ctx context.Context, t domain.CategoryType) ([]domain.Category, error)
	List(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.Category, error)
}

type auditSink interface {
	Log(ctx context.Context, entityType domain.EntityType, entityID int64, action, description string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the catalog business logic.
type Service struct {
	log        *slog.Logger
	cfg        config.CatalogConfig
	projects   projectRepo
	products   productRepo
	services   serviceRepo
	categories categoryRepo
	audit      auditSink
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	cfg config.CatalogConfig,
	projects projectRepo,
	products productRepo,
	services serviceRepo,
	categories categoryRepo,
	audit auditSink,
) *Service {
	return &Service{
		log:        log.With("service", "catalog"),
		cfg:        cfg,
		projects:   projects,
		products:   products,
		services:   services,
		categories: categories,
		audit:      audit,
	}
}

// record appends one activity row. Audit failures are logged, never
// returned: the parent mutation has already succeeded.
func (s *Service) record(ctx context.Context, entityType domain.EntityType, entityID int64, action, description string) {
	if err := s.audit.Log(ctx, entityType, entityID, action, description); err != nil {
		s.log.WarnContext(ctx, "activity log write failed",
			"entity_type", entityType, "entity_id", entityID, "action", action, "error", err)
	}
}

// Page is a normalized listing window.
type Page struct {
	Number int
	Size   int
}

// NormalizePage clamps page/limit to the configured bounds. The transport
// layer uses it to report the window actually served.
func (s *Service) NormalizePage(page, limit int) Page {
	return s.normalizePage(page, limit)
}

// normalizePage clamps page/limit to the configured bounds.
func (s *Service) normalizePage(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}
	return Page{Number: page, Size: limit}
}

func (p Page) limit() uint64  { return uint64(p.Size) }
func (p Page) offset() uint64 { return uint64(p.Number-1) * uint64(p.Size) }

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

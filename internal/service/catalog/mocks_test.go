package catalog

// Manual mocks (moq-style with func fields). Methods without a configured
// func fall back to benign defaults.

import (
	"context"

	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// projectRepo mock
// ---------------------------------------------------------------------------

type mockProjectRepo struct {
	FindFunc             func(ctx context.Context, id int64) (*domain.Project, error)
	GetBySlugFunc        func(ctx context.Context, slug string) (*domain.ProjectWithCategory, error)
	ListWithCategoryFunc func(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ProjectWithCategory, error)
	RelatedFunc          func(ctx context.Context, p *domain.Project, limit int) ([]domain.ProjectWithCategory, error)
	CreateFunc           func(ctx context.Context, fields record.Fields) (*domain.Project, error)
	UpdateFunc           func(ctx context.Context, id int64, fields record.Fields) (*domain.Project, error)
	DeleteFunc           func(ctx context.Context, id int64) error
	CountFunc            func(ctx context.Context, conds record.Conditions) (int64, error)
	UniqueSlugFunc       func(ctx context.Context, title string, excludeID int64) (string, error)
	StatsFunc            func(ctx context.Context) (*domain.PortfolioStats, error)
}

func (m *mockProjectRepo) Find(ctx context.Context, id int64) (*domain.Project, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockProjectRepo) GetBySlug(ctx context.Context, slug string) (*domain.ProjectWithCategory, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockProjectRepo) ListWithCategory(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ProjectWithCategory, error) {
	if m.ListWithCategoryFunc != nil {
		return m.ListWithCategoryFunc(ctx, conds, orderBy, limit, offset)
	}
	return []domain.ProjectWithCategory{}, nil
}

func (m *mockProjectRepo) Related(ctx context.Context, p *domain.Project, limit int) ([]domain.ProjectWithCategory, error) {
	if m.RelatedFunc != nil {
		return m.RelatedFunc(ctx, p, limit)
	}
	return []domain.ProjectWithCategory{}, nil
}

func (m *mockProjectRepo) Create(ctx context.Context, fields record.Fields) (*domain.Project, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fields)
	}
	return &domain.Project{ID: 1}, nil
}

func (m *mockProjectRepo) Update(ctx context.Context, id int64, fields record.Fields) (*domain.Project, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return &domain.Project{ID: id}, nil
}

func (m *mockProjectRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectRepo) Count(ctx context.Context, conds record.Conditions) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, conds)
	}
	return 0, nil
}

func (m *mockProjectRepo) UniqueSlug(ctx context.Context, title string, excludeID int64) (string, error) {
	if m.UniqueSlugFunc != nil {
		return m.UniqueSlugFunc(ctx, title, excludeID)
	}
	return record.Slugify(title), nil
}

func (m *mockProjectRepo) Stats(ctx context.Context) (*domain.PortfolioStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &domain.PortfolioStats{}, nil
}

// ---------------------------------------------------------------------------
// productRepo mock
// ---------------------------------------------------------------------------

type mockProductRepo struct {
	FindFunc             func(ctx context.Context, id int64) (*domain.Product, error)
	GetBySlugFunc        func(ctx context.Context, slug string) (*domain.ProductWithCategory, error)
	ListWithCategoryFunc func(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ProductWithCategory, error)
	RelatedFunc          func(ctx context.Context, p *domain.Product, limit int) ([]domain.ProductWithCategory, error)
	SearchFunc           func(ctx context.Context, q string, limit int) ([]domain.ProductWithCategory, error)
	LowStockFunc         func(ctx context.Context) ([]domain.Product, error)
	SKUExistsFunc        func(ctx context.Context, sku string) (bool, error)
	CreateFunc           func(ctx context.Context, fields record.Fields) (*domain.Product, error)
	UpdateFunc           func(ctx context.Context, id int64, fields record.Fields) (*domain.Product, error)
	DeleteFunc           func(ctx context.Context, id int64) error
	CountFunc            func(ctx context.Context, conds record.Conditions) (int64, error)
	UniqueSlugFunc       func(ctx context.Context, title string, excludeID int64) (string, error)
	StatsFunc            func(ctx context.Context) (*domain.ProductStats, error)
}

func (m *mockProductRepo) Find(ctx context.Context, id int64) (*domain.Product, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockProductRepo) GetBySlug(ctx context.Context, slug string) (*domain.ProductWithCategory, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockProductRepo) ListWithCategory(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ProductWithCategory, error) {
	if m.ListWithCategoryFunc != nil {
		return m.ListWithCategoryFunc(ctx, conds, orderBy, limit, offset)
	}
	return []domain.ProductWithCategory{}, nil
}

func (m *mockProductRepo) Related(ctx context.Context, p *domain.Product, limit int) ([]domain.ProductWithCategory, error) {
	if m.RelatedFunc != nil {
		return m.RelatedFunc(ctx, p, limit)
	}
	return []domain.ProductWithCategory{}, nil
}

func (m *mockProductRepo) Search(ctx context.Context, q string, limit int) ([]domain.ProductWithCategory, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, q, limit)
	}
	return []domain.ProductWithCategory{}, nil
}

func (m *mockProductRepo) LowStock(ctx context.Context) ([]domain.Product, error) {
	if m.LowStockFunc != nil {
		return m.LowStockFunc(ctx)
	}
	return []domain.Product{}, nil
}

func (m *mockProductRepo) SKUExists(ctx context.Context, sku string) (bool, error) {
	if m.SKUExistsFunc != nil {
		return m.SKUExistsFunc(ctx, sku)
	}
	return false, nil
}

func (m *mockProductRepo) Create(ctx context.Context, fields record.Fields) (*domain.Product, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fields)
	}
	return &domain.Product{ID: 1}, nil
}

func (m *mockProductRepo) Update(ctx context.Context, id int64, fields record.Fields) (*domain.Product, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return &domain.Product{ID: id}, nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProductRepo) Count(ctx context.Context, conds record.Conditions) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, conds)
	}
	return 0, nil
}

func (m *mockProductRepo) UniqueSlug(ctx context.Context, title string, excludeID int64) (string, error) {
	if m.UniqueSlugFunc != nil {
		return m.UniqueSlugFunc(ctx, title, excludeID)
	}
	return record.Slugify(title), nil
}

func (m *mockProductRepo) Stats(ctx context.Context) (*domain.ProductStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &domain.ProductStats{}, nil
}

// ---------------------------------------------------------------------------
// serviceRepo mock
// ---------------------------------------------------------------------------

type mockServiceRepo struct {
	FindFunc             func(ctx context.Context, id int64) (*domain.Service, error)
	GetBySlugFunc        func(ctx context.Context, slug string) (*domain.ServiceWithCategory, error)
	ListWithCategoryFunc func(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ServiceWithCategory, error)
	RelatedFunc          func(ctx context.Context, s *domain.Service, limit int) ([]domain.ServiceWithCategory, error)
	CreateFunc           func(ctx context.Context, fields record.Fields) (*domain.Service, error)
	UpdateFunc           func(ctx context.Context, id int64, fields record.Fields) (*domain.Service, error)
	DeleteFunc           func(ctx context.Context, id int64) error
	CountFunc            func(ctx context.Context, conds record.Conditions) (int64, error)
	UniqueSlugFunc       func(ctx context.Context, title string, excludeID int64) (string, error)
}

func (m *mockServiceRepo) Find(ctx context.Context, id int64) (*domain.Service, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockServiceRepo) GetBySlug(ctx context.Context, slug string) (*domain.ServiceWithCategory, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockServiceRepo) ListWithCategory(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ServiceWithCategory, error) {
	if m.ListWithCategoryFunc != nil {
		return m.ListWithCategoryFunc(ctx, conds, orderBy, limit, offset)
	}
	return []domain.ServiceWithCategory{}, nil
}

func (m *mockServiceRepo) Related(ctx context.Context, s *domain.Service, limit int) ([]domain.ServiceWithCategory, error) {
	if m.RelatedFunc != nil {
		return m.RelatedFunc(ctx, s, limit)
	}
	return []domain.ServiceWithCategory{}, nil
}

func (m *mockServiceRepo) Create(ctx context.Context, fields record.Fields) (*domain.Service, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fields)
	}
	return &domain.Service{ID: 1}, nil
}

func (m *mockServiceRepo) Update(ctx context.Context, id int64, fields record.Fields) (*domain.Service, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return &domain.Service{ID: id}, nil
}

func (m *mockServiceRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockServiceRepo) Count(ctx context.Context, conds record.Conditions) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, conds)
	}
	return 0, nil
}

func (m *mockServiceRepo) UniqueSlug(ctx context.Context, title string, excludeID int64) (string, error) {
	if m.UniqueSlugFunc != nil {
		return m.UniqueSlugFunc(ctx, title, excludeID)
	}
	return record.Slugify(title), nil
}

// ---------------------------------------------------------------------------
// categoryRepo / auditSink mocks
// ---------------------------------------------------------------------------

type mockCategoryRepo struct {
	ListByTypeFunc func(ctx context.Context, t domain.CategoryType) ([]domain.Category, error)
	ListFunc       func(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.Category, error)
}

func (m *mockCategoryRepo) ListByType(ctx context.Context, t domain.CategoryType) ([]domain.Category, error) {
	if m.ListByTypeFunc != nil {
		return m.ListByTypeFunc(ctx, t)
	}
	return []domain.Category{}, nil
}

func (m *mockCategoryRepo) List(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, conds, orderBy, limit, offset)
	}
	return []domain.Category{}, nil
}

type mockAuditSink struct {
	LogFunc func(ctx context.Context, entityType domain.EntityType, entityID int64, action, description string) error
	calls   []string
}

func (m *mockAuditSink) Log(ctx context.Context, entityType domain.EntityType, entityID int64, action, description string) error {
	m.calls = append(m.calls, string(entityType)+":"+action)
	if m.LogFunc != nil {
		return m.LogFunc(ctx, entityType, entityID, action, description)
	}
	return nil
}

package order

import (
	"context"
	"sync"

	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// orderRepo mock
// ---------------------------------------------------------------------------

type mockOrderRepo struct {
	FindFunc         func(ctx context.Context, id int64) (*domain.Order, error)
	GetByNumberFunc  func(ctx context.Context, number string) (*domain.Order, error)
	NumberExistsFunc func(ctx context.Context, number string) (bool, error)
	GetWithItemsFunc func(ctx context.Context, id int64) (*domain.OrderWithItems, error)
	ListByEmailFunc  func(ctx context.Context, email string, limit, offset uint64) ([]domain.Order, error)
	ListByStatusFunc func(ctx context.Context, status domain.OrderStatus, limit, offset uint64) ([]domain.Order, error)
	RecentFunc       func(ctx context.Context, limit uint64) ([]domain.Order, error)
	SearchFunc       func(ctx context.Context, q string, limit int) ([]domain.Order, error)
	CreateFunc       func(ctx context.Context, fields record.Fields) (*domain.Order, error)
	UpdateFunc       func(ctx context.Context, id int64, fields record.Fields) (*domain.Order, error)
	StatsFunc        func(ctx context.Context) (*domain.OrderStats, error)
}

func (m *mockOrderRepo) Find(ctx context.Context, id int64) (*domain.Order, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockOrderRepo) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, domain.ErrNotFound
}

func (m *mockOrderRepo) NumberExists(ctx context.Context, number string) (bool, error) {
	if m.NumberExistsFunc != nil {
		return m.NumberExistsFunc(ctx, number)
	}
	return false, nil
}

func (m *mockOrderRepo) GetWithItems(ctx context.Context, id int64) (*domain.OrderWithItems, error) {
	if m.GetWithItemsFunc != nil {
		return m.GetWithItemsFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockOrderRepo) ListByEmail(ctx context.Context, email string, limit, offset uint64) ([]domain.Order, error) {
	if m.ListByEmailFunc != nil {
		return m.ListByEmailFunc(ctx, email, limit, offset)
	}
	return []domain.Order{}, nil
}

func (m *mockOrderRepo) ListByStatus(ctx context.Context, status domain.OrderStatus, limit, offset uint64) ([]domain.Order, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status, limit, offset)
	}
	return []domain.Order{}, nil
}

func (m *mockOrderRepo) Recent(ctx context.Context, limit uint64) ([]domain.Order, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, limit)
	}
	return []domain.Order{}, nil
}

func (m *mockOrderRepo) Search(ctx context.Context, q string, limit int) ([]domain.Order, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, q, limit)
	}
	return []domain.Order{}, nil
}

func (m *mockOrderRepo) Create(ctx context.Context, fields record.Fields) (*domain.Order, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fields)
	}
	return &domain.Order{ID: 1}, nil
}

func (m *mockOrderRepo) Update(ctx context.Context, id int64, fields record.Fields) (*domain.Order, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return &domain.Order{ID: id}, nil
}

func (m *mockOrderRepo) Stats(ctx context.Context) (*domain.OrderStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &domain.OrderStats{}, nil
}

// ---------------------------------------------------------------------------
// itemStore mock
// ---------------------------------------------------------------------------

type mockItemStore struct {
	CreateFunc func(ctx context.Context, fields record.Fields) (*domain.OrderItem, error)

	mu      sync.Mutex
	created []record.Fields
}

func (m *mockItemStore) Create(ctx context.Context, fields record.Fields) (*domain.OrderItem, error) {
	m.mu.Lock()
	m.created = append(m.created, fields)
	n := len(m.created)
	m.mu.Unlock()

	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fields)
	}
	return &domain.OrderItem{ID: int64(n)}, nil
}

// ---------------------------------------------------------------------------
// auditSink mock
// ---------------------------------------------------------------------------

type mockAuditSink struct {
	LogFunc func(ctx context.Context, entityType domain.EntityType, entityID int64, action, description string) error

	mu      sync.Mutex
	entries []string
}

func (m *mockAuditSink) Log(ctx context.Context, entityType domain.EntityType, entityID int64, action, description string) error {
	m.mu.Lock()
	m.entries = append(m.entries, string(entityType)+":"+action)
	m.mu.Unlock()

	if m.LogFunc != nil {
		return m.LogFunc(ctx, entityType, entityID, action, description)
	}
	return nil
}

// ---------------------------------------------------------------------------
// txManager mock
// ---------------------------------------------------------------------------

// mockTxManager runs the callback directly and remembers whether it
// returned an error, standing in for commit vs rollback.
type mockTxManager struct {
	began      int
	committed  int
	rolledBack int
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.began++
	if err := fn(ctx); err != nil {
		m.rolledBack++
		return err
	}
	m.committed++
	return nil
}

// ---------------------------------------------------------------------------
// notifier mock
// ---------------------------------------------------------------------------

type mockNotifier struct {
	mu            sync.Mutex
	placed        []string
	statusChanges []string
}

func (m *mockNotifier) OrderPlaced(ctx context.Context, o *domain.OrderWithItems) {
	m.mu.Lock()
	m.placed = append(m.placed, o.OrderNumber)
	m.mu.Unlock()
}

func (m *mockNotifier) OrderStatusChanged(ctx context.Context, o *domain.Order, from domain.OrderStatus) {
	m.mu.Lock()
	m.statusChanges = append(m.statusChanges, string(from)+"->"+string(o.OrderStatus))
	m.mu.Unlock()
}

func (m *mockNotifier) QuoteRequested(ctx context.Context, q *domain.Quote)          {}
func (m *mockNotifier) ContactReceived(ctx context.Context, c *domain.ContactMessage) {}

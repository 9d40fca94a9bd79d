// Package order implements the order workflow: atomic order intake with
// server-side totals, status transitions, and order queries.
package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/config"
	"github.com/kdtech/site-backend/internal/domain"
	"github.com/kdtech/site-backend/internal/notify"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type orderRepo interface {
	Find(ctx context.Context, id int64) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	NumberExists(ctx context.Context, number string) (bool, error)
	GetWithItems(ctx context.Context, id int64) (*domain.OrderWithItems, error)
	ListByEmail(ctx context.Context, email string, limit, offset uint64) ([]domain.Order, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus, limit, offset uint64) ([]domain.Order, error)
	Recent(ctx context.Context, limit uint64) ([]domain.Order, error)
	Search(ctx context.Context, q string, limit int) ([]domain.Order, error)
	Create(ctx context.Context, fields record.Fields) (*domain.Order, error)
	Update(ctx context.Context, id int64, fields record.Fields) (*domain.Order, error)
	Stats(ctx context.Context) (*domain.OrderStats, error)
}

type itemStore interface {
	Create(ctx context.Context, fields record.Fields) (*domain.OrderItem, error)
}

type auditSink interface {
	Log(ctx context.Context, entityType domain.EntityType, entityID int64, action, description string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the order business logic.
type Service struct {
	log      *slog.Logger
	cfg      config.OrderConfig
	orders   orderRepo
	items    itemStore
	audit    auditSink
	tx       txManager
	notifier notify.Notifier
	now      func() time.Time
}

// NewService creates a new order service.
func NewService(
	log *slog.Logger,
	cfg config.OrderConfig,
	orders orderRepo,
	items itemStore,
	audit auditSink,
	tx txManager,
	notifier notify.Notifier,
) *Service {
	return &Service{
		log:      log.With("service", "order"),
		cfg:      cfg,
		orders:   orders,
		items:    items,
		audit:    audit,
		tx:       tx,
		notifier: notifier,
		now:      time.Now,
	}
}

// record appends one activity row. Audit failures are logged, never
// returned.
func (s *Service) record(ctx context.Context, entityID int64, action, description string) {
	if err := s.audit.Log(ctx, domain.EntityTypeOrder, entityID, action, description); err != nil {
		s.log.WarnContext(ctx, "activity log write failed",
			"entity_id", entityID, "action", action, "error", err)
	}
}

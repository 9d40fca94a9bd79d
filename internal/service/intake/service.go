// Package intake handles the public submission flows: quote requests and
// contact messages.
package intake

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

type quoteRepo interface {
	Find(ctx context.Context, id int64) (*domain.Quote, error)
	NumberExists(ctx context.Context, number string) (bool, error)
	Create(ctx context.Context, fields record.Fields) (*domain.Quote, error)
	Recent(ctx context.Context, limit uint64) ([]domain.Quote, error)
	List(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.Quote, error)
	Count(ctx context.Context, conds record.Conditions) (int64, error)
}

type contactRepo interface {
	Find(ctx context.Context, id int64) (*domain.ContactMessage, error)
	Create(ctx context.Context, fields record.Fields) (*domain.ContactMessage, error)
	Recent(ctx context.Context, limit uint64) ([]domain.ContactMessage, error)
	List(ctx context.Context, conds record.Conditions, orderBy string, limit, offset uint64) ([]domain.ContactMessage, error)
	Count(ctx context.Context, conds record.Conditions) (int64, error)
}

type auditSink interface {
	Log(ctx context.Context, entityType domain.EntityType, entityID int64, action, description string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the quote and contact submission logic.
type Service struct {
	log      *slog.Logger
	cfg      config.OrderConfig
	quotes   quoteRepo
	contacts contactRepo
	audit    auditSink
	notifier notify.Notifier
	now      func() time.Time
}

// NewService creates a new intake service. The order config supplies the
// quote number prefix and retry budget.
func NewService(
	log *slog.Logger,
	cfg config.OrderConfig,
	quotes quoteRepo,
	contacts contactRepo,
	audit auditSink,
	notifier notify.Notifier,
) *Service {
	return &Service{
		log:      log.With("service", "intake"),
		cfg:      cfg,
		quotes:   quotes,
		contacts: contacts,
		audit:    audit,
		notifier: notifier,
		now:      time.Now,
	}
}

// record appends one activity row. Audit failures are logged, never
// returned.
func (s *Service) record(ctx context.Context, entityType domain.EntityType, entityID int64, action, description string) {
	if err := s.audit.Log(ctx, entityType, entityID, action, description); err != nil {
		s.log.WarnContext(ctx, "activity log write failed",
			"entity_type", entityType, "entity_id", entityID, "action", action, "error", err)
	}
}

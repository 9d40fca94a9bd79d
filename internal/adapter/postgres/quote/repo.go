// Package quote implements the quote-request repository using PostgreSQL.
package quote

import (
	"context"

	"github.com/kdtech/site-backend/internal/adapter/postgres"
	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const table = "quote_requests"

var columns = []string{
	"id", "quote_number", "customer_name", "customer_email", "customer_phone",
	"company_name", "service_type", "project_description", "requirements",
	"budget_range", "timeline", "created_at", "updated_at",
}

var fillable = []string{
	"quote_number", "customer_name", "customer_email", "customer_phone",
	"company_name", "service_type", "project_description", "requirements",
	"budget_range", "timeline",
}

// Repo provides quote-request persistence backed by PostgreSQL.
type Repo struct {
	*record.Store[domain.Quote]
}

// New creates a new quote repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		Store: record.New[domain.Quote](db, record.Config{
			Table:    table,
			Entity:   "quote",
			Columns:  columns,
			Fillable: fillable,
		}),
	}
}

// NumberExists reports whether a quote already uses the given number.
func (r *Repo) NumberExists(ctx context.Context, number string) (bool, error) {
	return r.Exists(ctx, record.Conditions{"quote_number": number})
}

// Recent returns the most recently submitted quote requests.
func (r *Repo) Recent(ctx context.Context, limit uint64) ([]domain.Quote, error) {
	return r.List(ctx, nil, "created_at DESC", limit, 0)
}

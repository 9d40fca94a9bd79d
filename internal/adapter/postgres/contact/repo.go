// Package contact implements the contact-message repository using PostgreSQL.
package contact

import (
	"context"

	"github.com/kdtech/site-backend/internal/adapter/postgres"
	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const table = "contact_messages"

var columns = []string{
	"id", "name", "email", "phone", "company", "subject", "message",
	"message_type", "ip_address", "user_agent", "created_at", "updated_at",
}

var fillable = []string{
	"name", "email", "phone", "company", "subject", "message",
	"message_type", "ip_address", "user_agent",
}

// Repo provides contact-message persistence backed by PostgreSQL.
type Repo struct {
	*record.Store[domain.ContactMessage]
}

// New creates a new contact repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		Store: record.New[domain.ContactMessage](db, record.Config{
			Table:    table,
			Entity:   "contact message",
			Columns:  columns,
			Fillable: fillable,
		}),
	}
}

// Recent returns the most recently submitted messages.
func (r *Repo) Recent(ctx context.Context, limit uint64) ([]domain.ContactMessage, error) {
	return r.List(ctx, nil, "created_at DESC", limit, 0)
}

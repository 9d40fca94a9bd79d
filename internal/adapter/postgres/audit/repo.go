// Package audit implements the append-only activity log using PostgreSQL.
package audit

import (
	"context"

	"github.com/kdtech/site-backend/internal/adapter/postgres"
	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const table = "activity_log"

var columns = []string{
	"id", "entity_type", "entity_id", "action", "description", "created_at",
}

var fillable = []string{
	"entity_type", "entity_id", "action", "description",
}

// Repo provides activity-log persistence backed by PostgreSQL. Records are
// append-only; the store's update and delete paths are never used here.
type Repo struct {
	store *record.Store[domain.ActivityRecord]
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		store: record.New[domain.ActivityRecord](db, record.Config{
			Table:    table,
			Entity:   "activity record",
			Columns:  columns,
			Fillable: fillable,
		}),
	}
}

// Log appends one activity record.
func (r *Repo) Log(ctx context.Context, entityType domain.EntityType, entityID int64, action, description string) error {
	_, err := r.store.Create(ctx, record.Fields{
		"entity_type": entityType,
		"entity_id":   entityID,
		"action":      action,
		"description": description,
	})
	return err
}

// ListByEntity returns the activity trail for one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit uint64) ([]domain.ActivityRecord, error) {
	return r.store.List(ctx, record.Conditions{
		"entity_type": entityType,
		"entity_id":   entityID,
	}, "created_at DESC", limit, 0)
}

package domain

import "time"

// ActivityRecord is one append-only audit row. Records are written by every
// mutating operation and are never updated or deleted by the system.
type ActivityRecord struct {
	ID          int64      `db:"id" json:"id"`
	EntityType  EntityType `db:"entity_type" json:"entity_type"`
	EntityID    int64      `db:"entity_id" json:"entity_id"`
	Action      string     `db:"action" json:"action"`
	Description string     `db:"description" json:"description"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

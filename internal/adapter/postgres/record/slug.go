package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/kdtech/site-backend/internal/adapter/postgres"
)

// Slugify lowercases the title and collapses every run of non-alphanumeric
// characters into a single hyphen. "Hello, World!" becomes "hello-world".
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	return b.String()
}

// UniqueSlug derives a slug from title and appends -1, -2, ... until no
// other row (excluding excludeID) uses it. This check is a best-effort
// pre-filter only: the table's unique index on slug is the authoritative
// guard under concurrent writers.
func (s *Store[T]) UniqueSlug(ctx context.Context, title string, excludeID int64) (string, error) {
	base := Slugify(title)
	slug := base

	for counter := 1; ; counter++ {
		exists, err := s.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

// SlugExists reports whether any row other than excludeID already uses slug.
// Pass 0 to check against all rows.
func (s *Store[T]) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	query := Builder().Select("COUNT(*)").From(s.table).Where(squirrel.Eq{"slug": slug})
	if excludeID > 0 {
		query = query.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: build slug check: %w", s.entity, err)
	}

	var count int64
	if err := s.q(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, postgres.MapError(err, s.entity, excludeID)
	}

	return count > 0, nil
}

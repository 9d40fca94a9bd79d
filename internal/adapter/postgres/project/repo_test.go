package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/kdtech/site-backend/internal/adapter/postgres/testutil"
	"github.com/kdtech/site-backend/internal/domain"
)

var joinedColumns = []string{
	"id", "category_id", "title", "slug", "client_name", "project_type",
	"short_description", "full_description", "technologies", "project_url",
	"github_url", "image_url", "gallery_images", "start_date", "end_date",
	"project_status", "is_featured", "is_active", "sort_order",
	"created_at", "updated_at", "category_name", "category_slug",
}

func addJoinedRow(rows *pgxmock.Rows, id int64, title, slug string) *pgxmock.Rows {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	categoryID := int64(2)
	categoryName := "Kitchens"
	categorySlug := "kitchens"
	return rows.AddRow(
		id, &categoryID, title, slug, (*string)(nil), "renovation",
		"short", (*string)(nil), []string{"tile", "granite"}, (*string)(nil),
		(*string)(nil), (*string)(nil), []string{}, (*time.Time)(nil), (*time.Time)(nil),
		domain.ProjectStatusCompleted, true, true, 0,
		now, now, &categoryName, &categorySlug,
	)
}

func TestRepo_GetBySlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := addJoinedRow(pgxmock.NewRows(joinedColumns), 1, "Kitchen Remodel", "kitchen-remodel")
				mock.ExpectQuery(`FROM portfolio_projects p\s+LEFT JOIN categories c`).
					WithArgs("kitchen-remodel").
					WillReturnRows(rows)
			},
		},
		{
			name: "missing maps to not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM portfolio_projects p`).
					WithArgs("kitchen-remodel").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock := testutil.NewMockPool(t)
			repo := New(mock)
			tt.setup(mock)

			got, err := repo.GetBySlug(context.Background(), "kitchen-remodel")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetBySlug() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetBySlug() unexpected error: %v", err)
			}
			if got.Slug != "kitchen-remodel" {
				t.Errorf("GetBySlug() slug = %q", got.Slug)
			}
			if got.CategoryName == nil || *got.CategoryName != "Kitchens" {
				t.Errorf("GetBySlug() category name = %v", got.CategoryName)
			}
			testutil.ExpectationsWereMet(t, mock)
		})
	}
}

func TestRepo_Related(t *testing.T) {
	t.Parallel()
	mock := testutil.NewMockPool(t)
	repo := New(mock)

	categoryID := int64(2)
	current := &domain.Project{ID: 1, CategoryID: &categoryID, ProjectType: "renovation"}

	rows := addJoinedRow(pgxmock.NewRows(joinedColumns), 5, "Bathroom Refresh", "bathroom-refresh")
	mock.ExpectQuery(`ORDER BY random\(\)`).
		WithArgs(int64(1), &categoryID, "renovation", 4).
		WillReturnRows(rows)

	got, err := repo.Related(context.Background(), current, 4)
	if err != nil {
		t.Fatalf("Related() unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 5 {
		t.Fatalf("Related() = %+v", got)
	}
	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_Stats(t *testing.T) {
	t.Parallel()
	mock := testutil.NewMockPool(t)
	repo := New(mock)

	rows := pgxmock.NewRows([]string{
		"total_projects", "completed_projects", "in_progress_projects",
		"featured_projects", "unique_clients", "project_types",
	}).AddRow(int64(10), int64(7), int64(2), int64(3), int64(6), int64(4))
	mock.ExpectQuery(`COUNT\(\*\) FILTER \(WHERE project_status = 'completed'\)`).
		WillReturnRows(rows)

	got, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() unexpected error: %v", err)
	}
	if got.TotalProjects != 10 || got.CompletedProjects != 7 {
		t.Errorf("Stats() = %+v", got)
	}
	testutil.ExpectationsWereMet(t, mock)
}

package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/kdtech/site-backend/internal/adapter/postgres/testutil"
	"github.com/kdtech/site-backend/internal/domain"
)

type thing struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var thingConfig = Config{
	Table:    "things",
	Entity:   "thing",
	Columns:  []string{"id", "name", "slug", "created_at", "updated_at"},
	Fillable: []string{"name", "slug"},
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newStore builds a thing store over a mock pool with a fixed clock.
func newStore(t *testing.T) (*Store[thing], pgxmock.PgxPoolIface) {
	t.Helper()
	mock := testutil.NewMockPool(t)
	store := New[thing](mock, thingConfig)
	store.now = func() time.Time { return testNow }
	return store, mock
}

func thingRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "slug", "created_at", "updated_at"})
}

// ---------------------------------------------------------------------------
// Find
// ---------------------------------------------------------------------------

func TestStore_Find(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, name, slug, created_at, updated_at FROM things WHERE id = \$1 LIMIT 1`).
					WithArgs(int64(7)).
					WillReturnRows(thingRows().AddRow(int64(7), "Widget", "widget", testNow, testNow))
			},
		},
		{
			name: "missing row maps to not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, name, slug, created_at, updated_at FROM things`).
					WithArgs(int64(7)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store, mock := newStore(t)
			tt.setup(mock)

			got, err := store.Find(context.Background(), 7)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Find() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Find() unexpected error: %v", err)
			}
			if got.ID != 7 || got.Name != "Widget" {
				t.Errorf("Find() = %+v", got)
			}
			testutil.ExpectationsWereMet(t, mock)
		})
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestStore_List(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	mock.ExpectQuery(`SELECT id, name, slug, created_at, updated_at FROM things WHERE slug = \$1 ORDER BY name ASC LIMIT 2 OFFSET 4`).
		WithArgs("widget").
		WillReturnRows(thingRows().
			AddRow(int64(1), "Widget A", "widget", testNow, testNow).
			AddRow(int64(2), "Widget B", "widget", testNow, testNow))

	got, err := store.List(context.Background(), Conditions{"slug": "widget"}, "name ASC", 2, 4)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d rows, want 2", len(got))
	}
	testutil.ExpectationsWereMet(t, mock)
}

func TestStore_List_SliceConditionBecomesIN(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	mock.ExpectQuery(`SELECT id, name, slug, created_at, updated_at FROM things WHERE id IN \(\$1,\$2\)`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(thingRows().AddRow(int64(1), "A", "a", testNow, testNow))

	got, err := store.List(context.Background(), Conditions{"id": []int64{1, 2}}, "", 0, 0)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List() returned %d rows, want 1", len(got))
	}
	testutil.ExpectationsWereMet(t, mock)
}

func TestStore_List_EmptyResultIsNotNil(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	mock.ExpectQuery(`SELECT id, name, slug, created_at, updated_at FROM things`).
		WillReturnRows(thingRows())

	got, err := store.List(context.Background(), nil, "", 0, 0)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("List() returned nil slice, want empty")
	}
	if len(got) != 0 {
		t.Fatalf("List() returned %d rows, want 0", len(got))
	}
	testutil.ExpectationsWereMet(t, mock)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestStore_Create_FiltersUnfillableColumns(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	// SetMap orders columns alphabetically, so the insert columns are
	// created_at, name, slug, updated_at. The "id" and "role" keys must
	// never reach the statement.
	mock.ExpectQuery(`INSERT INTO things \(created_at,name,slug,updated_at\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id`).
		WithArgs(testNow, "Widget", "widget", testNow).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(`SELECT id, name, slug, created_at, updated_at FROM things WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(thingRows().AddRow(int64(3), "Widget", "widget", testNow, testNow))

	got, err := store.Create(context.Background(), Fields{
		"name": "Widget",
		"slug": "widget",
		"id":   int64(99),
		"role": "admin",
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if got.ID != 3 {
		t.Errorf("Create() ID = %d, want 3", got.ID)
	}
	testutil.ExpectationsWereMet(t, mock)
}

func TestStore_Create_NoFillableFields(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t)

	_, err := store.Create(context.Background(), Fields{"id": int64(1)})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Create() error = %v, want validation error", err)
	}
}

func TestStore_Create_UniqueViolation(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	mock.ExpectQuery(`INSERT INTO things`).
		WithArgs(testNow, "Widget", "widget", testNow).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := store.Create(context.Background(), Fields{"name": "Widget", "slug": "widget"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Create() error = %v, want already exists", err)
	}
	testutil.ExpectationsWereMet(t, mock)
}

// ---------------------------------------------------------------------------
// Update / Delete
// ---------------------------------------------------------------------------

func TestStore_Update(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	mock.ExpectExec(`UPDATE things SET name = \$1, updated_at = \$2 WHERE id = \$3`).
		WithArgs("Renamed", testNow, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(`SELECT id, name, slug, created_at, updated_at FROM things WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(thingRows().AddRow(int64(5), "Renamed", "widget", testNow, testNow))

	got, err := store.Update(context.Background(), 5, Fields{"name": "Renamed"})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("Update() Name = %q, want %q", got.Name, "Renamed")
	}
	testutil.ExpectationsWereMet(t, mock)
}

func TestStore_Update_NotFound(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	mock.ExpectExec(`UPDATE things`).
		WithArgs("Renamed", testNow, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	_, err := store.Update(context.Background(), 5, Fields{"name": "Renamed"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update() error = %v, want not found", err)
	}
	testutil.ExpectationsWereMet(t, mock)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "deleted", rows: 1},
		{name: "missing row maps to not found", rows: 0, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store, mock := newStore(t)

			mock.ExpectExec(`DELETE FROM things WHERE id = \$1`).
				WithArgs(int64(9)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.rows))

			err := store.Delete(context.Background(), 9)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Delete() error = %v, want %v", err, tt.wantErr)
			}
			testutil.ExpectationsWereMet(t, mock)
		})
	}
}

// ---------------------------------------------------------------------------
// Count / Exists
// ---------------------------------------------------------------------------

func TestStore_Count(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM things WHERE slug = \$1`).
		WithArgs("widget").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	got, err := store.Count(context.Background(), Conditions{"slug": "widget"})
	if err != nil {
		t.Fatalf("Count() unexpected error: %v", err)
	}
	if got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
	testutil.ExpectationsWereMet(t, mock)
}

func TestStore_Exists(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM things WHERE slug = \$1`).
		WithArgs("widget").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

	got, err := store.Exists(context.Background(), Conditions{"slug": "widget"})
	if err != nil {
		t.Fatalf("Exists() unexpected error: %v", err)
	}
	if got {
		t.Error("Exists() = true, want false")
	}
	testutil.ExpectationsWereMet(t, mock)
}

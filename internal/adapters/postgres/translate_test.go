package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/tasklists-service/internal/domain"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	errOther := errors.New("boom")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: pgx.ErrNoRows, want: domain.ErrNotFound},
		{name: "wrapped no rows", in: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: domain.ErrNotFound},
		{name: "fk violation", in: &pgconn.PgError{Code: foreignKeyViolation}, want: domain.ErrConflict},
		{name: "other pg error", in: &pgconn.PgError{Code: "42P01"}, want: nil},
		{name: "other", in: errOther, want: errOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := translate(tt.in)
			if tt.want == nil {
				if tt.in == nil && got != nil {
					t.Errorf("translate(nil) = %v, want nil", got)
				}
				if tt.in != nil && got != tt.in {
					t.Errorf("translate(%v) = %v, want unchanged", tt.in, got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("translate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResultOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: "success"},
		{err: domain.ErrNotFound, want: "not_found"},
		{err: fmt.Errorf("%w: %w", domain.ErrUnavailable, gobreaker.ErrOpenState), want: "circuit_open"},
		{err: errors.New("boom"), want: "error"},
	}
	for _, tt := range tests {
		if got := resultOf(tt.err); got != tt.want {
			t.Errorf("resultOf(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestMigrateURL(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"postgres://u:p@h:5432/db":   "pgx5://u:p@h:5432/db",
		"postgresql://u@h/db":        "pgx5://u@h/db",
		"pgx5://u@h/db":              "pgx5://u@h/db",
		"host=localhost dbname=test": "host=localhost dbname=test",
	}
	for in, want := range tests {
		if got := migrateURL(in); got != want {
			t.Errorf("migrateURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		t.Fatalf("ReadDir(migrations) error = %v", err)
	}
	if len(entries)%2 != 0 || len(entries) == 0 {
		t.Errorf("migrations = %d files, want matching up/down pairs", len(entries))
	}
}

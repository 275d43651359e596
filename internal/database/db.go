// Package database provides a throwaway SQLite copy of the meal_plans schema
// that generated fixtures can be executed against.
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SchemaName is the name the migrated file is attached under.
const SchemaName = "public"

const sandboxFile = "meal_plans.db"

// DB is a sandbox connection with the meal_plans table reachable as
// "public"."meal_plans" and as meal_plans.
type DB struct {
	SQL  *sql.DB
	Path string
}

// MealPlanRow is one row read back from the sandbox.
type MealPlanRow struct {
	ID            string
	UserID        string
	Date          string
	RecoveryPhase string
	Meals         string
	Preferences   sql.NullString
	CreatedAt     string
	UpdatedAt     string
}

// OpenSandbox migrates a fresh SQLite file under dir and attaches it to an
// in-memory connection as schema public.
func OpenSandbox(ctx context.Context, dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	dbPath := filepath.Join(dir, sandboxFile)

	if err := RunMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// ATTACH is per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "ATTACH DATABASE ? AS "+SchemaName, dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to attach %s: %w", dbPath, err)
	}

	return &DB{SQL: db, Path: dbPath}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.SQL.Close()
}

// Exec runs each statement in order and stops at the first failure.
func (d *DB) Exec(ctx context.Context, statements ...string) error {
	for i, stmt := range statements {
		if _, err := d.SQL.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("statement %d failed: %w", i+1, err)
		}
	}
	return nil
}

// MealPlans returns every stored row ordered by user and date.
func (d *DB) MealPlans(ctx context.Context) ([]MealPlanRow, error) {
	rows, err := d.SQL.QueryContext(ctx, `
		SELECT id, user_id, date, recovery_phase, meals, preferences, created_at, updated_at
		FROM public.meal_plans
		ORDER BY user_id, date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal plans: %w", err)
	}
	defer rows.Close()

	var out []MealPlanRow
	for rows.Next() {
		var r MealPlanRow
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.RecoveryPhase, &r.Meals,
			&r.Preferences, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RunMigrations applies the embedded migrations to the SQLite file at databasePath.
func RunMigrations(databasePath string) error {
	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, fmt.Sprintf("sqlite://%s", databasePath))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Package database opens the shared NHPlus connection, applies the embedded
// migrations and binds the entity repositories to a handle.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/hitec/nhplus/internal/dbx"
	"github.com/hitec/nhplus/internal/filex"
	"github.com/hitec/nhplus/internal/migrations"
	"github.com/hitec/nhplus/internal/repositories/caregivers"
	"github.com/hitec/nhplus/internal/repositories/patients"
	"github.com/hitec/nhplus/internal/repositories/treatments"
	"github.com/hitec/nhplus/internal/repositories/users"
)

// goose keeps its FS and dialect in package state.
var gooseMu sync.Mutex

var (
	gooseUpContext    = goose.UpContext
	gooseResetContext = goose.ResetContext
)

// Repositories groups the entity repositories bound to one handle.
type Repositories struct {
	Patients   patients.Repository
	Caregivers caregivers.Repository
	Treatments treatments.Repository
	Users      users.Repository
}

// NewRepositories binds every repository to db, which may be a transaction.
func NewRepositories(db dbx.DBTX, dialect dbx.Dialect) *Repositories {
	return &Repositories{
		Patients:   patients.NewSQLRepository(db, dialect),
		Caregivers: caregivers.NewSQLRepository(db, dialect),
		Treatments: treatments.NewSQLRepository(db, dialect),
		Users:      users.NewSQLRepository(db, dialect),
	}
}

// Open connects to the database named by driver and dsn.
//
// SQLite handles are limited to a single connection with foreign keys
// enforced, so every statement sees the same (possibly in-memory) database.
// The parent directory of a SQLite file is created when missing.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, dbx.Dialect, error) {
	dialect, err := dbx.ParseDialect(driver)
	if err != nil {
		return nil, "", err
	}

	if dialect == dbx.SQLite {
		if err := ensureDir(dsn); err != nil {
			return nil, "", err
		}
		dsn = withForeignKeys(dsn)
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == dbx.SQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, dialect, nil
}

// RunMigrations applies all pending migrations for dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := setupGoose(dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, migrationsDir(dialect)); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Reset rolls back every migration and applies them again, leaving an empty
// schema.
func Reset(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := setupGoose(dialect); err != nil {
		return err
	}
	dir := migrationsDir(dialect)
	if err := gooseResetContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to reset schema: %w", err)
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func setupGoose(dialect dbx.Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect.GooseDialect()); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func migrationsDir(dialect dbx.Dialect) string {
	if dialect == dbx.Postgres {
		return "postgres"
	}
	return "sqlite"
}

func isMemory(dsn string) bool {
	return dsn == "" || strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func ensureDir(dsn string) error {
	if isMemory(dsn) {
		return nil
	}
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if _, err := filex.EnsureParentDir(path); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}

// withForeignKeys asks the driver to enable foreign key enforcement on every
// new connection.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

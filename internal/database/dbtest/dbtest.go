// Package dbtest provides migrated in-memory databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hitec/nhplus/internal/database"
	"github.com/hitec/nhplus/internal/dbx"
)

// New returns an empty, migrated in-memory SQLite database that is closed
// when the test ends.
func New(t testing.TB) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, dialect, err := database.Open(ctx, "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.RunMigrations(ctx, db, dialect))
	return db
}

// Repositories returns repositories over a fresh database from New.
func Repositories(t testing.TB) (*sql.DB, *database.Repositories) {
	t.Helper()
	db := New(t)
	return db, database.NewRepositories(db, dbx.SQLite)
}

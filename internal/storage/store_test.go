package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/hitec/nhplus/internal/common"
	"github.com/hitec/nhplus/internal/dbx"
)

type ward struct {
	ID     int64
	Name   string
	Locked bool
}

type bed struct {
	ID     int64
	WardID int64
	Label  string
}

var wardMapping = Mapping[ward]{
	Entity:  "ward",
	Table:   "ward",
	Key:     "wid",
	Columns: []string{"name", "locked"},
	Values:  func(w *ward) []any { return []any{w.Name, w.Locked} },
	Scan: func(row Scanner) (*ward, error) {
		w := &ward{}
		if err := row.Scan(&w.ID, &w.Name, &w.Locked); err != nil {
			return nil, err
		}
		return w, nil
	},
	ID:    func(w *ward) int64 { return w.ID },
	SetID: func(w *ward, id int64) { w.ID = id },
}

var bedMapping = Mapping[bed]{
	Entity:  "bed",
	Table:   "bed",
	Key:     "bid",
	Columns: []string{"wid", "label"},
	Values:  func(b *bed) []any { return []any{b.WardID, b.Label} },
	Scan: func(row Scanner) (*bed, error) {
		b := &bed{}
		if err := row.Scan(&b.ID, &b.WardID, &b.Label); err != nil {
			return nil, err
		}
		return b, nil
	},
	ID:    func(b *bed) int64 { return b.ID },
	SetID: func(b *bed, id int64) { b.ID = id },
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
PRAGMA foreign_keys = ON;
CREATE TABLE ward (
  wid INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  locked INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE bed (
  bid INTEGER PRIMARY KEY AUTOINCREMENT,
  wid INTEGER NOT NULL REFERENCES ward (wid) ON UPDATE CASCADE ON DELETE RESTRICT,
  label TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestStore_CreateRead(t *testing.T) {
	db := setupDB(t)
	s := New(db, dbx.SQLite, wardMapping)
	ctx := context.Background()

	w, err := s.Create(ctx, &ward{Name: "North", Locked: true})
	require.NoError(t, err)
	require.Equal(t, int64(1), w.ID)

	w2, err := s.Create(ctx, &ward{Name: "South"})
	require.NoError(t, err)
	require.Equal(t, int64(2), w2.ID)

	got, err := s.Read(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &ward{ID: 1, Name: "North", Locked: true}, got)
}

func TestStore_ReadNotFound(t *testing.T) {
	db := setupDB(t)
	s := New(db, dbx.SQLite, wardMapping)

	got, err := s.Read(context.Background(), 99)
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.Nil(t, got)
}

func TestStore_ReadAllAndWhere(t *testing.T) {
	db := setupDB(t)
	wards := New(db, dbx.SQLite, wardMapping)
	beds := New(db, dbx.SQLite, bedMapping)
	ctx := context.Background()

	empty, err := wards.ReadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, empty)

	for _, name := range []string{"A", "B"} {
		_, err := wards.Create(ctx, &ward{Name: name})
		require.NoError(t, err)
	}
	for _, b := range []bed{{WardID: 1, Label: "1a"}, {WardID: 2, Label: "2a"}, {WardID: 1, Label: "1b"}} {
		b := b
		_, err := beds.Create(ctx, &b)
		require.NoError(t, err)
	}

	all, err := wards.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Name)

	inA, err := beds.Where(ctx, `"wid" = ?`, 1)
	require.NoError(t, err)
	require.Len(t, inA, 2)
	assert.Equal(t, "1a", inA[0].Label)
	assert.Equal(t, "1b", inA[1].Label)
}

func TestStore_Update(t *testing.T) {
	db := setupDB(t)
	s := New(db, dbx.SQLite, wardMapping)
	ctx := context.Background()

	w, err := s.Create(ctx, &ward{Name: "East"})
	require.NoError(t, err)

	w.Name = "East Wing"
	w.Locked = true
	require.NoError(t, s.Update(ctx, w))

	got, err := s.Read(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, w, got)

	err = s.Update(ctx, &ward{ID: 42, Name: "ghost"})
	require.ErrorIs(t, err, common.ErrorNoRowsAffected)
}

func TestStore_DeleteByID(t *testing.T) {
	db := setupDB(t)
	s := New(db, dbx.SQLite, wardMapping)
	ctx := context.Background()

	w, err := s.Create(ctx, &ward{Name: "West"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteByID(ctx, w.ID))
	_, err = s.Read(ctx, w.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)

	err = s.DeleteByID(ctx, w.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestStore_ForeignKeyViolations(t *testing.T) {
	db := setupDB(t)
	wards := New(db, dbx.SQLite, wardMapping)
	beds := New(db, dbx.SQLite, bedMapping)
	ctx := context.Background()

	_, err := beds.Create(ctx, &bed{WardID: 7, Label: "orphan"})
	require.ErrorIs(t, err, common.ErrorConstraint)

	all, err := beds.ReadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all, "failed insert must not leave a row")

	w, err := wards.Create(ctx, &ward{Name: "Busy"})
	require.NoError(t, err)
	_, err = beds.Create(ctx, &bed{WardID: w.ID, Label: "1"})
	require.NoError(t, err)

	err = wards.DeleteByID(ctx, w.ID)
	require.ErrorIs(t, err, common.ErrorConstraint)

	still, err := wards.Read(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Busy", still.Name)
}

func newMockStore(t *testing.T) (*Store[ward], sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, dbx.Postgres, wardMapping), mock
}

func TestStore_PostgresStatements(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "ward" ("name", "locked") VALUES ($1, $2) RETURNING "wid"`)).
		WithArgs("North", false).
		WillReturnRows(sqlmock.NewRows([]string{"wid"}).AddRow(int64(5)))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "wid", "name", "locked" FROM "ward" WHERE "wid" = $1`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"wid", "name", "locked"}).AddRow(int64(5), "North", false))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "ward" SET "name" = $1, "locked" = $2 WHERE "wid" = $3`)).
		WithArgs("North", true, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "ward" WHERE "wid" = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w, err := s.Create(ctx, &ward{Name: "North"})
	require.NoError(t, err)
	require.Equal(t, int64(5), w.ID)

	got, err := s.Read(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, "North", got.Name)

	got.Locked = true
	require.NoError(t, s.Update(ctx, got))
	require.NoError(t, s.DeleteByID(ctx, 5))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_PostgresConstraintError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM "ward"`).
		WithArgs(int64(3)).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	err := s.DeleteByID(context.Background(), 3)
	require.ErrorIs(t, err, common.ErrorConstraint)

	var pe *pgconn.PgError
	require.True(t, errors.As(err, &pe), "driver error must stay in the chain")
	require.Equal(t, "23503", pe.Code)
}

func TestStore_DriverErrorIsWrapped(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .* FROM "ward" ORDER BY "wid"`).
		WillReturnError(errors.New("db down"))

	_, err := s.ReadAll(context.Background())
	require.Error(t, err)
	require.Regexp(t, `failed to select ward: db down`, err.Error())
	require.False(t, errors.Is(err, common.ErrorConstraint))
}

func TestIsConstraintViolation(t *testing.T) {
	assert.True(t, IsConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsConstraintViolation(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, IsConstraintViolation(errors.New("plain")))
	assert.False(t, IsConstraintViolation(nil))
}

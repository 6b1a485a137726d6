package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hitec/nhplus/internal/common"
	"github.com/hitec/nhplus/internal/dbx"
)

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Mapping describes how a record type is laid out in one table.
type Mapping[T any] struct {
	// Entity names the record in error messages, e.g. "patient".
	Entity string
	Table  string
	Key    string
	// Columns lists the data columns, key excluded, in bind order.
	Columns []string

	// Values returns the bind arguments for Columns, in the same order.
	Values func(rec *T) []any
	// Scan builds a record from a row holding Key followed by Columns.
	Scan  func(row Scanner) (*T, error)
	ID    func(rec *T) int64
	SetID func(rec *T, id int64)
}

// Store implements the generic record operations for one Mapping.
type Store[T any] struct {
	db      dbx.DBTX
	dialect dbx.Dialect
	m       Mapping[T]

	insertSQL string
	selectSQL string
	updateSQL string
	deleteSQL string
}

// New binds a Mapping to a database handle. db may be a *sql.DB or a *sql.Tx.
func New[T any](db dbx.DBTX, dialect dbx.Dialect, m Mapping[T]) *Store[T] {
	s := &Store[T]{db: db, dialect: dialect, m: m}

	cols := make([]string, len(m.Columns))
	sets := make([]string, len(m.Columns))
	marks := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		cols[i] = quote(c)
		sets[i] = quote(c) + " = ?"
		marks[i] = "?"
	}
	table, key := quote(m.Table), quote(m.Key)

	s.insertSQL = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table, strings.Join(cols, ", "), strings.Join(marks, ", "), key)
	s.selectSQL = fmt.Sprintf("SELECT %s, %s FROM %s", key, strings.Join(cols, ", "), table)
	s.updateSQL = fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", table, strings.Join(sets, ", "), key)
	s.deleteSQL = fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, key)

	return s
}

// Create inserts rec and stores the generated key into it.
func (s *Store[T]) Create(ctx context.Context, rec *T) (*T, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(s.insertSQL), s.m.Values(rec)...).Scan(&id)
	if err != nil {
		return nil, wrap("insert", s.m.Entity, err)
	}
	s.m.SetID(rec, id)
	return rec, nil
}

// Read returns the record with the given key.
func (s *Store[T]) Read(ctx context.Context, id int64) (*T, error) {
	query := s.dialect.Rebind(s.selectSQL + " WHERE " + quote(s.m.Key) + " = ?")
	rec, err := s.m.Scan(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s %d: %w", s.m.Entity, id, common.ErrorNotFound)
		}
		return nil, wrap("select", s.m.Entity, err)
	}
	return rec, nil
}

// ReadAll returns every record ordered by key.
func (s *Store[T]) ReadAll(ctx context.Context) ([]*T, error) {
	return s.query(ctx, s.selectSQL+" ORDER BY "+quote(s.m.Key))
}

// Where returns the records matching cond, a boolean SQL expression using
// '?' placeholders, ordered by key.
func (s *Store[T]) Where(ctx context.Context, cond string, args ...any) ([]*T, error) {
	return s.query(ctx, s.selectSQL+" WHERE "+cond+" ORDER BY "+quote(s.m.Key), args...)
}

func (s *Store[T]) query(ctx context.Context, query string, args ...any) ([]*T, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(query), args...)
	if err != nil {
		return nil, wrap("select", s.m.Entity, err)
	}
	defer rows.Close()

	result := make([]*T, 0)
	for rows.Next() {
		rec, err := s.m.Scan(rows)
		if err != nil {
			return nil, wrap("scan", s.m.Entity, err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("select", s.m.Entity, err)
	}
	return result, nil
}

// Update overwrites every column of the record identified by rec's key.
func (s *Store[T]) Update(ctx context.Context, rec *T) error {
	id := s.m.ID(rec)
	args := append(s.m.Values(rec), id)

	res, err := s.db.ExecContext(ctx, s.dialect.Rebind(s.updateSQL), args...)
	if err != nil {
		return wrap("update", s.m.Entity, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("update %s %d: %w", s.m.Entity, id, common.ErrorNoRowsAffected)
	}
	return nil
}

// DeleteByID removes the record with the given key.
func (s *Store[T]) DeleteByID(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.dialect.Rebind(s.deleteSQL), id)
	if err != nil {
		return wrap("delete", s.m.Entity, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("%s %d: %w", s.m.Entity, id, common.ErrorNotFound)
	}
	return nil
}

func quote(ident string) string {
	return `"` + ident + `"`
}

// Repository is the record contract shared by all entities. *Store[T]
// implements it.
type Repository[T any] interface {
	Create(ctx context.Context, rec *T) (*T, error)
	Read(ctx context.Context, id int64) (*T, error)
	ReadAll(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, rec *T) error
	DeleteByID(ctx context.Context, id int64) error
}

var _ Repository[struct{}] = (*Store[struct{}])(nil)

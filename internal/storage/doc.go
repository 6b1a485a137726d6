// Package storage is the generic persistence engine behind every NHPlus
// repository.
//
// # Overview
//
// Store[T] implements the five record operations once:
//
//   - Create     inserts a record and fills in its generated key
//   - Read       loads one record by key, or fails with common.ErrorNotFound
//   - ReadAll    loads every record, ordered by key
//   - Update     rewrites every column of an existing record
//   - DeleteByID removes one record by key
//
// What differs between entities is described by a Mapping[T]: the table, the
// key column, the ordered list of data columns, the function that turns a
// record into bind arguments for those columns, and the function that builds a
// record from a scanned row. Per-entity packages under internal/repositories
// declare one Mapping each and add entity-specific queries on top of Where.
//
// # Errors
//
// Driver errors are wrapped with the failing operation and entity name. A
// violated NOT NULL, UNIQUE or FOREIGN KEY constraint additionally wraps
// common.ErrorConstraint, for both SQLite and PostgreSQL, so callers can tell a
// referenced record apart from a broken connection with errors.Is. An Update
// that matches no row returns common.ErrorNoRowsAffected; a DeleteByID that
// matches no row returns common.ErrorNotFound.
//
// # Dialects
//
// Statements are generated with '?' placeholders and passed through
// dbx.Dialect.Rebind. All identifiers are double-quoted, which both SQLite and
// PostgreSQL accept, so column names such as "begin" and "end" need no special
// treatment.
package storage

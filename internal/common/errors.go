// Package common defines sentinel errors shared by the storage, service and
// presentation layers of NHPlus. Callers should use errors.Is to match these
// values; concrete failures wrap them with context.
package common

import "errors"

var (
	// Storage errors.
	ErrorNotFound       = errors.New("not found")
	ErrorNoRowsAffected = errors.New("no rows affected")
	ErrorConstraint     = errors.New("constraint violation")

	// Validation errors (blank fields, malformed dates, short phone numbers).
	ErrorValidation = errors.New("validation error")

	// Policy refusals. The record is intentionally left untouched.
	ErrorRetentionPeriod = errors.New("retention period not reached")
	ErrorLocked          = errors.New("record is locked")
	ErrorUnauthorized    = errors.New("invalid email or password")

	// Session errors.
	ErrorNotLoggedIn     = errors.New("not logged in")
	ErrorAlreadyLoggedIn = errors.New("already logged in")

	ErrorQueueClosed = errors.New("task queue closed")
)

// Package services contains the NHPlus business rules on top of the
// repositories.
//
// Records[T, P] is the record workflow shared by patients, caregivers and
// treatments: listing, validated creation and update, lock toggling, and
// deletion gated by the lock flag and the retention policy. AuthService
// checks credentials against the stored salted hashes and registers users.
//
// Refusals are returned as errors wrapping common.ErrorLocked,
// common.ErrorRetentionPeriod or common.ErrorValidation; storage failures keep
// their driver error and, for violated constraints, common.ErrorConstraint.
package services

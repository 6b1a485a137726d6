package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hitec/nhplus/internal/common"
	"github.com/hitec/nhplus/internal/dates"
	"github.com/hitec/nhplus/internal/logging"
	"github.com/hitec/nhplus/internal/models"
	"github.com/hitec/nhplus/internal/retention"
	"github.com/hitec/nhplus/internal/storage"
)

// Records runs the record workflow for one entity type. P is the pointer type
// of T and is inferred: NewRecords[models.Patient](...).
type Records[T any, P models.Record[T]] struct {
	entity string
	repo   storage.Repository[T]
	policy retention.Policy
	log    logging.Logger
}

func NewRecords[T any, P models.Record[T]](entity string, repo storage.Repository[T], policy retention.Policy, log logging.Logger) *Records[T, P] {
	return &Records[T, P]{
		entity: entity,
		repo:   repo,
		policy: policy,
		log:    log.With("entity", entity),
	}
}

func (s *Records[T, P]) List(ctx context.Context) ([]*T, error) {
	return s.repo.ReadAll(ctx)
}

func (s *Records[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	return s.repo.Read(ctx, id)
}

// Add validates rec, stamps it with today's date unless it already carries a
// creation date, and stores it. The returned record has its id set.
func (s *Records[T, P]) Add(ctx context.Context, rec *T) (*T, error) {
	p := P(rec)
	if p.Created() == "" {
		p.Stamp(dates.Today(s.policy.Now()))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		s.log.Error(ctx, "failed to add record", "error", err)
		return nil, err
	}
	s.log.Info(ctx, "record added", "id", P(created).RecordID())
	return created, nil
}

// Update validates rec and overwrites the stored record with the same id. The
// creation date is fixed at Add: the stored stamp is kept whatever rec holds.
// A missing id fails with common.ErrorNoRowsAffected.
func (s *Records[T, P]) Update(ctx context.Context, rec *T) error {
	p := P(rec)
	stored, err := s.repo.Read(ctx, p.RecordID())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("update %s %d: %w", s.entity, p.RecordID(), common.ErrorNoRowsAffected)
		}
		return err
	}
	p.Stamp(P(stored).Created())

	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		s.log.Error(ctx, "failed to update record", "id", p.RecordID(), "error", err)
		return err
	}
	s.log.Info(ctx, "record updated", "id", p.RecordID())
	return nil
}

// ToggleLock flips the locked flag of the record and returns the new state.
func (s *Records[T, P]) ToggleLock(ctx context.Context, id int64) (*T, error) {
	rec, err := s.repo.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	p := P(rec)
	p.SetLocked(!p.IsLocked())

	if err := s.repo.Update(ctx, rec); err != nil {
		s.log.Error(ctx, "failed to toggle lock", "id", id, "error", err)
		return nil, err
	}
	s.log.Info(ctx, "record lock changed", "id", id, "locked", p.IsLocked())
	return rec, nil
}

// Deletable reports whether rec may be deleted now: it is not locked and its
// retention period has elapsed. A front end uses it to enable delete actions.
func (s *Records[T, P]) Deletable(rec *T) bool {
	p := P(rec)
	if p.IsLocked() {
		return false
	}
	ok, err := s.policy.Allows(p.Created())
	return err == nil && ok
}

// Delete removes the record with the given id. Locked records are refused with
// common.ErrorLocked, records younger than the retention period (or with an
// unreadable creation date) with common.ErrorRetentionPeriod. A record still
// referenced by treatments fails with common.ErrorConstraint and stays stored.
func (s *Records[T, P]) Delete(ctx context.Context, id int64) error {
	rec, err := s.repo.Read(ctx, id)
	if err != nil {
		return err
	}
	p := P(rec)

	if p.IsLocked() {
		s.log.Warn(ctx, "delete refused: record locked", "id", id)
		return fmt.Errorf("%s %d: %w", s.entity, id, common.ErrorLocked)
	}

	ok, err := s.policy.Allows(p.Created())
	if err != nil {
		s.log.Warn(ctx, "delete refused: unreadable creation date", "id", id, "created", p.Created())
		return fmt.Errorf("%s %d: %w: %v", s.entity, id, common.ErrorRetentionPeriod, err)
	}
	if !ok {
		s.log.Warn(ctx, "delete refused: retention period", "id", id, "created", p.Created())
		return fmt.Errorf("%s %d created %s: %w", s.entity, id, p.Created(), common.ErrorRetentionPeriod)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrorConstraint) {
			s.log.Warn(ctx, "delete refused: record still referenced", "id", id)
		} else {
			s.log.Error(ctx, "failed to delete record", "id", id, "error", err)
		}
		return err
	}
	s.log.Info(ctx, "record deleted", "id", id)
	return nil
}

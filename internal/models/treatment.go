package models

import (
	"time"

	"github.com/hitec/nhplus/internal/dates"
	"github.com/hitec/nhplus/internal/validation"
)

// Treatment records care given by a caregiver to a patient on a date.
// Begin and End carry only the time of day.
type Treatment struct {
	ID          int64
	PatientID   int64 `validate:"gt=0"`
	CaregiverID int64 `validate:"gt=0"`
	Date        time.Time
	Begin       time.Time
	End         time.Time
	Description string `validate:"notblank"`
	Remarks     string
	Locked      bool
	DateCreated string `validate:"omitempty,datetime=2006-01-02"`
}

func (t *Treatment) RecordID() int64       { return t.ID }
func (t *Treatment) IsLocked() bool        { return t.Locked }
func (t *Treatment) SetLocked(locked bool) { t.Locked = locked }
func (t *Treatment) Created() string       { return t.DateCreated }
func (t *Treatment) Stamp(date string)     { t.DateCreated = date }

// Validate requires both references, a date, a description, and an end time
// strictly after the begin time.
func (t *Treatment) Validate() error {
	if err := validation.Struct(t); err != nil {
		return err
	}
	if t.Date.IsZero() {
		return validation.Errorf("treatment date is required")
	}
	if !t.End.After(t.Begin) {
		return validation.Errorf("end %s must be after begin %s",
			dates.FormatTime(t.End), dates.FormatTime(t.Begin))
	}
	return nil
}

package models

import (
	"time"

	"github.com/hitec/nhplus/internal/validation"
)

// Patient is a resident of the nursing home.
type Patient struct {
	ID int64
	Person
	DateOfBirth time.Time
	CareLevel   string `validate:"notblank"`
	RoomNumber  string `validate:"notblank"`
	Locked      bool
	DateCreated string `validate:"omitempty,datetime=2006-01-02"`
}

func (p *Patient) RecordID() int64       { return p.ID }
func (p *Patient) IsLocked() bool        { return p.Locked }
func (p *Patient) SetLocked(locked bool) { p.Locked = locked }
func (p *Patient) Created() string       { return p.DateCreated }
func (p *Patient) Stamp(date string)     { p.DateCreated = date }

// Validate requires all name, care and room fields and a date of birth.
func (p *Patient) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	if p.DateOfBirth.IsZero() {
		return validation.Errorf("date of birth is required")
	}
	return nil
}

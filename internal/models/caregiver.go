package models

import "github.com/hitec/nhplus/internal/validation"

// Caregiver is a member of the nursing staff.
type Caregiver struct {
	ID int64
	Person
	PhoneNumber string `validate:"phone"`
	Locked      bool
	DateCreated string `validate:"omitempty,datetime=2006-01-02"`
}

func (c *Caregiver) RecordID() int64       { return c.ID }
func (c *Caregiver) IsLocked() bool        { return c.Locked }
func (c *Caregiver) SetLocked(locked bool) { c.Locked = locked }
func (c *Caregiver) Created() string       { return c.DateCreated }
func (c *Caregiver) Stamp(date string)     { c.DateCreated = date }

// Validate requires both names and a phone number of at least
// validation.MinPhoneLength characters.
func (c *Caregiver) Validate() error {
	return validation.Struct(c)
}

package models

// Record is implemented by pointers to entities that are subject to locking
// and the retention rule.
type Record[T any] interface {
	*T
	RecordID() int64
	IsLocked() bool
	SetLocked(locked bool)
	Created() string
	Stamp(date string)
	Validate() error
}

// Person holds the name fields shared by patients and caregivers.
type Person struct {
	FirstName string `validate:"notblank"`
	Surname   string `validate:"notblank"`
}

// FullName returns "Surname, FirstName".
func (p Person) FullName() string {
	return p.Surname + ", " + p.FirstName
}

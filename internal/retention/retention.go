// Package retention implements the data-retention rule that gates deletion:
// a record may only be removed once at least MinYears full calendar years
// have passed since it was created.
package retention

import (
	"time"

	"github.com/hitec/nhplus/internal/dates"
)

// MinYears is the statutory minimum retention period.
const MinYears = 10

// YearsBetween returns the number of full calendar years from from to to,
// counting a year as complete on the same month and day. A leap-day start
// completes its year on the 1st of March in non-leap years. When from lies after
// to the count is zero or negative.
func YearsBetween(from, to time.Time) int {
	from, to = dates.Truncate(from), dates.Truncate(to)

	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}

// Eligible reports whether a record created on created may be deleted on
// today under the MinYears rule. Exactly MinYears years qualifies; a creation
// date in the future never does.
func Eligible(created, today time.Time) bool {
	return YearsBetween(created, today) >= MinYears
}

// Policy is the retention rule bound to a configurable period and clock.
type Policy struct {
	Years int
	Now   func() time.Time
}

// NewPolicy returns a Policy with the given period. Non-positive years fall
// back to MinYears and a nil clock to time.Now.
func NewPolicy(years int, now func() time.Time) Policy {
	if years <= 0 {
		years = MinYears
	}
	if now == nil {
		now = time.Now
	}
	return Policy{Years: years, Now: now}
}

// Allows parses a "YYYY-MM-DD" creation stamp and reports whether the
// retention period has elapsed. A malformed stamp yields false with the
// parse error.
func (p Policy) Allows(dateCreated string) (bool, error) {
	created, err := dates.ParseDate(dateCreated)
	if err != nil {
		return false, err
	}
	return YearsBetween(created, p.Now()) >= p.Years, nil
}

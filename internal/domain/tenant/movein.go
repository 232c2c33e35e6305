package tenant

import (
	"fmt"
	"time"
)

// MoveInTimezone is the reference timezone for move-in date construction.
// Note: this deliberately differs from the reminder scheduler's timezone,
// which evaluates the daily trigger in America/Bogota.
const MoveInTimezone = "America/Lima"

// ErrInvalidDate indicates a day/month pair that does not form a valid
// calendar date in the reference year (e.g. 31/02).
var ErrInvalidDate = fmt.Errorf("day and month do not form a valid calendar date")

// NewMoveInDate builds the move-in date for a day/month pair at local midnight
// in the reference timezone. The year is the one current in that timezone at
// the given instant, so 29/02 is only accepted when that year is a leap year.
// The tenant's payment day is the Day() of the returned date.
func NewMoveInDate(day, month int, now time.Time) (time.Time, error) {
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, ErrInvalidDate
	}

	loc, err := time.LoadLocation(MoveInTimezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load move-in timezone: %w", err)
	}

	year := now.In(loc).Year()
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date normalizes out-of-range values (Feb 31 -> Mar 2/3), so a
	// round-trip mismatch means the input was not a real calendar date.
	if date.Day() != day || date.Month() != time.Month(month) {
		return time.Time{}, ErrInvalidDate
	}

	return date, nil
}

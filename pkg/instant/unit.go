// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"errors"
	"fmt"
	"time"
)

const (
	// UnitYear is a calendar year.
	UnitYear Unit = "year"
	// UnitMonth is a calendar month.
	UnitMonth Unit = "month"
	// UnitWeek is seven calendar days.
	UnitWeek Unit = "week"
	// UnitDay is a calendar day.
	UnitDay Unit = "day"
	// UnitHour is a fixed 60-minute hour.
	UnitHour Unit = "hour"
	// UnitMinute is a fixed 60-second minute.
	UnitMinute Unit = "minute"
	// UnitSecond is a fixed 1000-millisecond second.
	UnitSecond Unit = "second"
	// UnitMillisecond is the smallest representable unit.
	UnitMillisecond Unit = "millisecond"
)

// ErrInvalidUnit is returned when a Unit value is not recognized.
var ErrInvalidUnit = errors.New("invalid time unit")

// Unit names a calendar or clock unit for arithmetic and difference
// operations. Year, month, week and day arithmetic is calendar-aware;
// the smaller units are fixed-length.
type Unit string

// IsValid reports whether the unit is one of the recognized values.
func (u Unit) IsValid() (bool, error) {
	switch u {
	case UnitYear, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond, UnitMillisecond:
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidUnit, string(u))
}

// fixedMillis returns the unit's fixed length in milliseconds, or false for
// calendar-length units (year, month).
func (u Unit) fixedMillis() (int64, bool) {
	switch u {
	case UnitWeek:
		return 7 * 24 * 60 * 60 * 1000, true
	case UnitDay:
		return 24 * 60 * 60 * 1000, true
	case UnitHour:
		return int64(time.Hour / time.Millisecond), true
	case UnitMinute:
		return int64(time.Minute / time.Millisecond), true
	case UnitSecond:
		return 1000, true
	case UnitMillisecond:
		return 1, true
	}
	return 0, false
}

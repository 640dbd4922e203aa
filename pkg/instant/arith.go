// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"math"
	"time"
)

// Add returns the instant shifted forward by n units. Year, month, week and
// day steps are calendar-aware (a month added to Jan 31 normalizes the way
// time.AddDate does); smaller units are fixed-length. An invalid instant or
// an unrecognized unit yields the invalid instant.
func (i Instant) Add(n int64, u Unit) Instant {
	if !i.valid {
		return i
	}
	t := i.Time()
	switch u {
	case UnitYear:
		t = t.AddDate(int(n), 0, 0)
	case UnitMonth:
		t = t.AddDate(0, int(n), 0)
	case UnitWeek:
		t = t.AddDate(0, 0, int(7*n))
	case UnitDay:
		t = t.AddDate(0, 0, int(n))
	case UnitHour, UnitMinute, UnitSecond, UnitMillisecond:
		ms, _ := u.fixedMillis()
		return FromMillis(i.ms + n*ms)
	default:
		return Invalid()
	}
	return FromTime(t)
}

// Subtract returns the instant shifted backward by n units.
func (i Instant) Subtract(n int64, u Unit) Instant {
	return i.Add(-n, u)
}

// DiffIn returns the difference i - other expressed in the given unit,
// truncated toward zero. Year and month differences count whole calendar
// units. If either instant is invalid, or the unit is unrecognized, the
// result is NaN.
func (i Instant) DiffIn(other Instant, u Unit) float64 {
	if !i.valid || !other.valid {
		return math.NaN()
	}
	if ms, ok := u.fixedMillis(); ok {
		return math.Trunc(float64(i.ms-other.ms) / float64(ms))
	}
	switch u {
	case UnitMonth:
		return float64(monthsBetween(other.Time(), i.Time()))
	case UnitYear:
		return math.Trunc(float64(monthsBetween(other.Time(), i.Time())) / 12)
	}
	return math.NaN()
}

// monthsBetween counts the whole calendar months from a to b, negative when
// b precedes a.
func monthsBetween(a, b time.Time) int {
	if b.Before(a) {
		return -monthsBetween(b, a)
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	// a shifted by that many months may still land after b; back off.
	if a.AddDate(0, months, 0).After(b) {
		months--
	}
	return months
}

// StartOf truncates the instant to the beginning of the given unit in UTC.
// Weeks start on Sunday. Invalid input or unit yields the invalid instant.
func (i Instant) StartOf(u Unit) Instant {
	if !i.valid {
		return i
	}
	t := i.Time()
	switch u {
	case UnitYear:
		t = time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case UnitMonth:
		t = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case UnitWeek:
		t = time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, time.UTC)
	case UnitDay:
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case UnitHour:
		t = t.Truncate(time.Hour)
	case UnitMinute:
		t = t.Truncate(time.Minute)
	case UnitSecond:
		t = t.Truncate(time.Second)
	case UnitMillisecond:
		return i
	default:
		return Invalid()
	}
	return FromTime(t)
}

// EndOf returns the last representable millisecond of the given unit in UTC.
func (i Instant) EndOf(u Unit) Instant {
	if !i.valid {
		return i
	}
	start := i.StartOf(u)
	if !start.valid {
		return Invalid()
	}
	return start.Add(1, u).Subtract(1, UnitMillisecond)
}

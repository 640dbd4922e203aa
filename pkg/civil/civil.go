// SPDX-License-Identifier: MPL-2.0

// Package civil converts instants into the wall-clock date/time fields a
// clock in a named timezone would show.
//
// Conversion never fails past the package boundary: when the zone is not
// recognized by the host timezone database, the instant's UTC fields are
// substituted and the second return value reports the fallback.
package civil

import (
	"fmt"

	"tempora/internal/hostcal"
	"tempora/pkg/instant"
)

// Time is the wall-clock decomposition of an instant inside a timezone.
// It is always derived, never stored.
type Time struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-31
	Hour   int // 0-23
	Minute int
	Second int
}

// String renders the fields in 24-hour numeric form.
func (c Time) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

// FromInstant converts an instant to civil time under the given zone.
// The boolean is false when the zone was not recognized (UTC fields are
// substituted) or the instant is invalid (zero fields).
func FromInstant(i instant.Instant, zone string) (Time, bool) {
	if !i.IsValid() {
		return Time{}, false
	}

	f, err := hostcal.Civil(i.UnixMilli(), zone)
	if err != nil {
		// Safe default: the same instant's UTC clock.
		f, _ = hostcal.Civil(i.UnixMilli(), hostcal.ZoneUTC)
		return fromFields(f), false
	}
	return fromFields(f), true
}

func fromFields(f hostcal.Fields) Time {
	return Time{
		Year:   f.Year,
		Month:  f.Month,
		Day:    f.Day,
		Hour:   f.Hour,
		Minute: f.Minute,
		Second: f.Second,
	}
}

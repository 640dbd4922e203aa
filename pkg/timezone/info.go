// SPDX-License-Identifier: MPL-2.0

package timezone

import (
	"tempora/internal/hostcal"
	"tempora/pkg/instant"
)

// Info is a zone's metadata at one instant. Offset, DST flag and
// abbreviation all derive from the same civil conversion of that instant,
// so they are mutually consistent.
type Info struct {
	Name          string
	OffsetMinutes int // east of UTC; negative is west
	IsDST         bool
	Abbreviation  string
}

// InfoAt reports the zone's metadata at the given instant. Unknown zones
// echo the requested name with UTC defaults (offset 0, no DST, "UTC").
func InfoAt(i instant.Instant, zone string) Info {
	info := Info{Name: zone, Abbreviation: hostcal.ZoneUTC}
	if !i.IsValid() || !hostcal.IsZoneSupported(zone) {
		return info
	}

	info.OffsetMinutes = OffsetMinutes(i, zone)
	info.IsDST = IsDST(i, zone)
	if abbr, err := hostcal.Abbreviation(i.UnixMilli(), zone); err == nil && abbr != "" {
		info.Abbreviation = abbr
	}
	return info
}

// SupportedZones lists the timezone identifiers the host database knows.
func SupportedZones() []string {
	return hostcal.SupportedZones()
}

// IsSupported reports whether the host database recognizes the zone.
func IsSupported(zone string) bool {
	return hostcal.IsZoneSupported(zone)
}

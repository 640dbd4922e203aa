// SPDX-License-Identifier: MPL-2.0

// Package format renders instants as strings driven by a token pattern
// ("YYYY-MM-DD HH:mm:ss"), with locale-aware month/weekday names and
// timezone-aware civil fields.
//
// Tokens are matched longest-first so that, for example, "YYYY" is never
// consumed as two "YY" tokens. Characters that match no token are copied
// through unchanged. Rendering never fails: an invalid instant yields the
// literal "Invalid Date", an unknown zone falls back to UTC, and an unknown
// locale falls back to en-US.
package format

import (
	"fmt"
	"strings"

	"tempora/internal/hostcal"
	"tempora/pkg/civil"
	"tempora/pkg/instant"
)

const (
	// DefaultPattern is used when no pattern is supplied.
	DefaultPattern = "YYYY-MM-DD HH:mm:ss"
	// DefaultLocale is used when no locale is supplied.
	DefaultLocale = "en-US"
	// DefaultZone is used when no zone is supplied.
	DefaultZone = hostcal.ZoneUTC

	// invalidDisplay is the fixed rendering of the invalid instant.
	invalidDisplay = "Invalid Date"
)

// tokens lists the recognized pattern tokens, longest first. The ordering
// is load-bearing: the scanner tries tokens in this order, so every longer
// token must precede its prefixes ("YYYY" before "YY", "MMMM" before "MMM"
// before "MM", "dddd" before "ddd").
var tokens = []string{
	"YYYY", "MMMM", "dddd",
	"MMM", "ddd",
	"YY", "MM", "DD", "HH", "hh", "mm", "ss",
	"A", "a", "Z",
}

// Options adjust rendering. Zero values select the defaults.
type Options struct {
	// Locale is a BCP-47 identifier for month/weekday names ("en-US").
	Locale string
	// Zone is the timezone the civil fields are rendered in ("UTC").
	Zone string
	// Hour12 forces or suppresses the 12-hour clock. When nil, 12-hour
	// rendering is inferred from the presence of an "a", "A" or "hh" token.
	Hour12 *bool
}

// Render formats the instant against the pattern.
func Render(i instant.Instant, pattern string, opts Options) string {
	if !i.IsValid() {
		return invalidDisplay
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}
	if opts.Zone == "" {
		opts.Zone = DefaultZone
	}

	zone := opts.Zone
	if !hostcal.IsZoneSupported(zone) {
		zone = hostcal.ZoneUTC
	}

	ct, _ := civil.FromInstant(i, zone)
	hour12 := resolveHour12(pattern, opts.Hour12)
	values := tokenValues(i, ct, zone, opts.Locale, hour12)

	var b strings.Builder
	b.Grow(len(pattern) + 16)
	for pos := 0; pos < len(pattern); {
		tok, ok := matchToken(pattern[pos:])
		if !ok {
			b.WriteByte(pattern[pos])
			pos++
			continue
		}
		b.WriteString(values[tok])
		pos += len(tok)
	}
	return b.String()
}

// resolveHour12 applies the explicit option, or infers 12-hour rendering
// from the pattern's tokens.
func resolveHour12(pattern string, explicit *bool) bool {
	if explicit != nil {
		return *explicit
	}
	for pos := 0; pos < len(pattern); {
		tok, ok := matchToken(pattern[pos:])
		if !ok {
			pos++
			continue
		}
		if tok == "a" || tok == "A" || tok == "hh" {
			return true
		}
		pos += len(tok)
	}
	return false
}

// matchToken returns the longest token prefixing s.
func matchToken(s string) (string, bool) {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok) {
			return tok, true
		}
	}
	return "", false
}

// tokenValues assembles the substitution table for one rendering.
func tokenValues(i instant.Instant, ct civil.Time, zone, locale string, hour12 bool) map[string]string {
	ms := i.UnixMilli()
	pm := ct.Hour >= 12
	clockHour := ct.Hour
	if hour12 {
		clockHour = hourOn12Clock(ct.Hour)
	}

	return map[string]string{
		"YYYY": fmt.Sprintf("%04d", ct.Year),
		"YY":   fmt.Sprintf("%02d", ct.Year%100),
		"MMMM": monthName(ms, zone, locale, false),
		"MMM":  monthName(ms, zone, locale, true),
		"MM":   fmt.Sprintf("%02d", ct.Month),
		"DD":   fmt.Sprintf("%02d", ct.Day),
		"dddd": weekdayName(ms, zone, locale, false),
		"ddd":  weekdayName(ms, zone, locale, true),
		"HH":   fmt.Sprintf("%02d", clockHour),
		"hh":   fmt.Sprintf("%02d", hourOn12Clock(ct.Hour)),
		"mm":   fmt.Sprintf("%02d", ct.Minute),
		"ss":   fmt.Sprintf("%02d", ct.Second),
		"A":    hostcal.DayPeriod(pm),
		"a":    strings.ToLower(hostcal.DayPeriod(pm)),
		"Z":    abbreviation(ms, zone),
	}
}

// hourOn12Clock maps a 24-hour value onto the 12-hour dial.
func hourOn12Clock(hour int) int {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return h
}

func monthName(ms int64, zone, locale string, short bool) string {
	name, err := hostcal.MonthName(ms, zone, locale, short)
	if err != nil {
		return ""
	}
	return name
}

func weekdayName(ms int64, zone, locale string, short bool) string {
	name, err := hostcal.WeekdayName(ms, zone, locale, short)
	if err != nil {
		return ""
	}
	return name
}

func abbreviation(ms int64, zone string) string {
	abbr, err := hostcal.Abbreviation(ms, zone)
	if err != nil || abbr == "" {
		return hostcal.ZoneUTC
	}
	return abbr
}

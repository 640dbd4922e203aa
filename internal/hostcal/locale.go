// SPDX-License-Identifier: MPL-2.0

package hostcal

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// DefaultLocale is the fallback locale for name rendering.
const DefaultLocale = "en-US"

var localeSet struct {
	once    sync.Once
	ids     []monday.Locale // index-aligned with matcher tags
	bcp47   []string        // sorted BCP-47 forms for enumeration
	matcher language.Matcher
}

// initLocales builds the locale matcher from monday's supported set.
func initLocales() {
	ids := monday.ListLocales()
	tags := make([]language.Tag, 0, len(ids))
	kept := make([]monday.Locale, 0, len(ids))
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		bcp := strings.ReplaceAll(string(id), "_", "-")
		tag, err := language.Parse(bcp)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		kept = append(kept, id)
		names = append(names, bcp)
	}
	sort.Strings(names)

	localeSet.ids = kept
	localeSet.bcp47 = names
	localeSet.matcher = language.NewMatcher(tags)
}

// matchLocale resolves a BCP-47 locale identifier to the closest supported
// monday locale, falling back to en-US for unknown or unparsable input.
func matchLocale(locale string) monday.Locale {
	localeSet.once.Do(initLocales)

	tag, err := language.Parse(locale)
	if err != nil {
		return monday.LocaleEnUS
	}
	_, idx, conf := localeSet.matcher.Match(tag)
	if conf == language.No {
		return monday.LocaleEnUS
	}
	return localeSet.ids[idx]
}

// SupportedLocales lists the locale identifiers name rendering understands,
// in BCP-47 form, sorted.
func SupportedLocales() []string {
	localeSet.once.Do(initLocales)
	out := make([]string, len(localeSet.bcp47))
	copy(out, localeSet.bcp47)
	return out
}

// MonthName renders the localized month name for an instant under a zone.
func MonthName(ms int64, zone, locale string, short bool) (string, error) {
	t, err := localized(ms, zone)
	if err != nil {
		return "", err
	}
	layout := "January"
	if short {
		layout = "Jan"
	}
	return monday.Format(t, layout, matchLocale(locale)), nil
}

// WeekdayName renders the localized weekday name for an instant under a zone.
func WeekdayName(ms int64, zone, locale string, short bool) (string, error) {
	t, err := localized(ms, zone)
	if err != nil {
		return "", err
	}
	layout := "Monday"
	if short {
		layout = "Mon"
	}
	return monday.Format(t, layout, matchLocale(locale)), nil
}

// DayPeriod returns the upper-case day-period marker. Callers lowercase it
// for the "a" format token.
func DayPeriod(pm bool) string {
	if pm {
		return "PM"
	}
	return "AM"
}

// localized returns the instant shifted into the zone's clock.
func localized(ms int64, zone string) (time.Time, error) {
	if zone == ZoneUTC {
		return time.UnixMilli(ms).UTC(), nil
	}
	loc, err := lookupLocation(zone)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).In(loc), nil
}

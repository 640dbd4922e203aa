// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"fmt"
	"math"
)

// Relative time phrasing thresholds, expressed in the next-smaller unit.
// Below each threshold the phrase stays in the smaller unit; at or above it
// the phrase moves up (e.g. 45 seconds becomes "a minute").
const (
	relSecondsToMinute = 45
	relSecondsSingular = 90
	relMinutesToHour   = 45
	relMinutesSingular = 90
	relHoursToDay      = 22
	relHoursSingular   = 36
	relDaysToMonth     = 26
	relDaysSingular    = 46
	relMonthsToYear    = 11
)

// RelativeTo renders the instant as a human phrase relative to ref, such as
// "a few seconds ago", "in 3 hours" or "2 months ago". If either instant is
// invalid the result is "Invalid Date".
func (i Instant) RelativeTo(ref Instant) string {
	if !i.valid || !ref.valid {
		return "Invalid Date"
	}
	deltaMS := i.ms - ref.ms
	future := deltaMS > 0
	phrase := relativePhrase(math.Abs(float64(deltaMS)))
	if future {
		return "in " + phrase
	}
	return phrase + " ago"
}

// Relative renders the instant relative to the current clock (see NowFunc).
func (i Instant) Relative() string {
	return i.RelativeTo(Now())
}

// relativePhrase picks the unit and wording for an absolute delta in
// milliseconds.
func relativePhrase(absMS float64) string {
	seconds := absMS / 1000
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24
	months := days / 30
	years := months / 12

	switch {
	case seconds < relSecondsToMinute:
		return "a few seconds"
	case seconds < relSecondsSingular:
		return "a minute"
	case minutes < relMinutesToHour:
		return fmt.Sprintf("%d minutes", int(math.Round(minutes)))
	case minutes < relMinutesSingular:
		return "an hour"
	case hours < relHoursToDay:
		return fmt.Sprintf("%d hours", int(math.Round(hours)))
	case hours < relHoursSingular:
		return "a day"
	case days < relDaysToMonth:
		return fmt.Sprintf("%d days", int(math.Round(days)))
	case days < relDaysSingular:
		return "a month"
	case months < relMonthsToYear:
		return fmt.Sprintf("%d months", int(math.Round(months)))
	case years < 1.5:
		return "a year"
	default:
		return fmt.Sprintf("%d years", int(math.Round(years)))
	}
}

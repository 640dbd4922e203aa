// SPDX-License-Identifier: MPL-2.0

// Package instant provides the Instant value type: an absolute, UTC-anchored
// point in time stored as epoch milliseconds.
//
// Construction never fails. Inputs that cannot be interpreted produce the
// Invalid sentinel, which propagates through arithmetic and comparison
// operations instead of raising: arithmetic on an invalid instant yields an
// invalid instant, differences yield NaN, and comparisons report false.
package instant

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrUnparsable is returned by ParseStrict when an input string matches
	// none of the accepted timestamp layouts.
	ErrUnparsable = errors.New("unparsable instant")
	// ErrUnknownInput is returned by FromStrict when an input value has a
	// type that cannot be interpreted as an instant.
	ErrUnknownInput = errors.New("unknown instant input type")
)

// parseLayouts are the accepted ISO-8601-like string layouts, tried in order.
// Layouts without an explicit offset are interpreted as UTC.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Instant is an absolute point in time with millisecond precision.
// The zero value is the invalid instant.
type Instant struct {
	ms    int64
	valid bool
}

// Invalid returns the invalid-instant sentinel.
func Invalid() Instant {
	return Instant{}
}

// FromMillis returns the instant at the given epoch-millisecond count.
func FromMillis(ms int64) Instant {
	return Instant{ms: ms, valid: true}
}

// FromTime converts a time.Time into an Instant, truncating to milliseconds.
// The zero time is a valid instant (it is a representable point in time).
func FromTime(t time.Time) Instant {
	return Instant{ms: t.UnixMilli(), valid: true}
}

// Parse interprets an ISO-8601-like timestamp string, or a bare numeric
// string as epoch milliseconds. Unparsable inputs yield the invalid instant.
func Parse(s string) Instant {
	i, _ := ParseStrict(s)
	return i
}

// ParseStrict is Parse with the cause of a failed parse exposed.
// The returned instant is invalid exactly when the error is non-nil.
func ParseStrict(s string) (Instant, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Invalid(), fmt.Errorf("%w: empty string", ErrUnparsable)
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromMillis(ms), nil
	}
	return Invalid(), fmt.Errorf("%w: %q", ErrUnparsable, s)
}

// From builds an Instant from a heterogeneous input: another Instant, a
// string (see Parse), a numeric epoch-millisecond value, or a time.Time.
// Any other input yields the invalid instant.
func From(v any) Instant {
	i, _ := FromStrict(v)
	return i
}

// FromStrict is From with the rejection cause exposed.
func FromStrict(v any) (Instant, error) {
	switch x := v.(type) {
	case Instant:
		return x, nil
	case time.Time:
		return FromTime(x), nil
	case string:
		return ParseStrict(x)
	case int64:
		return FromMillis(x), nil
	case int:
		return FromMillis(int64(x)), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Invalid(), fmt.Errorf("%w: non-finite number", ErrUnknownInput)
		}
		return FromMillis(int64(x)), nil
	case nil:
		return Invalid(), fmt.Errorf("%w: nil", ErrUnknownInput)
	default:
		return Invalid(), fmt.Errorf("%w: %T", ErrUnknownInput, v)
	}
}

// IsValid reports whether the instant represents a real point in time.
func (i Instant) IsValid() bool {
	return i.valid
}

// UnixMilli returns the epoch-millisecond count. Zero for invalid instants.
func (i Instant) UnixMilli() int64 {
	if !i.valid {
		return 0
	}
	return i.ms
}

// Time returns the instant as a time.Time in UTC.
// Invalid instants map to the zero time.
func (i Instant) Time() time.Time {
	if !i.valid {
		return time.Time{}
	}
	return time.UnixMilli(i.ms).UTC()
}

// String renders the instant as RFC 3339 with millisecond precision, or the
// literal "Invalid Date" for the invalid sentinel.
func (i Instant) String() string {
	if !i.valid {
		return "Invalid Date"
	}
	return i.Time().Format("2006-01-02T15:04:05.000Z07:00")
}

// SPDX-License-Identifier: MPL-2.0

package format

import (
	"testing"

	"tempora/pkg/instant"
)

func at(t *testing.T, s string) instant.Instant {
	t.Helper()
	i, err := instant.ParseStrict(s)
	if err != nil {
		t.Fatalf("ParseStrict(%q): %v", s, err)
	}
	return i
}

func boolPtr(b bool) *bool { return &b }

func TestRender(t *testing.T) {
	t.Parallel()

	noon := "2024-03-21T12:00:00Z" // a Thursday

	tests := []struct {
		name    string
		when    string
		pattern string
		opts    Options
		want    string
	}{
		{"default pattern utc", noon, "", Options{}, "2024-03-21 12:00:00"},
		{"explicit default pattern", noon, "YYYY-MM-DD HH:mm:ss", Options{}, "2024-03-21 12:00:00"},
		{"tokyo wall clock", noon, "HH:mm:ss", Options{Zone: "Asia/Tokyo"}, "21:00:00"},
		{"new york wall clock", noon, "HH:mm:ss", Options{Zone: "America/New_York"}, "08:00:00"},
		{"longest match wins", noon, "YYYY-YY", Options{}, "2024-24"},
		{"month names", noon, "MMMM MMM MM", Options{}, "March Mar 03"},
		{"weekday names", noon, "dddd ddd", Options{}, "Thursday Thu"},
		{"day period", noon, "hh:mm A", Options{}, "12:00 PM"},
		{"lowercase day period", "2024-03-21T00:30:00Z", "hh:mm a", Options{}, "12:30 am"},
		{"zone abbreviation", noon, "Z", Options{Zone: "America/New_York"}, "EDT"},
		{"utc abbreviation", noon, "Z", Options{}, "UTC"},
		{"literals pass through", noon, "[YYYY] YYYY?!", Options{}, "[2024] 2024?!"},
		{"unmatched letters pass through", noon, "QQ YYYY", Options{}, "QQ 2024"},
		{"unknown zone falls back to utc", noon, "HH:mm Z", Options{Zone: "Invalid/Timezone"}, "12:00 UTC"},
		{"unknown locale falls back to english", noon, "MMMM", Options{Locale: "xx-XX"}, "March"},
		{"french month name", noon, "MMMM", Options{Locale: "fr-FR"}, "mars"},
		{"german weekday name", noon, "dddd", Options{Locale: "de-DE"}, "Donnerstag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Render(at(t, tt.when), tt.pattern, tt.opts); got != tt.want {
				t.Errorf("Render(%q, %+v) = %q, want %q", tt.pattern, tt.opts, got, tt.want)
			}
		})
	}
}

func TestRenderInvalidInstant(t *testing.T) {
	t.Parallel()

	if got := Render(instant.Invalid(), DefaultPattern, Options{}); got != "Invalid Date" {
		t.Errorf("Render(invalid) = %q, want %q", got, "Invalid Date")
	}
}

func TestHour12Resolution(t *testing.T) {
	t.Parallel()

	afternoon := "2024-03-21T15:00:00Z"

	cases := []struct {
		name    string
		pattern string
		opts    Options
		want    string
	}{
		{"HH stays 24h without trigger", "HH:mm", Options{}, "15:00"},
		{"hh token implies 12h", "hh:mm", Options{}, "03:00"},
		{"A token switches HH to 12h", "HH:mm A", Options{}, "03:00 PM"},
		{"a token switches HH to 12h", "HH:mm a", Options{}, "03:00 pm"},
		{"explicit hour12 forces HH", "HH:mm", Options{Hour12: boolPtr(true)}, "03:00"},
		{"explicit hour12 false beats A token", "HH:mm A", Options{Hour12: boolPtr(false)}, "15:00 PM"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Render(at(t, afternoon), tt.pattern, tt.opts); got != tt.want {
				t.Errorf("Render(%q, %+v) = %q, want %q", tt.pattern, tt.opts, got, tt.want)
			}
		})
	}

	// Midnight renders as 12 on the 12-hour dial.
	if got := Render(at(t, "2024-03-21T00:05:00Z"), "hh:mm A", Options{}); got != "12:05 AM" {
		t.Errorf("midnight = %q, want %q", got, "12:05 AM")
	}
}

// Formatting the default UTC pattern, reparsing the output and formatting
// again is a fixed point.
func TestRenderRoundTripUTC(t *testing.T) {
	t.Parallel()

	first := Render(at(t, "2024-03-21T12:00:00Z"), DefaultPattern, Options{})
	second := Render(instant.Parse(first), DefaultPattern, Options{})
	if first != second {
		t.Errorf("round trip diverged: %q then %q", first, second)
	}
}

func TestMatchTokenOrdering(t *testing.T) {
	t.Parallel()

	// Every token must resolve to itself, not a shorter prefix.
	for _, tok := range tokens {
		got, ok := matchToken(tok)
		if !ok || got != tok {
			t.Errorf("matchToken(%q) = %q, %v", tok, got, ok)
		}
	}
}

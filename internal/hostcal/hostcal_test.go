// SPDX-License-Identifier: MPL-2.0

package hostcal

import (
	"errors"
	"testing"
	"time"
)

// noonUTC is 2024-03-21T12:00:00Z, a Thursday.
const noonUTC = int64(1711022400000)

func TestCivil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		zone string
		want Fields
	}{
		{"utc direct", "UTC", Fields{2024, 3, 21, 12, 0, 0}},
		{"tokyo via renderer", "Asia/Tokyo", Fields{2024, 3, 21, 21, 0, 0}},
		{"new york via renderer", "America/New_York", Fields{2024, 3, 21, 8, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Civil(noonUTC, tt.zone)
			if err != nil {
				t.Fatalf("Civil(%s): %v", tt.zone, err)
			}
			if got != tt.want {
				t.Errorf("Civil(%s) = %+v, want %+v", tt.zone, got, tt.want)
			}
		})
	}
}

func TestCivilUnknownZone(t *testing.T) {
	t.Parallel()

	_, err := Civil(noonUTC, "Invalid/Timezone")
	if !errors.Is(err, ErrUnknownZone) {
		t.Errorf("error should wrap ErrUnknownZone, got: %v", err)
	}
}

func TestReparseCivil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Fields
		wantErr bool
	}{
		{"2024-03-21 08:05:09", Fields{2024, 3, 21, 8, 5, 9}, false},
		{"2024-03-21", Fields{}, true},
		{"2024-03-21 08:05", Fields{}, true},
		{"2024-03-xx 08:05:09", Fields{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := reparseCivil(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrBadCivilRender) {
					t.Fatalf("error should wrap ErrBadCivilRender, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("reparseCivil(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("reparseCivil(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAbbreviation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ms   int64
		zone string
		want string
	}{
		{"utc", noonUTC, "UTC", "UTC"},
		{"tokyo", noonUTC, "Asia/Tokyo", "JST"},
		{"new york daylight", noonUTC, "America/New_York", "EDT"},
		{"new york standard", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC).UnixMilli(), "America/New_York", "EST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Abbreviation(tt.ms, tt.zone)
			if err != nil {
				t.Fatalf("Abbreviation(%s): %v", tt.zone, err)
			}
			if got != tt.want {
				t.Errorf("Abbreviation(%s) = %q, want %q", tt.zone, got, tt.want)
			}
		})
	}
}

func TestIsZoneSupported(t *testing.T) {
	t.Parallel()

	if !IsZoneSupported("UTC") {
		t.Error("UTC must always be supported")
	}
	if !IsZoneSupported("America/New_York") {
		t.Error("America/New_York should be supported")
	}
	if IsZoneSupported("Invalid/Timezone") {
		t.Error("Invalid/Timezone should not be supported")
	}
}

func TestWeekday(t *testing.T) {
	t.Parallel()

	got, err := Weekday(noonUTC, "UTC")
	if err != nil {
		t.Fatal(err)
	}
	if got != time.Thursday {
		t.Errorf("Weekday = %s, want Thursday", got)
	}

	// Tokyo is already on Friday when it is late Thursday evening in UTC.
	lateEvening := time.Date(2024, 3, 21, 22, 0, 0, 0, time.UTC).UnixMilli()
	got, err = Weekday(lateEvening, "Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	if got != time.Friday {
		t.Errorf("Weekday in Tokyo = %s, want Friday", got)
	}
}

func TestSupportedLocales(t *testing.T) {
	t.Parallel()

	locales := SupportedLocales()
	if len(locales) == 0 {
		t.Fatal("SupportedLocales returned nothing")
	}
	found := false
	for _, id := range locales {
		if id == "en-US" {
			found = true
			break
		}
	}
	if !found {
		t.Error("en-US missing from SupportedLocales")
	}
}

func TestMonthAndWeekdayNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		locale string
		short  bool
		month  string
		day    string
	}{
		{"english long", "en-US", false, "March", "Thursday"},
		{"english short", "en-US", true, "Mar", "Thu"},
		{"french long", "fr-FR", false, "mars", "jeudi"},
		{"german long", "de-DE", false, "März", "Donnerstag"},
		{"unknown locale falls back", "xx-XX", false, "March", "Thursday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			month, err := MonthName(noonUTC, "UTC", tt.locale, tt.short)
			if err != nil {
				t.Fatal(err)
			}
			if month != tt.month {
				t.Errorf("MonthName = %q, want %q", month, tt.month)
			}
			day, err := WeekdayName(noonUTC, "UTC", tt.locale, tt.short)
			if err != nil {
				t.Fatal(err)
			}
			if day != tt.day {
				t.Errorf("WeekdayName = %q, want %q", day, tt.day)
			}
		})
	}
}

func TestDayPeriod(t *testing.T) {
	t.Parallel()

	if got := DayPeriod(false); got != "AM" {
		t.Errorf("DayPeriod(false) = %q, want AM", got)
	}
	if got := DayPeriod(true); got != "PM" {
		t.Errorf("DayPeriod(true) = %q, want PM", got)
	}
}

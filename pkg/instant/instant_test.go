// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantMilli int64
	}{
		{"rfc3339", "2024-03-21T12:00:00Z", true, 1711022400000},
		{"rfc3339 with offset", "2024-03-21T21:00:00+09:00", true, 1711022400000},
		{"rfc3339 fractional", "2024-03-21T12:00:00.250Z", true, 1711022400250},
		{"naive datetime", "2024-03-21T12:00:00", true, 1711022400000},
		{"space separated", "2024-03-21 12:00:00", true, 1711022400000},
		{"date only", "2024-03-21", true, 1710979200000},
		{"epoch millis", "1711022400000", true, 1711022400000},
		{"negative epoch millis", "-1000", true, -1000},
		{"surrounding whitespace", "  2024-03-21  ", true, 1710979200000},
		{"empty", "", false, 0},
		{"garbage", "not-a-date", false, 0},
		{"partial", "2024-13-45", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(tt.input)
			if got.IsValid() != tt.wantValid {
				t.Fatalf("Parse(%q).IsValid() = %v, want %v", tt.input, got.IsValid(), tt.wantValid)
			}
			if got.IsValid() && got.UnixMilli() != tt.wantMilli {
				t.Errorf("Parse(%q).UnixMilli() = %d, want %d", tt.input, got.UnixMilli(), tt.wantMilli)
			}
		})
	}
}

func TestParseStrictError(t *testing.T) {
	t.Parallel()

	_, err := ParseStrict("definitely not a date")
	if !errors.Is(err, ErrUnparsable) {
		t.Errorf("error should wrap ErrUnparsable, got: %v", err)
	}
}

func TestFrom(t *testing.T) {
	t.Parallel()

	ref := FromMillis(1711022400000)

	tests := []struct {
		name      string
		input     any
		wantValid bool
		wantMilli int64
	}{
		{"instant passthrough", ref, true, 1711022400000},
		{"string", "2024-03-21T12:00:00Z", true, 1711022400000},
		{"int64", int64(1711022400000), true, 1711022400000},
		{"int", 1500, true, 1500},
		{"float64", float64(2500), true, 2500},
		{"time.Time", time.Date(2024, 3, 21, 12, 0, 0, 0, time.UTC), true, 1711022400000},
		{"invalid instant passthrough", Invalid(), false, 0},
		{"nil", nil, false, 0},
		{"nan", math.NaN(), false, 0},
		{"unsupported type", struct{}{}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := From(tt.input)
			if got.IsValid() != tt.wantValid {
				t.Fatalf("From(%v).IsValid() = %v, want %v", tt.input, got.IsValid(), tt.wantValid)
			}
			if got.IsValid() && got.UnixMilli() != tt.wantMilli {
				t.Errorf("From(%v).UnixMilli() = %d, want %d", tt.input, got.UnixMilli(), tt.wantMilli)
			}
		})
	}
}

func TestFromStrictUnknownType(t *testing.T) {
	t.Parallel()

	_, err := FromStrict([]byte("2024"))
	if !errors.Is(err, ErrUnknownInput) {
		t.Errorf("error should wrap ErrUnknownInput, got: %v", err)
	}
}

func TestInvalidString(t *testing.T) {
	t.Parallel()

	if got := Invalid().String(); got != "Invalid Date" {
		t.Errorf("Invalid().String() = %q, want %q", got, "Invalid Date")
	}
	if got := FromMillis(1711022400000).String(); got != "2024-03-21T12:00:00.000Z" {
		t.Errorf("String() = %q, want %q", got, "2024-03-21T12:00:00.000Z")
	}
}

func TestNowUsesNowFunc(t *testing.T) {
	fixed := time.Date(2024, 3, 21, 12, 0, 0, 0, time.UTC)
	prev := NowFunc
	NowFunc = func() time.Time { return fixed }
	t.Cleanup(func() { NowFunc = prev })

	if got := Now().UnixMilli(); got != fixed.UnixMilli() {
		t.Errorf("Now().UnixMilli() = %d, want %d", got, fixed.UnixMilli())
	}
}

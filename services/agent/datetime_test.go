package agent

import (
	"strings"
	"testing"
	"time"

	"barberflow/services/booking"
)

// Fixed reference clock: Tuesday 2026-03-10 09:00 UTC.
var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func resolveUTC(t *testing.T, text string) *ResolvedDatetime {
	t.Helper()
	res, err := ResolveDatetime(text, "", testNow, time.UTC)
	if err != nil {
		t.Fatalf("ResolveDatetime(%q): %v", text, err)
	}
	return res
}

func TestResolveDatetimeRelativeKeywords(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"tomorrow 15:00", "2026-03-11T15:00:00Z"},
		{"mañana 10:30", "2026-03-11T10:30:00Z"},
		{"today 18:00", "2026-03-10T18:00:00Z"},
		{"hoy 11:00", "2026-03-10T11:00:00Z"},
		{"day after tomorrow 09:15", "2026-03-12T09:15:00Z"},
		{"pasado mañana 09:15", "2026-03-12T09:15:00Z"},
		// Missing time-of-day defaults to 15:00.
		{"tomorrow", "2026-03-11T15:00:00Z"},
		{"today", "2026-03-10T15:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res := resolveUTC(t, tt.text)
			if res.ISO != tt.want {
				t.Errorf("ISO = %q, want %q", res.ISO, tt.want)
			}
		})
	}
}

func TestResolveDatetimeAbsoluteForms(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"2026-03-20T10:30:00Z", "2026-03-20T10:30:00Z"},
		{"2026-03-20 10:30", "2026-03-20T10:30:00Z"},
		{"2026-03-20", "2026-03-20T15:00:00Z"}, // date only, default hour
		{"20/03/2026", "2026-03-20T15:00:00Z"}, // day/month/year
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res := resolveUTC(t, tt.text)
			if res.ISO != tt.want {
				t.Errorf("ISO = %q, want %q", res.ISO, tt.want)
			}
		})
	}
}

func TestResolveDatetimeMeridiem(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"tomorrow 3:30pm", "2026-03-11T15:30:00Z"},
		{"tomorrow 10:00 AM", "2026-03-11T10:00:00Z"},
		{"tomorrow 12:00pm", "2026-03-11T12:00:00Z"}, // noon
		{"tomorrow 12:15am", "2026-03-11T00:15:00Z"}, // past midnight
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res := resolveUTC(t, tt.text)
			if res.ISO != tt.want {
				t.Errorf("ISO = %q, want %q", res.ISO, tt.want)
			}
		})
	}
}

func TestResolveDatetimeTimeOnly(t *testing.T) {
	// A bare time with no date resolves against today.
	res := resolveUTC(t, "18:30")
	if res.ISO != "2026-03-10T18:30:00Z" {
		t.Errorf("ISO = %q, want today at 18:30", res.ISO)
	}
}

func TestResolveDatetimeUnparseable(t *testing.T) {
	for _, text := range []string{"whenever works", "the usual", ""} {
		_, err := ResolveDatetime(text, "", testNow, time.UTC)
		if booking.CodeOf(err) != booking.CodeValidation {
			t.Errorf("ResolveDatetime(%q): got code %q, want %q",
				text, booking.CodeOf(err), booking.CodeValidation)
		}
	}
}

func TestResolveDatetimeInvalidTimeOfDay(t *testing.T) {
	_, err := ResolveDatetime("tomorrow 27:90", "", testNow, time.UTC)
	if booking.CodeOf(err) != booking.CodeValidation {
		t.Errorf("got code %q, want %q", booking.CodeOf(err), booking.CodeValidation)
	}
}

func TestResolveDatetimeExplicitTimezone(t *testing.T) {
	res, err := ResolveDatetime("tomorrow 15:00", "America/Argentina/Cordoba", testNow, time.UTC)
	if err != nil {
		t.Fatalf("ResolveDatetime: %v", err)
	}
	if res.Timezone != "America/Argentina/Cordoba" {
		t.Errorf("timezone = %q, want America/Argentina/Cordoba", res.Timezone)
	}
	if !strings.HasSuffix(res.ISO, "-03:00") {
		t.Errorf("ISO = %q, want a -03:00 offset", res.ISO)
	}
}

func TestResolveDatetimeUnknownTimezone(t *testing.T) {
	_, err := ResolveDatetime("tomorrow 15:00", "Mars/Olympus_Mons", testNow, time.UTC)
	if booking.CodeOf(err) != booking.CodeValidation {
		t.Errorf("got code %q, want %q", booking.CodeOf(err), booking.CodeValidation)
	}
}

func TestResolveDatetimeFormattedOutput(t *testing.T) {
	res := resolveUTC(t, "tomorrow 15:00")
	if res.Formatted != "Wednesday, 11 March 2026 at 15:00" {
		t.Errorf("Formatted = %q", res.Formatted)
	}
	if res.Original != "tomorrow 15:00" {
		t.Errorf("Original = %q", res.Original)
	}
}

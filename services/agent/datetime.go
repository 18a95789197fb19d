package agent

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"barberflow/services/booking"
)

// DefaultTimezone is used when neither the tool call nor the wiring supplies one.
const DefaultTimezone = "America/Argentina/Cordoba"

// timePattern matches "15:00", "3:30pm", "10:00 AM".
var timePattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)?`)

var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006",
}

// ResolvedDatetime is the result of resolving free-form date/time text.
type ResolvedDatetime struct {
	Original  string `json:"original"`
	ISO       string `json:"iso"`
	Formatted string `json:"formatted"`
	Timezone  string `json:"timezone"`
}

// ResolveDatetime converts text like "tomorrow 15:00" or "2025-12-20 10:30"
// into an ISO 8601 timestamp in the given timezone. Relative keywords are
// resolved against now; a missing time-of-day defaults to 15:00. Text with
// neither a recognizable date nor a time is rejected.
func ResolveDatetime(text, timezone string, now time.Time, fallback *time.Location) (*ResolvedDatetime, error) {
	loc := fallback
	if timezone != "" {
		parsed, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, booking.NewError(booking.CodeValidation, "unknown timezone %q", timezone)
		}
		loc = parsed
	}
	if loc == nil {
		loc = time.UTC
	}

	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	lower := strings.ToLower(strings.TrimSpace(text))

	target := today
	dateKnown := false
	switch {
	// Longer phrases first so "day after tomorrow" never matches as "tomorrow".
	case strings.Contains(lower, "day after tomorrow"), strings.Contains(lower, "pasado mañana"):
		target = today.AddDate(0, 0, 2)
		dateKnown = true
	case strings.Contains(lower, "tomorrow"), strings.Contains(lower, "mañana"):
		target = today.AddDate(0, 0, 1)
		dateKnown = true
	case strings.Contains(lower, "today"), strings.Contains(lower, "hoy"):
		dateKnown = true
	default:
		for _, layout := range absoluteLayouts {
			if parsed, err := time.ParseInLocation(layout, strings.TrimSpace(text), loc); err == nil {
				target = parsed
				dateKnown = true
				break
			}
		}
	}

	match := timePattern.FindStringSubmatch(text)
	if !dateKnown && match == nil {
		return nil, booking.NewError(booking.CodeValidation,
			"could not interpret %q, use something like \"tomorrow 15:00\" or \"2025-12-20T15:00:00\"", text)
	}

	if match != nil {
		hours, _ := strconv.Atoi(match[1])
		minutes, _ := strconv.Atoi(match[2])
		period := strings.ToLower(match[3])
		if period == "pm" && hours != 12 {
			hours += 12
		} else if period == "am" && hours == 12 {
			hours = 0
		}
		if hours > 23 || minutes > 59 {
			return nil, booking.NewError(booking.CodeValidation, "invalid time of day in %q", text)
		}
		target = time.Date(target.Year(), target.Month(), target.Day(), hours, minutes, 0, 0, loc)
	} else if target.Hour() == 0 && target.Minute() == 0 {
		// No explicit time anywhere: default to mid-afternoon.
		target = time.Date(target.Year(), target.Month(), target.Day(), 15, 0, 0, 0, loc)
	}

	return &ResolvedDatetime{
		Original:  text,
		ISO:       target.Format(time.RFC3339),
		Formatted: target.Format("Monday, 2 January 2006 at 15:04"),
		Timezone:  loc.String(),
	}, nil
}

package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout for time-of-day values as they travel through the API and are
// stored in TIME columns.
const Layout = "15:04"

// DateLayout for calendar dates (booking dates, pricing effective dates).
const DateLayout = "2006-01-02"

// ParseMinutes converts an "HH:MM" string to minutes since midnight.
func ParseMinutes(value string) (int, error) {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time of day %q: expected HH:MM", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}

	return hours*60 + minutes, nil
}

// FormatMinutes renders minutes since midnight back to "HH:MM".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsValid reports whether value parses as an "HH:MM" time of day.
func IsValid(value string) bool {
	_, err := ParseMinutes(value)
	return err == nil
}

// ParseDate parses a "YYYY-MM-DD" calendar date in UTC.
func ParseDate(value string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return d, nil
}

// FormatDate renders a date as "YYYY-MM-DD".
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

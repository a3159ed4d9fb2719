// Package dates provides calendar arithmetic for the date endpoints.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ShortLayout formats dates as month/day/year without padding.
const ShortLayout = "1/2/2006"

const secondsPerDay = 24 * 60 * 60

// ErrInvalidDate is returned when a date string matches none of the accepted layouts.
var ErrInvalidDate = errors.New("invalid date")

// acceptedLayouts are tried in order by Parse.
var acceptedLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Parse parses a date in one of the accepted layouts.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// DaysBetween returns the number of whole days from a to b.
// The result is negative when b is before a and truncates toward zero.
// It works on whole seconds because time.Duration saturates past ~292 years.
func DaysBetween(a, b time.Time) int {
	secs := b.Unix() - a.Unix()
	nsec := b.Nanosecond() - a.Nanosecond()

	// Give the sub-second remainder the sign of secs so truncation stays toward zero.
	switch {
	case secs > 0 && nsec < 0:
		secs--
	case secs < 0 && nsec > 0:
		secs++
	}

	return int(secs / secondsPerDay)
}

// Describe renders the day difference as a sentence.
func Describe(a, b time.Time) string {
	return fmt.Sprintf("Days between %s and %s: %d",
		a.Format(ShortLayout), b.Format(ShortLayout), DaysBetween(a, b))
}

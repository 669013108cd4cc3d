package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitdash/internal/constants"
)

// DateKey returns the canonical YYYY-MM-DD key for the calendar day of t,
// in t's location. Two times on the same calendar day always yield the same
// key regardless of time-of-day.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDateKey parses a canonical date key in the given location, returning
// midnight of that day.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// TodayInTimezone returns today's date key in the specified timezone. This
// ensures "today" is determined by the user's configured timezone, not the
// system timezone.
func TodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return DateKey(now), nil
}

// ComputeStreak counts the consecutive days with a completion entry walking
// backward one day at a time from asOf, stopping at the first missing day.
// If asOf itself has no entry the streak is zero. Pure and deterministic.
func ComputeStreak(history map[string]bool, asOf time.Time) int {
	streak := 0
	day := asOf
	for history[DateKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

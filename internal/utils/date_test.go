package utils

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateKey_SameDayDifferentTimes(t *testing.T) {
	morning := time.Date(2025, 3, 14, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC)

	if DateKey(morning) != DateKey(night) {
		t.Errorf("expected identical keys for same calendar day, got %q and %q",
			DateKey(morning), DateKey(night))
	}
	if DateKey(morning) != "2025-03-14" {
		t.Errorf("expected 2025-03-14, got %q", DateKey(morning))
	}
}

func TestParseDateKey_RoundTrip(t *testing.T) {
	parsed, err := ParseDateKey("2025-03-14", time.UTC)
	if err != nil {
		t.Fatalf("ParseDateKey failed: %v", err)
	}
	if DateKey(parsed) != "2025-03-14" {
		t.Errorf("round trip mismatch: got %q", DateKey(parsed))
	}

	if _, err := ParseDateKey("03/14/2025", time.UTC); err == nil {
		t.Errorf("expected error for malformed date key")
	}
}

func TestComputeStreak_ZeroWhenAsOfMissing(t *testing.T) {
	history := map[string]bool{
		"2025-03-13": true,
		"2025-03-12": true,
	}

	// asOf (the 14th) is not completed, so earlier days do not count.
	if got := ComputeStreak(history, day(2025, 3, 14)); got != 0 {
		t.Errorf("expected streak 0, got %d", got)
	}
}

func TestComputeStreak_StopsAtFirstGap(t *testing.T) {
	history := map[string]bool{
		"2025-03-14": true,
		"2025-03-13": true,
		// gap on the 12th
		"2025-03-11": true,
		"2025-03-10": true,
	}

	if got := ComputeStreak(history, day(2025, 3, 14)); got != 2 {
		t.Errorf("expected streak 2, got %d", got)
	}
}

func TestComputeStreak_EmptyHistory(t *testing.T) {
	if got := ComputeStreak(nil, day(2025, 3, 14)); got != 0 {
		t.Errorf("expected streak 0 for nil history, got %d", got)
	}
	if got := ComputeStreak(map[string]bool{}, day(2025, 3, 14)); got != 0 {
		t.Errorf("expected streak 0 for empty history, got %d", got)
	}
}

func TestComputeStreak_CrossesMonthBoundary(t *testing.T) {
	history := map[string]bool{
		"2025-03-02": true,
		"2025-03-01": true,
		"2025-02-28": true,
		"2025-02-27": true,
	}

	if got := ComputeStreak(history, day(2025, 3, 2)); got != 4 {
		t.Errorf("expected streak 4 across month boundary, got %d", got)
	}
}

package stats

import (
	"time"

	"github.com/julianstephens/habitdash/internal/constants"
	"github.com/julianstephens/habitdash/internal/models"
	"github.com/julianstephens/habitdash/internal/utils"
)

// Options tune a snapshot computation. Zero values fall back to the
// application defaults.
type Options struct {
	// AsOf anchors the perfect-day window; zero means now.
	AsOf time.Time

	// WindowDays bounds the trailing window scanned for perfect days.
	WindowDays int

	// EarlyHour and LateHour bound the time-of-day completion buckets:
	// strictly before EarlyHour is early, at or after LateHour is late.
	EarlyHour int
	LateHour  int
}

func (o Options) withDefaults() Options {
	if o.AsOf.IsZero() {
		o.AsOf = time.Now()
	}
	if o.WindowDays <= 0 {
		o.WindowDays = constants.PerfectDayWindowDays
	}
	if o.EarlyHour <= 0 {
		o.EarlyHour = constants.EarlyHour
	}
	if o.LateHour <= 0 {
		o.LateHour = constants.LateHour
	}
	return o
}

// Compute derives a StatsSnapshot from the current habit list. Pure: no
// caching, no side effects; consumers call it whenever they need a fresh
// snapshot.
//
// MaxStreak uses each habit's cached streak (the store's last-computed
// value), not a recomputation. Early/late counts come from the recorded
// completion times; history entries persisted without a timestamp count
// toward neither bucket.
func Compute(habits []models.Habit, opts Options) models.StatsSnapshot {
	opts = opts.withDefaults()

	snapshot := models.StatsSnapshot{
		ActiveHabits: len(habits),
	}

	for _, habit := range habits {
		snapshot.TotalCompletions += habit.CompletionCount()
		if habit.Streak > snapshot.MaxStreak {
			snapshot.MaxStreak = habit.Streak
		}
		for _, at := range habit.CompletionTimes {
			if at.Hour() < opts.EarlyHour {
				snapshot.EarlyCompletions++
			} else if at.Hour() >= opts.LateHour {
				snapshot.LateCompletions++
			}
		}
	}

	snapshot.PerfectDays = countPerfectDays(habits, opts.AsOf, opts.WindowDays)

	return snapshot
}

// countPerfectDays counts the distinct days within the trailing window on
// which every habit in the list has a completion entry. An empty list has
// no perfect days.
func countPerfectDays(habits []models.Habit, asOf time.Time, windowDays int) int {
	if len(habits) == 0 {
		return 0
	}

	perfect := 0
	for offset := 0; offset < windowDays; offset++ {
		key := utils.DateKey(asOf.AddDate(0, 0, -offset))
		all := true
		for _, habit := range habits {
			if !habit.CompletedOn(key) {
				all = false
				break
			}
		}
		if all {
			perfect++
		}
	}
	return perfect
}

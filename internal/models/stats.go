package models

// StatsSnapshot is a derived, immutable view over the current habit list.
// It is recomputed on demand and never stored by the habit store itself;
// the achievement engine persists the last snapshot it evaluated.
type StatsSnapshot struct {
	TotalCompletions int `json:"totalCompletions"`
	MaxStreak        int `json:"maxStreak"`
	PerfectDays      int `json:"perfectDays"`
	EarlyCompletions int `json:"earlyCompletions"`
	LateCompletions  int `json:"lateCompletions"`
	ActiveHabits     int `json:"activeHabits"`
}

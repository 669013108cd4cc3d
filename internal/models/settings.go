package models

// Settings holds user-tunable configuration persisted alongside the habit
// data. Zero values fall back to application defaults at read time.
type Settings struct {
	// Timezone is an IANA timezone name used to resolve "today" for date
	// keys and streaks. Empty or "Local" means the system timezone.
	Timezone string `json:"timezone"`

	// PerfectDayWindowDays bounds the trailing window scanned when counting
	// perfect days.
	PerfectDayWindowDays int `json:"perfectDayWindowDays"`
}

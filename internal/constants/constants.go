package constants

const (
	AppName            = "habitdash"
	Version            = "v0.3.0"
	DefaultConfigPath  = "~/.config/habitdash/habitdash.db"
	DefaultKeyringUser = "database-connection"

	// DateFormat is the standard date key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage record keys
	RecordHabits       = "habits"
	RecordAchievements = "achievements"
	RecordSettings     = "settings"

	// Default display attributes for new habits
	DefaultEmoji = "⭐"

	// Time-of-day completion buckets: before EarlyHour counts as an early
	// completion, at or after LateHour counts as a late one.
	EarlyHour = 8
	LateHour  = 22

	// PerfectDayWindowDays is the default trailing window scanned for
	// perfect days when settings do not override it.
	PerfectDayWindowDays = 30

	// Notify constants
	NotifierLockfileName   = "habitdash-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.habitdash"
)

// Palette is the fixed set of colors a new habit may be assigned when none
// is given. Colors carry no behavioral meaning.
var Palette = []string{"blue", "green", "purple", "amber", "rose", "teal", "indigo", "orange"}

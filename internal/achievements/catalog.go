package achievements

import "github.com/julianstephens/habitdash/internal/models"

// Definition is a static catalog entry for one unlockable badge. The
// catalog is defined once at process start and never persisted; only the
// unlocked id set is.
type Definition struct {
	ID          string
	Title       string
	Description string
	Emoji       string
	Points      int
	Color       string
	Condition   func(models.StatsSnapshot) bool
}

// Catalog returns the fixed badge catalog in evaluation order.
func Catalog() []Definition {
	return []Definition{
		{
			ID:          "EARLY_STARTER",
			Title:       "Early Starter",
			Description: "Complete your first habit",
			Emoji:       "🌟",
			Points:      5,
			Color:       "purple",
			Condition:   func(s models.StatsSnapshot) bool { return s.TotalCompletions >= 1 },
		},
		{
			ID:          "HABIT_MASTER",
			Title:       "Habit Master",
			Description: "Complete 50 habits",
			Emoji:       "👑",
			Points:      20,
			Color:       "amber",
			Condition:   func(s models.StatsSnapshot) bool { return s.TotalCompletions >= 50 },
		},
		{
			ID:          "STREAK_WARRIOR",
			Title:       "Streak Warrior",
			Description: "Maintain a 7-day streak",
			Emoji:       "⚔️",
			Points:      15,
			Color:       "red",
			Condition:   func(s models.StatsSnapshot) bool { return s.MaxStreak >= 7 },
		},
		{
			ID:          "CONSISTENCY_KING",
			Title:       "Consistency King",
			Description: "Complete all habits for 3 days straight",
			Emoji:       "👑",
			Points:      25,
			Color:       "blue",
			Condition:   func(s models.StatsSnapshot) bool { return s.PerfectDays >= 3 },
		},
		{
			ID:          "EARLY_BIRD",
			Title:       "Early Bird",
			Description: "Complete a habit before 8 AM",
			Emoji:       "🌅",
			Points:      10,
			Color:       "orange",
			Condition:   func(s models.StatsSnapshot) bool { return s.EarlyCompletions >= 1 },
		},
		{
			ID:          "NIGHT_OWL",
			Title:       "Night Owl",
			Description: "Complete a habit after 10 PM",
			Emoji:       "🦉",
			Points:      10,
			Color:       "indigo",
			Condition:   func(s models.StatsSnapshot) bool { return s.LateCompletions >= 1 },
		},
		{
			ID:          "VARIETY_MASTER",
			Title:       "Variety Master",
			Description: "Have 5 different active habits",
			Emoji:       "🎨",
			Points:      15,
			Color:       "green",
			Condition:   func(s models.StatsSnapshot) bool { return s.ActiveHabits >= 5 },
		},
		{
			ID:          "PERFECT_WEEK",
			Title:       "Perfect Week",
			Description: "Complete all habits for an entire week",
			Emoji:       "🏆",
			Points:      50,
			Color:       "yellow",
			Condition:   func(s models.StatsSnapshot) bool { return s.PerfectDays >= 7 },
		},
	}
}

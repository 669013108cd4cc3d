package stats

import (
	"sort"
	"time"

	"github.com/julianstephens/habitdash/internal/models"
	"github.com/julianstephens/habitdash/internal/utils"
)

// DayStat is one day's completion tally across all habits.
type DayStat struct {
	Date      time.Time
	Label     string // weekday abbreviation
	Completed int
	Total     int
	Rate      float64 // percentage, 0 when no habits exist
}

// WeeklyReport summarizes the current week (Monday start).
type WeeklyReport struct {
	WeekStart        time.Time
	WeekEnd          time.Time
	Days             []DayStat
	TotalCompletions int
	Rate             float64 // overall weekly completion percentage
	BestDayRate      float64
	Trend            float64 // today's rate minus yesterday's
}

// ComputeWeekly builds the weekly progress report for the week containing
// asOf.
func ComputeWeekly(habits []models.Habit, asOf time.Time) WeeklyReport {
	// Walk back to Monday.
	start := asOf
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, -1)
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, asOf.Location())

	report := WeeklyReport{
		WeekStart: start,
		WeekEnd:   start.AddDate(0, 0, 6),
	}

	totalPossible := 0
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		key := utils.DateKey(date)

		completed := 0
		for _, habit := range habits {
			if habit.CompletedOn(key) {
				completed++
			}
		}

		rate := 0.0
		if len(habits) > 0 {
			rate = float64(completed) / float64(len(habits)) * 100
		}

		report.Days = append(report.Days, DayStat{
			Date:      date,
			Label:     date.Format("Mon"),
			Completed: completed,
			Total:     len(habits),
			Rate:      rate,
		})

		report.TotalCompletions += completed
		totalPossible += len(habits)
		if rate > report.BestDayRate {
			report.BestDayRate = rate
		}
	}

	if totalPossible > 0 {
		report.Rate = float64(report.TotalCompletions) / float64(totalPossible) * 100
	}

	todayKey := utils.DateKey(asOf)
	yesterdayKey := utils.DateKey(asOf.AddDate(0, 0, -1))
	var todayRate, yesterdayRate float64
	for _, day := range report.Days {
		switch utils.DateKey(day.Date) {
		case todayKey:
			todayRate = day.Rate
		case yesterdayKey:
			yesterdayRate = day.Rate
		}
	}
	report.Trend = todayRate - yesterdayRate

	return report
}

// MonthSummary aggregates per-day completion counts for a calendar month.
type MonthSummary struct {
	Month            time.Month
	Year             int
	CompletionsByDay map[string]int
	Total            int
	ChangePct        float64 // vs the previous month; 100 when last month had none
}

// ComputeMonth builds the calendar aggregation for the month containing
// asOf.
func ComputeMonth(habits []models.Habit, asOf time.Time) MonthSummary {
	counts := make(map[string]int)
	for _, habit := range habits {
		for key := range habit.CompletionHistory {
			counts[key]++
		}
	}

	summary := MonthSummary{
		Month:            asOf.Month(),
		Year:             asOf.Year(),
		CompletionsByDay: make(map[string]int),
	}

	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	for day := monthStart; day.Before(nextMonth); day = day.AddDate(0, 0, 1) {
		key := utils.DateKey(day)
		if n := counts[key]; n > 0 {
			summary.CompletionsByDay[key] = n
			summary.Total += n
		}
	}

	lastMonthTotal := 0
	prevStart := monthStart.AddDate(0, -1, 0)
	for day := prevStart; day.Before(monthStart); day = day.AddDate(0, 0, 1) {
		lastMonthTotal += counts[utils.DateKey(day)]
	}

	if lastMonthTotal == 0 {
		summary.ChangePct = 100
	} else {
		summary.ChangePct = float64(summary.Total-lastMonthTotal) / float64(lastMonthTotal) * 100
	}

	return summary
}

// HabitRank scores a habit by its recent completion rate.
type HabitRank struct {
	Habit             models.Habit
	RecentCompletions int
	Rate              float64 // percentage over the ranking window
}

// rankWindowDays is the trailing window used for the top-habit ranking.
const rankWindowDays = 5

// TopHabits ranks habits by completion rate over the last five days,
// highest first. Ties keep list order, so the ranking is stable.
func TopHabits(habits []models.Habit, asOf time.Time) []HabitRank {
	ranks := make([]HabitRank, 0, len(habits))
	for _, habit := range habits {
		completions := 0
		for offset := 0; offset < rankWindowDays; offset++ {
			if habit.CompletedOn(utils.DateKey(asOf.AddDate(0, 0, -offset))) {
				completions++
			}
		}
		ranks = append(ranks, HabitRank{
			Habit:             habit,
			RecentCompletions: completions,
			Rate:              float64(completions) / float64(rankWindowDays) * 100,
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Rate > ranks[j].Rate
	})

	return ranks
}

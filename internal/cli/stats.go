package cli

import (
	"fmt"

	"github.com/julianstephens/habitdash/internal/stats"
)

type StatsCmd struct {
	Weekly bool `help:"Show the weekly progress breakdown."`
	Month  bool `help:"Show the monthly completion summary."`
	Top    bool `help:"Show habits ranked by recent completion rate."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	list := ctx.Habits.List()
	now := ctx.Now()

	snapshot := stats.Compute(list, stats.Options{
		AsOf:       now,
		WindowDays: ctx.Settings.PerfectDayWindowDays,
	})

	fmt.Printf("Active habits:     %d\n", snapshot.ActiveHabits)
	fmt.Printf("Total completions: %d\n", snapshot.TotalCompletions)
	fmt.Printf("Max streak:        %d\n", snapshot.MaxStreak)
	fmt.Printf("Perfect days:      %d (last %d days)\n", snapshot.PerfectDays, ctx.Settings.PerfectDayWindowDays)
	fmt.Printf("Early completions: %d\n", snapshot.EarlyCompletions)
	fmt.Printf("Late completions:  %d\n", snapshot.LateCompletions)

	if c.Weekly {
		report := stats.ComputeWeekly(list, now)
		fmt.Printf("\nWeek %s - %s: %.1f%% overall, best day %.0f%%, trend %+.1f%%\n",
			report.WeekStart.Format("Jan 2"), report.WeekEnd.Format("Jan 2"),
			report.Rate, report.BestDayRate, report.Trend)
		for _, day := range report.Days {
			fmt.Printf("  %s  %d/%d (%.0f%%)\n", day.Label, day.Completed, day.Total, day.Rate)
		}
	}

	if c.Month {
		summary := stats.ComputeMonth(list, now)
		fmt.Printf("\n%s %d: %d completions (%+.1f%% from last month)\n",
			summary.Month, summary.Year, summary.Total, summary.ChangePct)
	}

	if c.Top {
		fmt.Println("\nTop habits (last 5 days):")
		for _, rank := range stats.TopHabits(list, now) {
			fmt.Printf("  %s %-20s %.0f%%\n", rank.Habit.Emoji, rank.Habit.Text, rank.Rate)
		}
	}

	return nil
}

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	unlocked := ctx.Engine.Unlocked()
	defs := ctx.Engine.Definitions()

	fmt.Printf("Achievements: %d of %d unlocked (%d points)\n\n",
		len(unlocked), len(defs), ctx.Engine.Points())

	for _, def := range defs {
		marker := "🔒"
		if ctx.Engine.IsUnlocked(def.ID) {
			marker = def.Emoji
		}
		fmt.Printf("%s %-18s %s (+%d)\n", marker, def.Title, def.Description, def.Points)
	}

	return nil
}

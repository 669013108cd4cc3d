package stats

import (
	"testing"
	"time"

	"github.com/julianstephens/habitdash/internal/models"
	"github.com/julianstephens/habitdash/internal/utils"
)

// habitWith builds a habit completed on the given days relative to asOf
// (0 = asOf, 1 = the day before, ...).
func habitWith(asOf time.Time, daysAgo ...int) models.Habit {
	history := make(map[string]bool)
	for _, d := range daysAgo {
		history[utils.DateKey(asOf.AddDate(0, 0, -d))] = true
	}
	return models.Habit{
		ID:                "h",
		Text:              "habit",
		CompletionHistory: history,
	}
}

var asOf = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestCompute_EmptyList(t *testing.T) {
	got := Compute(nil, Options{AsOf: asOf})
	if got != (models.StatsSnapshot{}) {
		t.Errorf("expected zero snapshot for empty list, got %+v", got)
	}
}

func TestCompute_TotalsAndMaxStreak(t *testing.T) {
	a := habitWith(asOf, 0, 1, 2)
	a.Streak = 3
	b := habitWith(asOf, 0)
	b.Streak = 1

	got := Compute([]models.Habit{a, b}, Options{AsOf: asOf})

	if got.ActiveHabits != 2 {
		t.Errorf("expected 2 active habits, got %d", got.ActiveHabits)
	}
	if got.TotalCompletions != 4 {
		t.Errorf("expected 4 total completions, got %d", got.TotalCompletions)
	}
	if got.MaxStreak != 3 {
		t.Errorf("expected max streak 3 (cached), got %d", got.MaxStreak)
	}
}

func TestCompute_MaxStreakUsesCachedValue(t *testing.T) {
	// The cached streak is deliberately stale relative to the history.
	a := habitWith(asOf, 5)
	a.Streak = 9

	got := Compute([]models.Habit{a}, Options{AsOf: asOf})
	if got.MaxStreak != 9 {
		t.Errorf("expected cached streak 9, got %d", got.MaxStreak)
	}
}

func TestCompute_PerfectDays(t *testing.T) {
	// Both habits complete on asOf and asOf-2; only one on asOf-1.
	a := habitWith(asOf, 0, 1, 2)
	b := habitWith(asOf, 0, 2)

	got := Compute([]models.Habit{a, b}, Options{AsOf: asOf})
	if got.PerfectDays != 2 {
		t.Errorf("expected 2 perfect days, got %d", got.PerfectDays)
	}
}

func TestCompute_PerfectDaysRespectsWindow(t *testing.T) {
	// Perfect day 10 days back falls outside a 7-day window.
	a := habitWith(asOf, 10)
	b := habitWith(asOf, 10)

	got := Compute([]models.Habit{a, b}, Options{AsOf: asOf, WindowDays: 7})
	if got.PerfectDays != 0 {
		t.Errorf("expected 0 perfect days within window, got %d", got.PerfectDays)
	}

	got = Compute([]models.Habit{a, b}, Options{AsOf: asOf, WindowDays: 14})
	if got.PerfectDays != 1 {
		t.Errorf("expected 1 perfect day in wider window, got %d", got.PerfectDays)
	}
}

func TestCompute_EarlyAndLateCompletions(t *testing.T) {
	habit := habitWith(asOf, 0, 1, 2)
	habit.CompletionTimes = map[string]time.Time{
		utils.DateKey(asOf):                  time.Date(2025, 6, 15, 6, 30, 0, 0, time.UTC),  // early
		utils.DateKey(asOf.AddDate(0, 0, -1)): time.Date(2025, 6, 14, 22, 5, 0, 0, time.UTC),  // late
		utils.DateKey(asOf.AddDate(0, 0, -2)): time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC),  // neither
	}

	got := Compute([]models.Habit{habit}, Options{AsOf: asOf})
	if got.EarlyCompletions != 1 {
		t.Errorf("expected 1 early completion, got %d", got.EarlyCompletions)
	}
	if got.LateCompletions != 1 {
		t.Errorf("expected 1 late completion, got %d", got.LateCompletions)
	}
}

func TestCompute_UntimedCompletionsCountForNeitherBucket(t *testing.T) {
	// A record persisted before completion times existed.
	habit := habitWith(asOf, 0, 1)
	habit.CompletionTimes = nil

	got := Compute([]models.Habit{habit}, Options{AsOf: asOf})
	if got.EarlyCompletions != 0 || got.LateCompletions != 0 {
		t.Errorf("expected no early/late counts without timestamps, got %+v", got)
	}
	if got.TotalCompletions != 2 {
		t.Errorf("expected untimed completions to still count overall, got %d", got.TotalCompletions)
	}
}

func TestComputeWeekly(t *testing.T) {
	// asOf is a Sunday; the week runs Monday 2025-06-09 .. Sunday 2025-06-15.
	a := habitWith(asOf, 0, 1) // Sun, Sat
	b := habitWith(asOf, 0)    // Sun

	report := ComputeWeekly([]models.Habit{a, b}, asOf)

	if utils.DateKey(report.WeekStart) != "2025-06-09" {
		t.Errorf("expected week start 2025-06-09, got %s", utils.DateKey(report.WeekStart))
	}
	if len(report.Days) != 7 {
		t.Fatalf("expected 7 day stats, got %d", len(report.Days))
	}
	if report.TotalCompletions != 3 {
		t.Errorf("expected 3 completions this week, got %d", report.TotalCompletions)
	}
	// Sunday: 2/2 complete.
	if report.BestDayRate != 100 {
		t.Errorf("expected best day rate 100, got %.1f", report.BestDayRate)
	}
	// Today 100%, yesterday 50%.
	if report.Trend != 50 {
		t.Errorf("expected trend +50, got %.1f", report.Trend)
	}
}

func TestComputeWeekly_NoHabits(t *testing.T) {
	report := ComputeWeekly(nil, asOf)
	if report.Rate != 0 || report.TotalCompletions != 0 {
		t.Errorf("expected zero rates for empty list, got %+v", report)
	}
}

func TestComputeMonth(t *testing.T) {
	// Two completions in June, one in May.
	a := habitWith(asOf, 0, 1, 20) // 2025-06-15, 2025-06-14, 2025-05-26

	summary := ComputeMonth([]models.Habit{a}, asOf)

	if summary.Total != 2 {
		t.Errorf("expected 2 completions this month, got %d", summary.Total)
	}
	if summary.CompletionsByDay["2025-06-15"] != 1 {
		t.Errorf("expected 1 completion on the 15th, got %d", summary.CompletionsByDay["2025-06-15"])
	}
	// (2-1)/1 = +100%% vs May.
	if summary.ChangePct != 100 {
		t.Errorf("expected +100%% change, got %.1f", summary.ChangePct)
	}
}

func TestTopHabits_RanksByRecentRate(t *testing.T) {
	a := habitWith(asOf, 0, 1, 2, 3, 4)
	a.ID = "all"
	b := habitWith(asOf, 0, 2)
	b.ID = "some"
	c := habitWith(asOf, 20)
	c.ID = "none-recent"

	ranks := TopHabits([]models.Habit{c, b, a}, asOf)

	if len(ranks) != 3 {
		t.Fatalf("expected 3 ranks, got %d", len(ranks))
	}
	if ranks[0].Habit.ID != "all" || ranks[0].Rate != 100 {
		t.Errorf("expected 'all' first at 100%%, got %s at %.1f", ranks[0].Habit.ID, ranks[0].Rate)
	}
	if ranks[1].Habit.ID != "some" || ranks[1].RecentCompletions != 2 {
		t.Errorf("expected 'some' second with 2 recent, got %s with %d", ranks[1].Habit.ID, ranks[1].RecentCompletions)
	}
	if ranks[2].Habit.ID != "none-recent" || ranks[2].Rate != 0 {
		t.Errorf("expected 'none-recent' last at 0%%, got %s at %.1f", ranks[2].Habit.ID, ranks[2].Rate)
	}
}

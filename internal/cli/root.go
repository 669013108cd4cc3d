package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitdash/internal/achievements"
	"github.com/julianstephens/habitdash/internal/habits"
	"github.com/julianstephens/habitdash/internal/logger"
	"github.com/julianstephens/habitdash/internal/models"
	"github.com/julianstephens/habitdash/internal/notifier"
	"github.com/julianstephens/habitdash/internal/stats"
	"github.com/julianstephens/habitdash/internal/storage"
	"github.com/julianstephens/habitdash/internal/utils"
)

// Context carries the stores every command needs. Both stores are
// constructed once per invocation and passed by handle; there is no ambient
// global state.
type Context struct {
	Store    storage.Provider
	Habits   *habits.Store
	Engine   *achievements.Engine
	Notifier *notifier.Notifier
	Settings models.Settings
}

// Open loads durable storage and builds the habit store and achievement
// engine on top of it. Commands other than init call this first.
func (ctx *Context) Open() error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ctx.Settings = storage.LoadSettings(ctx.Store)

	ctx.Habits = habits.New(ctx.Store, ctx.Settings)
	if err := ctx.Habits.Load(); err != nil {
		return err
	}

	ctx.Engine = achievements.NewEngine(ctx.Store)
	if err := ctx.Engine.Load(); err != nil {
		return err
	}

	return nil
}

// Now returns the current time in the configured timezone.
func (ctx *Context) Now() time.Time {
	return time.Now().In(ctx.Habits.Location())
}

// AfterMutation runs the standard post-mutation flow: compute a fresh stats
// snapshot, feed it to the achievement engine, and surface any new unlocks.
func (ctx *Context) AfterMutation() {
	snapshot := stats.Compute(ctx.Habits.List(), stats.Options{
		AsOf:       ctx.Now(),
		WindowDays: ctx.Settings.PerfectDayWindowDays,
	})
	ctx.Engine.Evaluate(snapshot)

	for _, unlock := range ctx.Engine.Drain() {
		fmt.Printf("%s  Achievement unlocked: %s - %s (+%d points)\n",
			unlock.Emoji, unlock.Title, unlock.Description, unlock.Points)
		if ctx.Notifier != nil {
			if err := ctx.Notifier.NotifyUnlock(unlock); err != nil {
				logger.Debug("tray notification not delivered", "achievement", unlock.ID, "error", err)
			}
		}
	}
}

// findHabit resolves a habit reference: an exact id first, then an exact
// text match (case-insensitive).
func findHabit(ctx *Context, ref string) (models.Habit, error) {
	if habit, err := ctx.Habits.Get(ref); err == nil {
		return habit, nil
	}
	for _, habit := range ctx.Habits.List() {
		if strings.EqualFold(habit.Text, ref) {
			return habit, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", ref)
}

// parseDay parses an optional YYYY-MM-DD argument, defaulting to now.
func parseDay(ctx *Context, dateStr string) (time.Time, error) {
	if dateStr == "" {
		return ctx.Now(), nil
	}
	return utils.ParseDateKey(dateStr, ctx.Habits.Location())
}

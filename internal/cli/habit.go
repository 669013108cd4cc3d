package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitdash/internal/habits"
	"github.com/julianstephens/habitdash/internal/utils"
)

type AddCmd struct {
	Text  string `arg:"" help:"Habit label."`
	Emoji string `help:"Display emoji." default:""`
	Color string `help:"Display color from the palette." default:""`
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	habit, err := ctx.Habits.Add(habits.NewHabit{Text: c.Text, Emoji: c.Emoji, Color: c.Color})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s\n", habit.Emoji, habit.Text)
	ctx.AfterMutation()
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	list := ctx.Habits.List()
	if len(list) == 0 {
		fmt.Println("No habits yet. Add one with 'habitdash add'.")
		return nil
	}

	today := utils.DateKey(ctx.Now())
	for _, habit := range list {
		status := "[ ]"
		if habit.CompletedOn(today) {
			status = "[x]"
		}
		streak := ""
		if habit.Streak > 0 {
			streak = fmt.Sprintf("  (streak %d)", habit.Streak)
		}
		fmt.Printf("%s %s %s%s\n", status, habit.Emoji, habit.Text, streak)
	}
	return nil
}

type ToggleCmd struct {
	Habit string `arg:"" help:"Habit id or label."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	habit, err := findHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	asOf, err := parseDay(ctx, c.Date)
	if err != nil {
		return err
	}

	updated, err := ctx.Habits.Toggle(habit.ID, asOf)
	if err != nil {
		return err
	}

	key := utils.DateKey(asOf)
	if updated.CompletedOn(key) {
		fmt.Printf("Completed %q for %s (streak %d)\n", updated.Text, key, updated.Streak)
	} else {
		fmt.Printf("Un-completed %q for %s (streak %d)\n", updated.Text, key, updated.Streak)
	}

	ctx.AfterMutation()
	return nil
}

type EditCmd struct {
	Habit string `arg:"" help:"Habit id or label."`
	Text  string `help:"New label." default:""`
	Emoji string `help:"New emoji." default:""`
	Color string `help:"New color." default:""`
}

func (c *EditCmd) Run(ctx *Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	habit, err := findHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	update := habits.HabitUpdate{}
	if c.Text != "" {
		update.Text = &c.Text
	}
	if c.Emoji != "" {
		update.Emoji = &c.Emoji
	}
	if c.Color != "" {
		update.Color = &c.Color
	}
	if update.Text == nil && update.Emoji == nil && update.Color == nil {
		return fmt.Errorf("nothing to update: pass --text, --emoji or --color")
	}

	if err := ctx.Habits.Update(habit.ID, update); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.ID)
	ctx.AfterMutation()
	return nil
}

type DeleteCmd struct {
	Habit string `arg:"" help:"Habit id or label."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	habit, err := findHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	ctx.Habits.Delete(habit.ID)
	fmt.Printf("Deleted habit: %s\n", habit.Text)
	ctx.AfterMutation()
	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	list := ctx.Habits.List()
	if len(list) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}

	today := utils.DateKey(ctx.Now())
	fmt.Printf("Habits for %s:\n\n", today)

	done := 0
	for _, habit := range list {
		status := "[ ]"
		if habit.CompletedOn(today) {
			status = "[x]"
			done++
		}
		fmt.Printf("%s %s %s\n", status, habit.Emoji, habit.Text)
	}

	fmt.Printf("\nCompleted: %d/%d\n", done, len(list))
	return nil
}

type LogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only." default:""`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	list := ctx.Habits.List()
	if c.Habit != "" {
		habit, err := findHabit(ctx, c.Habit)
		if err != nil {
			return err
		}
		list = list[:0]
		list = append(list, habit)
	}

	if len(list) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}

	endDay := ctx.Now()
	startDay := endDay.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const maxNameLen = 20
	fmt.Print(strings.Repeat(" ", maxNameLen))
	for i := 0; i < c.Days; i++ {
		day := startDay.AddDate(0, 0, i)
		fmt.Printf(" %5s", day.Format("01/02"))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", maxNameLen))
	for i := 0; i < c.Days; i++ {
		fmt.Print("------")
	}
	fmt.Println()

	for _, habit := range list {
		name := habit.Text
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		for i := 0; i < c.Days; i++ {
			day := startDay.AddDate(0, 0, i)
			if habit.CompletedOn(utils.DateKey(day)) {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}

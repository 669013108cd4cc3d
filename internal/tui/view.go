package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitdash/internal/quotes"
	"github.com/julianstephens/habitdash/internal/stats"
	"github.com/julianstephens/habitdash/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHabits:
		content = docStyle.Render(m.viewHabits())
	case StateStats:
		content = docStyle.Render(m.viewStats())
	case StateAchievements:
		content = docStyle.Render(m.viewAchievements())
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if m.toast != "" {
		sections = append(sections, toastStyle.Render(m.toast))
	}
	sections = append(sections, m.viewQuote(), m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Stats", "Achievements"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHabits() string {
	list := m.habitStore.List()
	if len(list) == 0 {
		return mutedStyle.Render("No habits yet. Press 'a' to add one.")
	}

	today := utils.DateKey(time.Now().In(m.habitStore.Location()))

	var b strings.Builder
	for i, habit := range list {
		mark := "[ ]"
		if habit.CompletedOn(today) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", mark, habit.Emoji, habit.Text)
		if habit.Streak > 0 {
			line += mutedStyle.Render(fmt.Sprintf("  🔥 %d", habit.Streak))
		}

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else if habit.CompletedOn(today) {
			b.WriteString("  " + doneStyle.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewStats() string {
	list := m.habitStore.List()
	asOf := time.Now().In(m.habitStore.Location())

	snapshot := stats.Compute(list, stats.Options{
		AsOf:       asOf,
		WindowDays: m.settings.PerfectDayWindowDays,
	})
	weekly := stats.ComputeWeekly(list, asOf)

	var b strings.Builder
	fmt.Fprintf(&b, "Total completions  %d\n", snapshot.TotalCompletions)
	fmt.Fprintf(&b, "Longest streak     %d days\n", snapshot.MaxStreak)
	fmt.Fprintf(&b, "Perfect days       %d\n", snapshot.PerfectDays)
	fmt.Fprintf(&b, "Active habits      %d\n", snapshot.ActiveHabits)
	fmt.Fprintf(&b, "Points             %d\n\n", m.engine.Points())

	fmt.Fprintf(&b, "This week (%s - %s): %.0f%%\n",
		weekly.WeekStart.Format("Jan 2"), weekly.WeekEnd.Format("Jan 2"), weekly.Rate)
	for _, day := range weekly.Days {
		bar := strings.Repeat("█", int(day.Rate/10))
		fmt.Fprintf(&b, "  %s %-10s %.0f%%\n", day.Label, bar, day.Rate)
	}

	return b.String()
}

func (m Model) viewAchievements() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Unlocked %d of %d, %d points\n\n",
		len(m.engine.Unlocked()), len(m.engine.Definitions()), m.engine.Points())

	for _, def := range m.engine.Definitions() {
		line := fmt.Sprintf("%s %s (+%d) - %s", def.Emoji, def.Title, def.Points, def.Description)
		if m.engine.IsUnlocked(def.ID) {
			b.WriteString(doneStyle.Render(line))
		} else {
			b.WriteString(lockedStyle.Render("🔒 " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	name := m.deleteTarget
	if habit, err := m.habitStore.Get(m.deleteTarget); err == nil {
		name = habit.Text
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete habit %q and its history?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewQuote() string {
	q := quotes.OfDay(time.Now())
	return mutedStyle.Render(fmt.Sprintf("%q - %s", q.Text, q.Author))
}

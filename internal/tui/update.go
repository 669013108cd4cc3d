package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitdash/internal/habits"
	"github.com/julianstephens/habitdash/internal/logger"
	"github.com/julianstephens/habitdash/internal/utils"
)

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				Value(&fm.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit text cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Emoji (optional)").
				Value(&fm.Emoji),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.toast = ""

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.toast = ""

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Up):
			if m.state == StateHabits && m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.state == StateHabits && m.cursor < len(m.habitStore.List())-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if m.state == StateHabits {
				m.toggleSelected()
			}

		case key.Matches(msg, m.keys.Add):
			if m.state == StateHabits {
				m.previousState = m.state
				m.habitForm = &HabitFormModel{}
				m.form = newHabitForm(m.habitForm)
				m.state = StateAddHabit
				return m, m.form.Init()
			}

		case key.Matches(msg, m.keys.Delete):
			if m.state == StateHabits {
				list := m.habitStore.List()
				if m.cursor < len(list) {
					m.previousState = m.state
					m.deleteTarget = list[m.cursor].ID
					m.state = StateConfirmDelete
				}
			}
		}
	}

	return m, nil
}

func (m *Model) toggleSelected() {
	list := m.habitStore.List()
	if m.cursor >= len(list) {
		return
	}
	habit := list[m.cursor]
	now := time.Now().In(m.habitStore.Location())
	updated, err := m.habitStore.Toggle(habit.ID, now)
	if err != nil {
		logger.Warn("failed to toggle habit", "id", habit.ID, "error", err)
		return
	}
	if updated.CompletedOn(utils.DateKey(now)) {
		m.toast = fmt.Sprintf("%s %s completed", updated.Emoji, updated.Text)
	} else {
		m.toast = ""
	}
	m.evaluateAchievements()
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		_, err := m.habitStore.Add(habits.NewHabit{
			Text:  m.habitForm.Text,
			Emoji: strings.TrimSpace(m.habitForm.Emoji),
		})
		if err != nil {
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		m.evaluateAchievements()
		m.state = m.previousState
		m.cursor = len(m.habitStore.List()) - 1

	case huh.StateAborted:
		m.state = m.previousState
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.habitStore.Delete(m.deleteTarget)
			m.deleteTarget = ""
			m.state = m.previousState
			m.clampCursor()
			m.evaluateAchievements()
		case "n", "N", "esc", "q":
			m.deleteTarget = ""
			m.state = m.previousState
		}
	}
	return m, nil
}

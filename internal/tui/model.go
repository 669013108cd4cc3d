package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitdash/internal/achievements"
	"github.com/julianstephens/habitdash/internal/habits"
	"github.com/julianstephens/habitdash/internal/logger"
	"github.com/julianstephens/habitdash/internal/models"
	"github.com/julianstephens/habitdash/internal/notifier"
	"github.com/julianstephens/habitdash/internal/stats"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateStats
	StateAchievements
	StateAddHabit
	StateConfirmDelete
)

// tabCount covers the three browsable tabs; form and confirm states sit
// outside the tab cycle.
const tabCount = 3

type HabitFormModel struct {
	Text  string
	Emoji string
}

type Model struct {
	habitStore    *habits.Store
	engine        *achievements.Engine
	notify        *notifier.Notifier
	settings      models.Settings
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	cursor        int
	form          *huh.Form
	habitForm     *HabitFormModel
	deleteTarget  string
	toast         string
	width         int
	height        int
	quitting      bool
}

func NewModel(habitStore *habits.Store, engine *achievements.Engine, settings models.Settings, notify *notifier.Notifier) Model {
	return Model{
		habitStore: habitStore,
		engine:     engine,
		notify:     notify,
		settings:   settings,
		state:      StateHabits,
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// Run launches the dashboard.
func Run(habitStore *habits.Store, engine *achievements.Engine, settings models.Settings, notify *notifier.Notifier) error {
	p := tea.NewProgram(NewModel(habitStore, engine, settings, notify), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateHabits {
		keys = append(keys, m.keys.Toggle, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Toggle},
		{m.keys.Add, m.keys.Delete},
	}
}

// evaluateAchievements runs the standard post-mutation flow and surfaces
// any new unlocks as a toast plus a best-effort tray notification.
func (m *Model) evaluateAchievements() {
	snapshot := stats.Compute(m.habitStore.List(), stats.Options{
		AsOf:       time.Now().In(m.habitStore.Location()),
		WindowDays: m.settings.PerfectDayWindowDays,
	})
	m.engine.Evaluate(snapshot)

	for _, unlock := range m.engine.Drain() {
		m.toast = fmt.Sprintf("%s Achievement unlocked: %s (+%d points)", unlock.Emoji, unlock.Title, unlock.Points)
		if m.notify != nil {
			if err := m.notify.NotifyUnlock(unlock); err != nil {
				logger.Debug("tray notification not delivered", "achievement", unlock.ID, "error", err)
			}
		}
	}
}

func (m *Model) clampCursor() {
	n := len(m.habitStore.List())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

package habits

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitdash/internal/apperr"
	"github.com/julianstephens/habitdash/internal/constants"
	"github.com/julianstephens/habitdash/internal/logger"
	"github.com/julianstephens/habitdash/internal/models"
	"github.com/julianstephens/habitdash/internal/storage"
	"github.com/julianstephens/habitdash/internal/utils"
)

// Store owns the authoritative habit list. All mutations funnel through its
// four operations; display consumers read through List and never mutate.
// Every mutation persists the full list before returning. A failed write is
// logged and swallowed, leaving the in-memory list as the source of truth
// for the rest of the session.
type Store struct {
	provider storage.Provider
	location *time.Location
	habits   []models.Habit
}

// NewHabit carries the caller-supplied fields for Add. Emoji and Color are
// optional; defaults are a fixed marker and a random palette color.
type NewHabit struct {
	Text  string
	Emoji string
	Color string
}

// HabitUpdate carries a shallow partial update. Nil fields are left
// untouched. The completion history is never modified through Update.
type HabitUpdate struct {
	Text  *string
	Emoji *string
	Color *string
}

func New(provider storage.Provider, settings models.Settings) *Store {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		logger.Warn("invalid timezone in settings, falling back to local", "timezone", settings.Timezone, "error", err)
		loc = time.Local
	}
	return &Store{
		provider: provider,
		location: loc,
	}
}

// Load reads the persisted habit list. A missing or malformed record, or
// any element without an id and text, yields an empty list rather than an
// error: corruption must never take the dashboard down.
func (s *Store) Load() error {
	s.habits = []models.Habit{}

	raw, ok, err := s.provider.GetRecord(constants.RecordHabits)
	if err != nil {
		return fmt.Errorf("failed to read habits record: %w", err)
	}
	if !ok {
		return nil
	}

	var parsed []models.Habit
	if err := json.Unmarshal(raw, &parsed); err != nil {
		logger.Warn("habits record is corrupt, starting empty",
			"error", fmt.Errorf("%w: %v", apperr.ErrCorruptState, err))
		return nil
	}

	for _, habit := range parsed {
		if habit.ID == "" || habit.Text == "" {
			logger.Warn("habits record failed validation, starting empty", "error", apperr.ErrCorruptState)
			s.habits = []models.Habit{}
			return nil
		}
	}

	// Ensure maps are initialized
	for i := range parsed {
		if parsed[i].CompletionHistory == nil {
			parsed[i].CompletionHistory = make(map[string]bool)
		}
	}

	s.habits = parsed
	return nil
}

// List returns a deep copy of the current habit list for read-only
// consumers.
func (s *Store) List() []models.Habit {
	out := make([]models.Habit, 0, len(s.habits))
	for _, habit := range s.habits {
		out = append(out, habit.Clone())
	}
	return out
}

// Get returns the habit with the given id.
func (s *Store) Get(id string) (models.Habit, error) {
	for _, habit := range s.habits {
		if habit.ID == id {
			return habit.Clone(), nil
		}
	}
	return models.Habit{}, fmt.Errorf("%w: habit %s", apperr.ErrNotFound, id)
}

// Add creates a habit from the given fields and appends it to the list.
// The text must be non-empty after trimming.
func (s *Store) Add(in NewHabit) (models.Habit, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return models.Habit{}, fmt.Errorf("%w: habit text must not be empty", apperr.ErrInvalidInput)
	}

	emoji := in.Emoji
	if emoji == "" {
		emoji = constants.DefaultEmoji
	}
	color := in.Color
	if color == "" {
		color = constants.Palette[rand.Intn(len(constants.Palette))]
	}

	habit := models.Habit{
		ID:                uuid.New().String(),
		Text:              text,
		Emoji:             emoji,
		Color:             color,
		CreatedAt:         time.Now().In(s.location),
		CompletionHistory: make(map[string]bool),
		CompletionTimes:   make(map[string]time.Time),
		Streak:            0,
		LastCompleted:     nil,
	}

	s.habits = append(s.habits, habit)
	s.persist()
	return habit.Clone(), nil
}

// Toggle flips the completion entry for the calendar day of asOf. Adding a
// completion records its wall-clock time and updates LastCompleted;
// removing one deletes both entries and leaves LastCompleted alone. The
// cached streak is always recomputed anchored at today, even when asOf is a
// different day. An unknown id signals apperr.ErrNotFound.
func (s *Store) Toggle(id string, asOf time.Time) (models.Habit, error) {
	idx := -1
	for i := range s.habits {
		if s.habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Habit{}, fmt.Errorf("%w: habit %s", apperr.ErrNotFound, id)
	}

	habit := &s.habits[idx]
	if habit.CompletionHistory == nil {
		habit.CompletionHistory = make(map[string]bool)
	}
	if habit.CompletionTimes == nil {
		habit.CompletionTimes = make(map[string]time.Time)
	}

	key := utils.DateKey(asOf)
	if habit.CompletionHistory[key] {
		delete(habit.CompletionHistory, key)
		delete(habit.CompletionTimes, key)
	} else {
		habit.CompletionHistory[key] = true
		habit.CompletionTimes[key] = asOf
		last := key
		habit.LastCompleted = &last
	}

	// The streak anchor is always today, not the toggled date. Completing
	// a day far in the past therefore does not extend the reported streak.
	habit.Streak = utils.ComputeStreak(habit.CompletionHistory, time.Now().In(s.location))

	s.persist()
	return habit.Clone(), nil
}

// Update shallow-merges the provided fields into the habit.
func (s *Store) Update(id string, update HabitUpdate) error {
	idx := -1
	for i := range s.habits {
		if s.habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: habit %s", apperr.ErrNotFound, id)
	}

	if update.Text != nil {
		text := strings.TrimSpace(*update.Text)
		if text == "" {
			return fmt.Errorf("%w: habit text must not be empty", apperr.ErrInvalidInput)
		}
		s.habits[idx].Text = text
	}
	if update.Emoji != nil {
		s.habits[idx].Emoji = *update.Emoji
	}
	if update.Color != nil {
		s.habits[idx].Color = *update.Color
	}

	s.persist()
	return nil
}

// Delete removes the habit from the list. Unknown ids are a no-op.
func (s *Store) Delete(id string) {
	for i := range s.habits {
		if s.habits[i].ID == id {
			s.habits = append(s.habits[:i], s.habits[i+1:]...)
			s.persist()
			return
		}
	}
}

// Location returns the timezone the store resolves "today" in.
func (s *Store) Location() *time.Location {
	return s.location
}

func (s *Store) persist() {
	raw, err := json.Marshal(s.habits)
	if err != nil {
		logger.Error("failed to serialize habits", "error", err)
		return
	}
	if err := s.provider.SetRecord(constants.RecordHabits, raw); err != nil {
		logger.Warn("failed to persist habits, in-memory state kept", "error", err)
	}
}

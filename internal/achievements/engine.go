package achievements

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/habitdash/internal/apperr"
	"github.com/julianstephens/habitdash/internal/constants"
	"github.com/julianstephens/habitdash/internal/logger"
	"github.com/julianstephens/habitdash/internal/models"
	"github.com/julianstephens/habitdash/internal/storage"
)

// State is the persisted achievement record: the unlocked id set (only ever
// grows) and the last stats snapshot evaluated.
type State struct {
	Achievements []string             `json:"achievements"`
	Stats        models.StatsSnapshot `json:"stats"`
}

// Unlock is the outbound notification payload for one newly unlocked badge.
type Unlock struct {
	ID          string
	Title       string
	Description string
	Emoji       string
	Color       string
	Points      int
}

// Engine owns the monotonic unlock state machine. Each badge moves from
// locked to unlocked exactly once and never reverts. Newly unlocked badges
// are appended to an outbound event queue; the presentation layer drains it
// and handles any celebration, so the engine never calls into UI code.
type Engine struct {
	provider storage.Provider
	catalog  []Definition
	unlocked map[string]bool
	order    []string
	last     models.StatsSnapshot
	queue    []Unlock
}

func NewEngine(provider storage.Provider) *Engine {
	return &Engine{
		provider: provider,
		catalog:  Catalog(),
		unlocked: make(map[string]bool),
	}
}

// Load reads the persisted state. Malformed or absent records reset to the
// zero state rather than failing.
func (e *Engine) Load() error {
	e.unlocked = make(map[string]bool)
	e.order = nil
	e.last = models.StatsSnapshot{}

	raw, ok, err := e.provider.GetRecord(constants.RecordAchievements)
	if err != nil {
		return fmt.Errorf("failed to read achievements record: %w", err)
	}
	if !ok {
		return nil
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		logger.Warn("achievements record is corrupt, resetting",
			"error", fmt.Errorf("%w: %v", apperr.ErrCorruptState, err))
		return nil
	}

	for _, id := range state.Achievements {
		if !e.unlocked[id] {
			e.unlocked[id] = true
			e.order = append(e.order, id)
		}
	}
	e.last = state.Stats
	return nil
}

// Evaluate checks every still-locked definition against the snapshot and
// unlocks those whose condition holds. The whole batch sees the same
// snapshot; already-unlocked ids are skipped without re-evaluating their
// condition, so unlocking never flickers. Newly unlocked badges are
// persisted and queued for the presentation layer, and returned for
// convenience.
func (e *Engine) Evaluate(snapshot models.StatsSnapshot) []Unlock {
	var newly []Unlock
	for _, def := range e.catalog {
		if e.unlocked[def.ID] {
			continue
		}
		if def.Condition(snapshot) {
			newly = append(newly, Unlock{
				ID:          def.ID,
				Title:       def.Title,
				Description: def.Description,
				Emoji:       def.Emoji,
				Color:       def.Color,
				Points:      def.Points,
			})
		}
	}

	for _, unlock := range newly {
		e.unlocked[unlock.ID] = true
		e.order = append(e.order, unlock.ID)
	}
	e.last = snapshot
	e.persist()

	e.queue = append(e.queue, newly...)
	return newly
}

// Drain returns and clears the pending unlock notifications.
func (e *Engine) Drain() []Unlock {
	pending := e.queue
	e.queue = nil
	return pending
}

// Unlocked returns the unlocked ids in unlock order.
func (e *Engine) Unlocked() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// IsUnlocked reports whether the given badge id has been unlocked.
func (e *Engine) IsUnlocked(id string) bool {
	return e.unlocked[id]
}

// Points sums the points of all unlocked badges.
func (e *Engine) Points() int {
	total := 0
	for _, def := range e.catalog {
		if e.unlocked[def.ID] {
			total += def.Points
		}
	}
	return total
}

// LastStats returns the last evaluated snapshot.
func (e *Engine) LastStats() models.StatsSnapshot {
	return e.last
}

// Definitions returns the full catalog for display consumers.
func (e *Engine) Definitions() []Definition {
	return Catalog()
}

func (e *Engine) persist() {
	state := State{
		Achievements: e.Unlocked(),
		Stats:        e.last,
	}
	if state.Achievements == nil {
		state.Achievements = []string{}
	}

	raw, err := json.Marshal(state)
	if err != nil {
		logger.Error("failed to serialize achievements", "error", err)
		return
	}
	if err := e.provider.SetRecord(constants.RecordAchievements, raw); err != nil {
		logger.Warn("failed to persist achievements, in-memory state kept", "error", err)
	}
}

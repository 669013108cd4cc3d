package models

import "time"

// Habit represents a single tracked behavior and its completion record.
//
// CompletionHistory maps a canonical date key (YYYY-MM-DD, local time) to a
// presence marker: a key exists only for days the habit was completed, and
// un-completing a day removes the key. No entry is ever stored as false.
//
// CompletionTimes records, per date key, the wall-clock time the completion
// was toggled on. It is kept in lockstep with CompletionHistory and feeds
// the early/late completion stats. Records persisted before this field was
// introduced simply have no entry for a day.
type Habit struct {
	ID                string               `json:"id"`
	Text              string               `json:"text"`
	Emoji             string               `json:"emoji"`
	Color             string               `json:"color"`
	CreatedAt         time.Time            `json:"createdAt"`
	CompletionHistory map[string]bool      `json:"completionHistory"`
	CompletionTimes   map[string]time.Time `json:"completionTimes,omitempty"`
	Streak            int                  `json:"streak"`
	LastCompleted     *string              `json:"lastCompleted"`
}

// CompletedOn reports whether the habit has a completion entry for the
// given date key.
func (h Habit) CompletedOn(day string) bool {
	return h.CompletionHistory[day]
}

// CompletionCount returns the number of days with a completion entry.
func (h Habit) CompletionCount() int {
	return len(h.CompletionHistory)
}

// Clone returns a deep copy of the habit so that read-only consumers can
// never mutate the store's record through a shared map.
func (h Habit) Clone() Habit {
	c := h
	if h.CompletionHistory != nil {
		c.CompletionHistory = make(map[string]bool, len(h.CompletionHistory))
		for k, v := range h.CompletionHistory {
			c.CompletionHistory[k] = v
		}
	}
	if h.CompletionTimes != nil {
		c.CompletionTimes = make(map[string]time.Time, len(h.CompletionTimes))
		for k, v := range h.CompletionTimes {
			c.CompletionTimes[k] = v
		}
	}
	if h.LastCompleted != nil {
		last := *h.LastCompleted
		c.LastCompleted = &last
	}
	return c
}

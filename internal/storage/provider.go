package storage

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/habitdash/internal/constants"
	"github.com/julianstephens/habitdash/internal/models"
)

// Provider is the durable storage contract. All application state lives in
// a handful of named JSON records (habits, achievements, settings); stores
// only move opaque documents and never interpret them. Validation and
// corruption recovery belong to the record owners.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	GetRecord(key string) (json.RawMessage, bool, error)
	SetRecord(key string, value json.RawMessage) error

	// Utils
	GetConfigPath() string
}

// LoadSettings reads the settings record, filling defaults for anything
// absent or unreadable. A missing or corrupt record yields pure defaults.
func LoadSettings(p Provider) models.Settings {
	settings := models.Settings{
		Timezone:             "Local",
		PerfectDayWindowDays: constants.PerfectDayWindowDays,
	}

	raw, ok, err := p.GetRecord(constants.RecordSettings)
	if err != nil || !ok {
		return settings
	}

	var stored models.Settings
	if err := json.Unmarshal(raw, &stored); err != nil {
		return settings
	}
	if stored.Timezone != "" {
		settings.Timezone = stored.Timezone
	}
	if stored.PerfectDayWindowDays > 0 {
		settings.PerfectDayWindowDays = stored.PerfectDayWindowDays
	}
	return settings
}

// SaveSettings writes the settings record.
func SaveSettings(p Provider, settings models.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	return p.SetRecord(constants.RecordSettings, raw)
}

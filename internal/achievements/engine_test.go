package achievements

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitdash/internal/constants"
	"github.com/julianstephens/habitdash/internal/models"
	"github.com/julianstephens/habitdash/internal/storage"
)

func setupTestEngine(t *testing.T) (*Engine, storage.Provider) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "habitdash.json")
	provider := storage.NewJSONStore(path)
	if err := provider.Init(); err != nil {
		t.Fatalf("failed to initialize provider: %v", err)
	}

	engine := NewEngine(provider)
	if err := engine.Load(); err != nil {
		t.Fatalf("failed to load engine: %v", err)
	}
	return engine, provider
}

func TestEvaluate_FirstCompletionUnlocksExactlyOne(t *testing.T) {
	engine, _ := setupTestEngine(t)

	snapshot := models.StatsSnapshot{TotalCompletions: 1, ActiveHabits: 1}
	newly := engine.Evaluate(snapshot)

	if len(newly) != 1 {
		t.Fatalf("expected exactly 1 unlock, got %d", len(newly))
	}
	if newly[0].ID != "EARLY_STARTER" {
		t.Errorf("expected EARLY_STARTER, got %s", newly[0].ID)
	}
	if newly[0].Points != 5 {
		t.Errorf("expected 5 points, got %d", newly[0].Points)
	}
}

func TestEvaluate_AlreadyUnlockedSkipped(t *testing.T) {
	engine, _ := setupTestEngine(t)

	snapshot := models.StatsSnapshot{TotalCompletions: 1, ActiveHabits: 1}
	engine.Evaluate(snapshot)

	// Same snapshot again: nothing new, nothing lost.
	newly := engine.Evaluate(snapshot)
	if len(newly) != 0 {
		t.Errorf("expected no new unlocks on re-evaluation, got %d", len(newly))
	}
	if !engine.IsUnlocked("EARLY_STARTER") {
		t.Error("expected EARLY_STARTER to stay unlocked")
	}
}

func TestEvaluate_MonotonicAcrossRegression(t *testing.T) {
	engine, _ := setupTestEngine(t)

	engine.Evaluate(models.StatsSnapshot{TotalCompletions: 60, MaxStreak: 8, ActiveHabits: 5})
	before := len(engine.Unlocked())
	if before == 0 {
		t.Fatal("expected unlocks from the rich snapshot")
	}

	// Stats regress (habits deleted, completions untoggled): the unlocked
	// set must never shrink.
	engine.Evaluate(models.StatsSnapshot{})
	after := len(engine.Unlocked())
	if after < before {
		t.Errorf("unlocked set shrank from %d to %d", before, after)
	}
}

func TestEvaluate_BatchSeesSameSnapshot(t *testing.T) {
	engine, _ := setupTestEngine(t)

	snapshot := models.StatsSnapshot{
		TotalCompletions: 50,
		MaxStreak:        7,
		PerfectDays:      7,
		EarlyCompletions: 1,
		LateCompletions:  1,
		ActiveHabits:     5,
	}
	newly := engine.Evaluate(snapshot)

	// Every catalog entry is satisfied by this snapshot; all unlock in one
	// batch.
	if len(newly) != len(Catalog()) {
		t.Errorf("expected all %d badges unlocked in one batch, got %d", len(Catalog()), len(newly))
	}
}

func TestEvaluate_PersistsState(t *testing.T) {
	engine, provider := setupTestEngine(t)

	snapshot := models.StatsSnapshot{TotalCompletions: 1, ActiveHabits: 1}
	engine.Evaluate(snapshot)

	reloaded := NewEngine(provider)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reloaded.IsUnlocked("EARLY_STARTER") {
		t.Error("expected unlock to survive reload")
	}
	if reloaded.LastStats() != snapshot {
		t.Errorf("expected last stats %+v, got %+v", snapshot, reloaded.LastStats())
	}
}

func TestDrain_ReturnsAndClearsQueue(t *testing.T) {
	engine, _ := setupTestEngine(t)

	engine.Evaluate(models.StatsSnapshot{TotalCompletions: 1, ActiveHabits: 1})

	pending := engine.Drain()
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending notification, got %d", len(pending))
	}
	if pending[0].Title != "Early Starter" {
		t.Errorf("expected Early Starter notification, got %q", pending[0].Title)
	}

	if again := engine.Drain(); len(again) != 0 {
		t.Errorf("expected queue cleared after drain, got %d", len(again))
	}
}

func TestLoad_CorruptRecordResets(t *testing.T) {
	engine, provider := setupTestEngine(t)

	engine.Evaluate(models.StatsSnapshot{TotalCompletions: 1, ActiveHabits: 1})

	if err := provider.SetRecord(constants.RecordAchievements, json.RawMessage(`[1,2,3]`)); err != nil {
		t.Fatalf("SetRecord failed: %v", err)
	}

	reloaded := NewEngine(provider)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load should recover from corruption: %v", err)
	}
	if len(reloaded.Unlocked()) != 0 {
		t.Errorf("expected zero state after corruption, got %v", reloaded.Unlocked())
	}
	if reloaded.LastStats() != (models.StatsSnapshot{}) {
		t.Errorf("expected zeroed stats after corruption, got %+v", reloaded.LastStats())
	}
}

func TestLoad_AbsentRecordIsZeroState(t *testing.T) {
	engine, _ := setupTestEngine(t)

	if len(engine.Unlocked()) != 0 {
		t.Errorf("expected no unlocks for fresh state, got %v", engine.Unlocked())
	}
	if engine.Points() != 0 {
		t.Errorf("expected 0 points, got %d", engine.Points())
	}
}

func TestPoints_SumsUnlocked(t *testing.T) {
	engine, _ := setupTestEngine(t)

	// EARLY_STARTER (5) + VARIETY_MASTER (15).
	engine.Evaluate(models.StatsSnapshot{TotalCompletions: 1, ActiveHabits: 5})
	if engine.Points() != 20 {
		t.Errorf("expected 20 points, got %d", engine.Points())
	}
}

func TestCatalog_HasEightBadges(t *testing.T) {
	if len(Catalog()) != 8 {
		t.Errorf("expected 8 catalog entries, got %d", len(Catalog()))
	}
}

package quotes

import (
	"testing"
	"time"
)

func TestOfDay_StableWithinDay(t *testing.T) {
	morning := time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 7, 1, 23, 0, 0, 0, time.UTC)

	if OfDay(morning) != OfDay(evening) {
		t.Error("expected the same quote for the same calendar day")
	}
}

func TestOfDay_NonEmpty(t *testing.T) {
	day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		q := OfDay(day.AddDate(0, 0, i))
		if q.Text == "" || q.Author == "" {
			t.Fatalf("empty quote for day offset %d", i)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("expected non-empty catalog")
	}
	all[0].Text = "mutated"
	if All()[0].Text == "mutated" {
		t.Error("mutating the returned slice must not affect the catalog")
	}
}

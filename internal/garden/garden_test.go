package garden

import (
	"testing"
	"time"
)

func TestDeriveFreshGarden(t *testing.T) {
	state := Derive(0, nil)

	if state.HistoricalDebtsPaid != 0 {
		t.Fatalf("HistoricalDebtsPaid = %d, want 0", state.HistoricalDebtsPaid)
	}
	if len(state.Completed) != 0 || len(state.Badges) != 0 {
		t.Fatalf("fresh garden has %d completed, %d badges", len(state.Completed), len(state.Badges))
	}
	if state.Current == nil {
		t.Fatal("fresh garden should show a seed")
	}
	if state.Current.Name != "Rose" || state.Current.Stage != 0 {
		t.Fatalf("current = %s stage %d, want Rose stage 0", state.Current.Name, state.Current.Stage)
	}
}

func TestDeriveStages(t *testing.T) {
	tests := []struct {
		total     int
		completed int
		current   string
		stage     int
	}{
		{1, 0, "Rose", 1},
		{4, 0, "Rose", 4},
		{5, 1, "", 0}, // exactly on the boundary, no in-progress plant
		{6, 1, "Sunflower", 1},
		{9, 1, "Sunflower", 4},
		{10, 2, "", 0},
		{12, 2, "Orchid", 2},
	}

	for _, tt := range tests {
		state := Derive(tt.total, nil)
		if len(state.Completed) != tt.completed {
			t.Errorf("Derive(%d): %d completed plants, want %d", tt.total, len(state.Completed), tt.completed)
		}
		if tt.current == "" {
			if state.Current != nil {
				t.Errorf("Derive(%d): current = %s, want none", tt.total, state.Current.Name)
			}
			continue
		}
		if state.Current == nil {
			t.Errorf("Derive(%d): no current plant, want %s", tt.total, tt.current)
			continue
		}
		if state.Current.Name != tt.current || state.Current.Stage != tt.stage {
			t.Errorf("Derive(%d): current = %s stage %d, want %s stage %d",
				tt.total, state.Current.Name, state.Current.Stage, tt.current, tt.stage)
		}
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	awards := map[int]time.Time{
		1: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		2: time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC),
	}

	a := Derive(12, awards)
	b := Derive(12, awards)

	if len(a.Completed) != len(b.Completed) {
		t.Fatalf("completed counts differ: %d vs %d", len(a.Completed), len(b.Completed))
	}
	for i := range a.Completed {
		if a.Completed[i] != b.Completed[i] {
			t.Errorf("plant %d differs: %+v vs %+v", i, a.Completed[i], b.Completed[i])
		}
	}
	if a.Completed[0].ID != "plant-1" || a.Badges[0].ID != "badge-1" {
		t.Errorf("ids = %s/%s, want plant-1/badge-1", a.Completed[0].ID, a.Badges[0].ID)
	}
	if !a.Completed[0].CompletedAt.Equal(awards[1]) {
		t.Errorf("CompletedAt = %v, want persisted award time", a.Completed[0].CompletedAt)
	}
}

func TestBadgesMatchCompletedPlants(t *testing.T) {
	for total := 0; total <= 45; total++ {
		state := Derive(total, nil)
		if len(state.Badges) != len(state.Completed) {
			t.Fatalf("Derive(%d): %d badges for %d completed plants", total, len(state.Badges), len(state.Completed))
		}
		for i, badge := range state.Badges {
			if badge.PlantID != state.Completed[i].ID {
				t.Errorf("Derive(%d): badge %d links %s, want %s", total, i, badge.PlantID, state.Completed[i].ID)
			}
		}
	}
}

func TestCatalogCycles(t *testing.T) {
	// Tier 9 wraps back to the first catalog entry.
	p := PlantForTier(9)
	if p.Name != "Rose" {
		t.Fatalf("tier 9 = %s, want Rose", p.Name)
	}
	if p.ID != "plant-9" {
		t.Fatalf("tier 9 id = %s, want plant-9", p.ID)
	}
}

func TestTierCrossed(t *testing.T) {
	tests := []struct {
		before, after int
		want          bool
	}{
		{3, 4, false},
		{4, 5, true},
		{5, 6, false},
		{9, 10, true},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := TierCrossed(tt.before, tt.after); got != tt.want {
			t.Errorf("TierCrossed(%d, %d) = %v, want %v", tt.before, tt.after, got, tt.want)
		}
	}
}

func TestNextSeed(t *testing.T) {
	if got := NextSeed(5); got != "Sunflower" {
		t.Errorf("NextSeed(5) = %s, want Sunflower", got)
	}
	if got := NextSeed(40); got != "Rose" {
		t.Errorf("NextSeed(40) = %s, want Rose after a full catalog cycle", got)
	}
}

func TestDeriveNegativeTotal(t *testing.T) {
	state := Derive(-3, nil)
	if state.HistoricalDebtsPaid != 0 {
		t.Fatalf("HistoricalDebtsPaid = %d, want clamped 0", state.HistoricalDebtsPaid)
	}
}

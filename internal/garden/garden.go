// Package garden derives the gamification state from the historical count of
// fully paid debts. The counter is the only authoritative input; plants and
// badges are recomputed from it on every read.
package garden

import (
	"fmt"
	"time"

	"github.com/theirongolddev/finmate/internal/model"
)

// DebtsPerTier is how many fully paid debts bloom one plant.
const DebtsPerTier = 5

type archetype struct {
	Name string
	Icon string
}

// The plant catalog cycles by tier index once all entries have bloomed.
var catalog = []archetype{
	{"Rose", "🌹"},
	{"Sunflower", "🌻"},
	{"Orchid", "🌸"},
	{"Tulip", "🌷"},
	{"Lily", "💐"},
	{"Daisy", "🌼"},
	{"Jasmine", "🪻"},
	{"Lavender", "💜"},
}

// StageNames maps plant stages 0-4 to display names.
var StageNames = [5]string{"Seed", "Sprout", "Young Plant", "Bud", "Bloomed"}

// Derive recomputes the full garden view from the historical debts-paid
// count. awards carries persisted per-tier completion timestamps; derivation
// with the same total always reproduces the same plant and badge identities.
func Derive(total int, awards map[int]time.Time) model.GardenState {
	if total < 0 {
		total = 0
	}

	state := model.GardenState{HistoricalDebtsPaid: total}

	completedTiers := total / DebtsPerTier
	stage := total % DebtsPerTier

	for tier := 1; tier <= completedTiers; tier++ {
		plant := PlantForTier(tier)
		plant.Stage = 4
		plant.Completed = true
		plant.CompletedAt = awards[tier]

		state.Completed = append(state.Completed, plant)
		state.Badges = append(state.Badges, model.GardenBadge{
			ID:          fmt.Sprintf("badge-%d", tier),
			PlantID:     plant.ID,
			Name:        fmt.Sprintf("%s in Bloom", plant.Name),
			Description: fmt.Sprintf("Five debts paid in full bloomed your %s", plant.Name),
			Icon:        plant.Icon,
			AwardedAt:   awards[tier],
		})
	}

	if stage > 0 || completedTiers == 0 {
		plant := PlantForTier(completedTiers + 1)
		plant.Stage = stage
		state.Current = &plant
	}

	return state
}

// NextSeed names the plant that sprouts after the given total's current tier,
// for tier-completion announcements.
func NextSeed(total int) string {
	return catalog[(total/DebtsPerTier)%len(catalog)].Name
}

// TierCrossed reports whether moving the counter from before to after
// completed a tier.
func TierCrossed(before, after int) bool {
	return after/DebtsPerTier > before/DebtsPerTier
}

// PlantForTier returns the catalog plant for a 1-based tier index.
func PlantForTier(tier int) model.GardenPlant {
	a := catalog[(tier-1)%len(catalog)]
	return model.GardenPlant{
		ID:   fmt.Sprintf("plant-%d", tier),
		Name: a.Name,
		Icon: a.Icon,
		Tier: tier,
	}
}

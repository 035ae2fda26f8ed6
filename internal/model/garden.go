package model

import "time"

// GardenPlant is one plant in the financial garden. A plant completes when
// five debts have been fully paid within its tier.
type GardenPlant struct {
	ID          string
	Name        string
	Icon        string
	Tier        int // 1-based, cycles through the plant catalog
	Stage       int // 0=seed .. 4=bloomed
	Completed   bool
	UnlockedAt  time.Time
	CompletedAt time.Time
}

// GardenBadge is awarded when a plant completes, 1:1 with completed plants.
type GardenBadge struct {
	ID          string
	PlantID     string
	Name        string
	Description string
	Icon        string
	AwardedAt   time.Time
}

// GardenState is the derived garden view handed to the UI layer.
type GardenState struct {
	HistoricalDebtsPaid int
	Current             *GardenPlant // nil when the count sits exactly on a completed tier boundary
	Completed           []GardenPlant
	Badges              []GardenBadge
}

// Streak tracks consecutive days with activity, at day granularity.
type Streak struct {
	Current          int
	Longest          int
	LastActivityDate time.Time
}

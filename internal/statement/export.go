package statement

import (
	"encoding/json"
	"io"
	"time"

	"github.com/theirongolddev/finmate/internal/ledger"
	"github.com/theirongolddev/finmate/internal/model"
)

// Backup is the JSON document written by Export. Money fields serialize as
// strings through shopspring's decimal MarshalJSON, so the file round-trips
// without float drift.
type Backup struct {
	ExportedAt time.Time `json:"exported_at"`
	Version    int       `json:"version"`

	Debts        []model.Debt             `json:"debts"`
	Payments     []model.ScheduledPayment `json:"payments"`
	Transactions []model.Transaction      `json:"transactions"`

	HistoricalDebtsPaid int            `json:"historical_debts_paid"`
	Awards              []tierAward    `json:"awards"`
	Streak              model.Streak   `json:"streak"`
	Profile             *model.Profile `json:"profile,omitempty"`
}

type tierAward struct {
	Tier int       `json:"tier"`
	At   time.Time `json:"at"`
}

const backupVersion = 1

// Export writes the full ledger as indented JSON.
func Export(w io.Writer, svc *ledger.Service) error {
	g := svc.Garden()
	b := Backup{
		ExportedAt:          time.Now().UTC(),
		Version:             backupVersion,
		Debts:               svc.Debts(),
		Payments:            svc.ScheduledPayments(),
		Transactions:        svc.Transactions(),
		HistoricalDebtsPaid: g.HistoricalDebtsPaid,
		Streak:              svc.StreakSnapshot(),
	}
	for _, plant := range g.Completed {
		b.Awards = append(b.Awards, tierAward{Tier: plant.Tier, At: plant.CompletedAt})
	}
	if p, ok := svc.Profile(); ok {
		b.Profile = &p
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

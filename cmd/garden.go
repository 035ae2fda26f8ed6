package cmd

import (
	"fmt"

	"github.com/theirongolddev/finmate/internal/cli"
	"github.com/theirongolddev/finmate/internal/garden"

	"github.com/spf13/cobra"
)

var gardenCmd = &cobra.Command{
	Use:   "garden",
	Short: "Show your financial garden",
	RunE:  runGarden,
}

func init() {
	rootCmd.AddCommand(gardenCmd)
}

func runGarden(_ *cobra.Command, _ []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	state := svc.Garden()

	fmt.Println()
	fmt.Println(cli.RenderTitle("GARDEN"))
	fmt.Println()
	fmt.Printf("  Debts paid off: %d\n", state.HistoricalDebtsPaid)

	if state.Current != nil {
		p := state.Current
		fmt.Printf("  Growing: %s %s, %s %s\n",
			p.Icon, p.Name,
			garden.StageNames[p.Stage],
			cli.RenderStageBar(p.Stage, garden.DebtsPerTier-1))
		remaining := garden.DebtsPerTier - state.HistoricalDebtsPaid%garden.DebtsPerTier
		fmt.Printf("  %d more paid-off debts to bloom.\n", remaining)
	} else if len(state.Completed) > 0 {
		fmt.Printf("  A %s seed awaits your next paid-off debt.\n",
			garden.NextSeed(state.HistoricalDebtsPaid))
	}

	if len(state.Completed) > 0 {
		fmt.Println()
		rows := make([][]string, 0, len(state.Completed))
		for _, p := range state.Completed {
			rows = append(rows, []string{
				fmt.Sprintf("%s %s", p.Icon, p.Name),
				cli.FormatDate(p.CompletedAt),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Bloomed",
			Headers: []string{"Plant", "Completed"},
			Rows:    rows,
		}))
	}

	if len(state.Badges) > 0 {
		fmt.Println()
		for _, b := range state.Badges {
			fmt.Printf("  %s %s · %s\n", b.Icon, b.Name, b.Description)
		}
	}

	fmt.Println()
	return nil
}

package cmd

import (
	"fmt"

	"github.com/theirongolddev/finmate/internal/cli"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your activity streak",
	RunE:  runStreak,
}

var streakTouch bool

func init() {
	streakCmd.Flags().BoolVar(&streakTouch, "touch", false, "Record activity for today")
	rootCmd.AddCommand(streakCmd)
}

func runStreak(_ *cobra.Command, _ []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	if streakTouch {
		if _, err := svc.TouchStreak(); err != nil {
			return err
		}
	}

	s := svc.StreakSnapshot()
	fmt.Println()
	if s.Current == 0 {
		fmt.Println("  No active streak. Any debt activity today starts one.")
		return nil
	}

	fmt.Printf("  🔥 Current streak: %d days\n", s.Current)
	fmt.Printf("  Longest streak:  %d days\n", s.Longest)
	fmt.Printf("  Last activity:   %s\n", cli.FormatDate(s.LastActivityDate))
	fmt.Println()
	return nil
}

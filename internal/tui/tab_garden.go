package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finmate/internal/garden"
	"github.com/theirongolddev/finmate/internal/tui/components"
	"github.com/theirongolddev/finmate/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderGarden(width int) string {
	t := theme.Active
	state := a.svc.Garden()
	streak := a.svc.StreakSnapshot()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder

	cards := []struct{ Label, Value, Detail string }{
		{"Debts paid off", fmt.Sprintf("%d", state.HistoricalDebtsPaid), ""},
		{"Plants bloomed", fmt.Sprintf("%d", len(state.Completed)), ""},
		{"Streak", fmt.Sprintf("%d days", streak.Current), fmt.Sprintf("best %d", streak.Longest)},
	}
	b.WriteString(components.MetricCardRow(cards, width-2))
	b.WriteString("\n\n")

	if state.Current != nil {
		p := state.Current
		b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n",
			p.Icon,
			valueStyle.Render(p.Name),
			components.StageDots(p.Stage, garden.DebtsPerTier-1),
			labelStyle.Render(garden.StageNames[p.Stage]),
		))
		remaining := garden.DebtsPerTier - state.HistoricalDebtsPaid%garden.DebtsPerTier
		b.WriteString(dimStyle.Render(fmt.Sprintf("     %d more paid-off debts to bloom\n", remaining)))
	} else if len(state.Completed) > 0 {
		next := garden.NextSeed(state.HistoricalDebtsPaid)
		b.WriteString(dimStyle.Render(fmt.Sprintf("  A %s seed is waiting for your next paid-off debt.\n", next)))
	}

	if len(state.Completed) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  Bloomed\n"))
		for _, p := range state.Completed {
			line := fmt.Sprintf("    %s %s", p.Icon, p.Name)
			if !p.CompletedAt.IsZero() {
				line += dimStyle.Render(fmt.Sprintf("  (%s)", p.CompletedAt.Format("Jan 2, 2006")))
			}
			b.WriteString(line + "\n")
		}
	}

	if len(state.Badges) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  Badges\n"))
		for _, badge := range state.Badges {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				badge.Icon,
				valueStyle.Render(badge.Name),
				dimStyle.Render("· "+badge.Description),
			))
		}
	}

	return b.String()
}

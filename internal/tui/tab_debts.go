package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finmate/internal/cli"
	"github.com/theirongolddev/finmate/internal/tui/components"
	"github.com/theirongolddev/finmate/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func (a App) renderDebts(width int) string {
	t := theme.Active
	debts := a.svc.Debts()

	totalOwed := decimal.Zero
	totalPaid := decimal.Zero
	active := 0
	for _, d := range debts {
		totalOwed = totalOwed.Add(d.Remaining())
		totalPaid = totalPaid.Add(d.Paid)
		if !d.FullyPaid() {
			active++
		}
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Owed", cli.FormatMoney(a.symbol, totalOwed), ""},
		{"Paid so far", cli.FormatMoney(a.symbol, totalPaid), ""},
		{"Active debts", fmt.Sprintf("%d", active), ""},
	}
	out := components.MetricCardRow(cards, width-2) + "\n\n"

	if len(debts) == 0 {
		out += lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("  No debts yet. Press [a] to add one.")
		return out + "\n"
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	nameW := 24
	barW := width - nameW - 40
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for i, d := range debts {
		name := d.Name
		if len(name) > nameW {
			name = name[:nameW-1] + "…"
		}

		stats := a.svc.Stats(d)
		line := fmt.Sprintf("  %-*s %s  %s",
			nameW, name,
			components.PayoffBar("", d.PercentPaid(), 0, barW),
			cli.FormatMoney(a.symbol, d.Remaining()),
		)

		switch {
		case i == a.selDebt:
			b.WriteString(selStyle.Render(line))
		case d.FullyPaid():
			b.WriteString(doneStyle.Render(line))
		default:
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")

		if i == a.selDebt && !d.FullyPaid() {
			b.WriteString(dimStyle.Render(fmt.Sprintf(
				"      due %s · %s left · suggested %s/mo",
				cli.FormatDate(d.DueDate),
				cli.FormatMonths(stats.RemainingMonths),
				cli.FormatMoney(a.symbol, stats.MonthlyPayment.Round(2)),
			)))
			b.WriteString("\n")
		}
	}

	return out + b.String()
}

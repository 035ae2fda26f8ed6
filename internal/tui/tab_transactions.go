package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finmate/internal/cli"
	"github.com/theirongolddev/finmate/internal/model"
	"github.com/theirongolddev/finmate/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTransactions(width int) string {
	t := theme.Active
	txs := a.svc.Transactions()

	if len(txs) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("  No transactions. Declare incomes and expenses with `finmate tx add`.") + "\n"
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Green)
	expenseStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("  %-8s %-20s %12s %12s  %s",
		"Type", "Category", "Amount", "Available", "Date")))
	b.WriteString("\n")

	for i, tx := range txs {
		available := "-"
		if tx.Type == model.Expense {
			available = cli.FormatMoney(a.symbol, tx.Available())
		}

		category := tx.Category
		if len(category) > 20 {
			category = category[:19] + "…"
		}

		line := fmt.Sprintf("  %-8s %-20s %12s %12s  %s",
			string(tx.Type), category,
			cli.FormatMoney(a.symbol, tx.Amount),
			available,
			cli.FormatDate(tx.Date),
		)

		switch {
		case i == a.selTx:
			b.WriteString(selStyle.Render(line))
		case tx.Type == model.Income:
			b.WriteString(incomeStyle.Render(line))
		default:
			b.WriteString(expenseStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

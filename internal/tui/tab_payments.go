package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/finmate/internal/cli"
	"github.com/theirongolddev/finmate/internal/money"
	"github.com/theirongolddev/finmate/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPayments(width int) string {
	t := theme.Active
	pays := a.svc.ScheduledPayments()

	if len(pays) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("  No scheduled payments. Generate a plan with `finmate plan`.") + "\n"
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	paidStyle := lipgloss.NewStyle().Foreground(t.Green)
	lateStyle := lipgloss.NewStyle().Foreground(t.Red)
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	today := money.DateOnly(time.Now())

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("  %-24s %-6s %12s %12s  %s",
		"Debt", "Month", "Amount", "Paid", "Due")))
	b.WriteString("\n")

	for i, p := range pays {
		status := ""
		overdue := !p.Paid && p.DueDate.Before(today)
		if p.Paid {
			status = " ✓"
		} else if overdue {
			status = " overdue"
		}

		name := p.DebtName
		if len(name) > 24 {
			name = name[:23] + "…"
		}

		line := fmt.Sprintf("  %-24s %-6d %12s %12s  %s%s",
			name, p.MonthNumber,
			cli.FormatMoney(a.symbol, p.Amount),
			cli.FormatMoney(a.symbol, p.PaidAmount),
			cli.FormatDate(p.DueDate),
			status,
		)

		switch {
		case i == a.selPay:
			b.WriteString(selStyle.Render(line))
		case p.Paid:
			b.WriteString(paidStyle.Render(line))
		case overdue:
			b.WriteString(lateStyle.Render(line))
		default:
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).
		Render("  Press Enter to settle the selected installment."))
	b.WriteString("\n")

	return b.String()
}

package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finmate/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a progress bar with percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	// Color by payoff progress
	var barColor lipgloss.Color
	switch {
	case pct >= 0.8:
		barColor = t.Green
	case pct >= 0.5:
		barColor = t.Accent
	default:
		barColor = t.Cyan
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Bold(true)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + " " + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// ColorForPayoff returns a color that warms up as a debt approaches payoff.
func ColorForPayoff(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.GreenBright)
	case pct >= 0.7:
		return string(t.Green)
	case pct >= 0.4:
		return string(t.Yellow)
	default:
		return string(t.Orange)
	}
}

// PayoffBar renders a labeled payoff bar with percentage.
func PayoffBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPayoff(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPayoff(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(pct) +
		" " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// StageDots renders garden growth as filled stage markers.
func StageDots(current, total int) string {
	t := theme.Active
	if total <= 0 {
		return ""
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}

	filled := lipgloss.NewStyle().Foreground(t.Green)
	empty := lipgloss.NewStyle().Foreground(t.TextDim)

	return filled.Render(strings.Repeat("●", current)) +
		empty.Render(strings.Repeat("○", total-current))
}

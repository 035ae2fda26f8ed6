// Package tui provides the interactive Bubble Tea dashboard for finmate.
package tui

import (
	"fmt"

	"github.com/theirongolddev/finmate/internal/config"
	"github.com/theirongolddev/finmate/internal/ledger"
	"github.com/theirongolddev/finmate/internal/tui/components"
	"github.com/theirongolddev/finmate/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
)

// Tab indices into components.Tabs.
const (
	idxDebts = iota
	idxPayments
	idxTransactions
	idxGarden
)

// App is the root Bubble Tea model.
type App struct {
	svc    *ledger.Service
	cfg    config.Config
	symbol string

	width  int
	height int

	activeTab int
	showHelp  bool

	// Per-tab cursor positions
	selDebt int
	selPay  int
	selTx   int

	// Active modal form, nil when browsing
	form     *huh.Form
	formKind formKind

	// Pointers so the form inputs and later model copies share one struct
	debtVals   *debtFormVals
	settleVals *settleFormVals

	// Transient feedback line under the content
	status     string
	statusWarn bool
}

type formKind int

const (
	formNone formKind = iota
	formAddDebt
	formSettle
)

// NewApp builds the root model.
func NewApp(svc *ledger.Service, cfg config.Config) App {
	return App{
		svc:    svc,
		cfg:    cfg,
		symbol: cfg.General.CurrencySymbol,
	}
}

// Run starts the dashboard and blocks until quit.
func Run(svc *ledger.Service, cfg config.Config) error {
	theme.SetActive(cfg.Appearance.Theme)

	p := tea.NewProgram(NewApp(svc, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.form != nil {
			return a.updateForm(msg)
		}
		return a.updateBrowse(msg)
	}

	if a.form != nil {
		form, cmd := a.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			a.form = f
		}
		return a, cmd
	}
	return a, nil
}

func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "?":
		a.showHelp = !a.showHelp
		return a, nil

	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		a.status = ""
		return a, nil

	case "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		a.status = ""
		return a, nil

	case "j", "down":
		a.moveCursor(1)
		return a, nil

	case "k", "up":
		a.moveCursor(-1)
		return a, nil

	case "a":
		if a.activeTab == idxDebts {
			return a.openAddDebtForm()
		}
		return a, nil

	case "enter":
		if a.activeTab == idxPayments {
			return a.openSettleForm()
		}
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			a.status = ""
		}
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	clamp := func(v, n int) int {
		if n == 0 {
			return 0
		}
		if v < 0 {
			return 0
		}
		if v >= n {
			return n - 1
		}
		return v
	}

	switch a.activeTab {
	case idxDebts:
		a.selDebt = clamp(a.selDebt+delta, len(a.svc.Debts()))
	case idxPayments:
		a.selPay = clamp(a.selPay+delta, len(a.svc.ScheduledPayments()))
	case idxTransactions:
		a.selTx = clamp(a.selTx+delta, len(a.svc.Transactions()))
	}
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		a.form = nil
		a.formKind = formNone
		a.status = ""
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		kind := a.formKind
		a.form = nil
		a.formKind = formNone
		switch kind {
		case formAddDebt:
			a.submitAddDebt()
		case formSettle:
			a.submitSettle()
		}
	}
	if a.form != nil && a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
	}

	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n", a.width, minTerminalWidth)
	}

	width := a.width
	if width > maxContentWidth {
		width = maxContentWidth
	}

	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	header := " " + titleStyle.Render("finmate") + "  " +
		lipgloss.NewStyle().Foreground(t.TextDim).Render("debt tracker")

	var body string
	switch {
	case a.form != nil:
		body = "\n" + a.form.View()
	case a.showHelp:
		body = a.renderHelp()
	default:
		switch a.activeTab {
		case idxDebts:
			body = a.renderDebts(width)
		case idxPayments:
			body = a.renderPayments(width)
		case idxTransactions:
			body = a.renderTransactions(width)
		case idxGarden:
			body = a.renderGarden(width)
		}
	}

	statusLine := ""
	if a.status != "" {
		style := lipgloss.NewStyle().Foreground(t.Green)
		if a.statusWarn {
			style = lipgloss.NewStyle().Foreground(t.Orange)
		}
		statusLine = "\n " + style.Render(a.status)
	}

	streak := a.svc.StreakSnapshot()
	right := ""
	if streak.Current > 0 {
		right = fmt.Sprintf("🔥 %d day streak", streak.Current)
	}

	return header + "\n\n" +
		components.RenderTabBar(a.activeTab, width) + "\n\n" +
		body +
		statusLine + "\n" +
		components.RenderStatusBar(width, right)
}

func (a App) renderHelp() string {
	t := theme.Active
	key := lipgloss.NewStyle().Foreground(t.Accent)
	txt := lipgloss.NewStyle().Foreground(t.TextMuted)

	lines := []struct{ k, desc string }{
		{"d/p/t/g", "switch tabs"},
		{"tab", "next tab"},
		{"j/k", "move selection"},
		{"a", "add a debt (Debts tab)"},
		{"enter", "settle the selected installment (Payments tab)"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	out := "\n"
	for _, l := range lines {
		out += fmt.Sprintf("  %s  %s\n", key.Render(fmt.Sprintf("%-7s", l.k)), txt.Render(l.desc))
	}
	return out
}

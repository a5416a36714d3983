package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/paperhands/internal/analytics"
	"github.com/zappabad/paperhands/internal/player"
	"github.com/zappabad/paperhands/tui/styles"
)

// recentTrades bounds the transaction log shown under the positions table.
const recentTrades = 5

// PortfolioPanel displays the player's cash, positions, margin account and
// loan book.
type PortfolioPanel struct {
	player  *player.Player
	focused bool
	width   int
	height  int
}

// NewPortfolioPanel creates a portfolio panel over the given player.
func NewPortfolioPanel(pl *player.Player) *PortfolioPanel {
	return &PortfolioPanel{player: pl}
}

// Init initializes the panel.
func (p *PortfolioPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *PortfolioPanel) Update(msg tea.Msg) (*PortfolioPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *PortfolioPanel) View() string {
	var content strings.Builder
	pf := p.player.Portfolio()

	content.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		styles.LabelStyle.Render("Cash"), styles.Money(pf.CashBalance()),
		styles.LabelStyle.Render("Stock"), styles.Money(pf.StockValue()),
		styles.LabelStyle.Render("Net"), styles.Money(p.player.NetWorth()),
	))
	content.WriteString(fmt.Sprintf("%s %s (%s)\n",
		styles.LabelStyle.Render("Return"),
		styles.SignedMoney(pf.TotalReturn()),
		styles.Percent(pf.TotalReturnPercent()),
	))

	if hist := pf.History(); len(hist) >= 2 {
		values := make([]float64, len(hist))
		for i, h := range hist {
			values[i] = h.TotalValue
		}
		content.WriteString(fmt.Sprintf("%s %.1f%% vol / %.1f%% max drawdown\n",
			styles.LabelStyle.Render("Risk"),
			analytics.AnnualizedVolatility(analytics.DailyReturns(values))*100,
			analytics.MaxDrawdown(values)*100,
		))
	}

	if p.player.MarginBalance() > 0 || p.player.MarginUsed() > 0 {
		line := fmt.Sprintf("%s %s used / %s collateral",
			styles.LabelStyle.Render("Margin"),
			styles.Money(p.player.MarginUsed()),
			styles.Money(p.player.MarginBalance()),
		)
		if p.player.CheckMarginCall() {
			line += "  " + styles.WarningStyle.Render("MARGIN CALL")
		}
		content.WriteString(line + "\n")
	}

	for i, l := range p.player.Loans() {
		if l.IsPaid() {
			continue
		}
		line := fmt.Sprintf("%s #%d %s due day %d",
			styles.LabelStyle.Render("Loan"), i, styles.Money(l.TotalDue()), l.DueDay())
		if l.IsOverdue(p.player.CurrentDay()) {
			line += "  " + styles.WarningStyle.Render("OVERDUE")
		}
		content.WriteString(line + "\n")
	}

	content.WriteString("\n")
	positions := pf.Positions()
	if len(positions) == 0 {
		content.WriteString(styles.MutedStyle.Render("No open positions"))
	} else {
		header := fmt.Sprintf("%-6s %6s %10s %10s %9s",
			"Ticker", "Qty", "Avg", "Value", "P/L")
		content.WriteString(styles.HeaderStyle.Render(header))
		content.WriteString("\n")
		for i, pos := range positions {
			row := fmt.Sprintf("%-6s %6d %10s %10s %9s",
				pos.Ticker(),
				pos.Quantity(),
				styles.Money(pos.AveragePrice()),
				styles.Money(pos.CurrentValue()),
				fmt.Sprintf("%+.1f%%", pos.UnrealizedPLPercent()),
			)
			style := styles.RowStyle
			if pos.UnrealizedPL() > 0 {
				style = styles.GainStyle
			} else if pos.UnrealizedPL() < 0 {
				style = styles.LossStyle
			}
			content.WriteString(style.Render(row))
			if i < len(positions)-1 {
				content.WriteString("\n")
			}
		}
	}

	if txs := pf.Transactions(); len(txs) > 0 {
		content.WriteString("\n\n")
		content.WriteString(styles.LabelStyle.Render("Recent trades"))
		content.WriteString("\n")
		start := len(txs) - recentTrades
		if start < 0 {
			start = 0
		}
		for i := len(txs) - 1; i >= start; i-- {
			tx := txs[i]
			line := fmt.Sprintf("d%03d %-4s %4d %-6s @ %s",
				tx.Day(), tx.Type(), tx.Quantity(), tx.Ticker(), styles.Money(tx.PricePerShare()))
			content.WriteString(styles.MutedStyle.Render(line))
			if i > start {
				content.WriteString("\n")
			}
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("💼 Portfolio", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *PortfolioPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *PortfolioPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetPlayer replaces the displayed player (after a load).
func (p *PortfolioPanel) SetPlayer(pl *player.Player) {
	p.player = pl
}

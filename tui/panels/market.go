package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/tui/styles"
)

// MarketPanel displays the company roster with live prices and day changes.
type MarketPanel struct {
	companies     []*market.Company
	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewMarketPanel creates a market panel over the given roster.
func NewMarketPanel(companies []*market.Company) *MarketPanel {
	return &MarketPanel{companies: companies}
}

// Init initializes the panel.
func (p *MarketPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *MarketPanel) Update(msg tea.Msg) (*MarketPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.companies)-1 {
				p.selectedIndex++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *MarketPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-6s %-22s %10s %9s %-13s",
		"Ticker", "Company", "Price", "Day", "Sector")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	for i, c := range p.companies {
		stock := c.Stock()
		name := c.Name()
		if len(name) > 22 {
			name = name[:19] + "..."
		}
		row := fmt.Sprintf("%-6s %-22s %10s %9s %-13s",
			c.Ticker(),
			name,
			styles.Money(stock.CurrentPrice()),
			fmt.Sprintf("%+.2f%%", stock.DayChangePercent()),
			c.Sector().String(),
		)

		style := styles.RowStyle
		switch {
		case i == p.selectedIndex && p.focused:
			style = styles.SelectedRowStyle
		case stock.DayChangePercent() > 0:
			style = styles.GainStyle
		case stock.DayChangePercent() < 0:
			style = styles.LossStyle
		}
		content.WriteString(style.Render(row))
		if i < len(p.companies)-1 {
			content.WriteString("\n")
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📈 Market", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *MarketPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *MarketPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetCompanies replaces the displayed roster (after a load).
func (p *MarketPanel) SetCompanies(companies []*market.Company) {
	p.companies = companies
	if p.selectedIndex >= len(companies) {
		p.selectedIndex = 0
	}
}

// SelectedCompany returns the highlighted company, nil on an empty roster.
func (p *MarketPanel) SelectedCompany() *market.Company {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.companies) {
		return p.companies[p.selectedIndex]
	}
	return nil
}

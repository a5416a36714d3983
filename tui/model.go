// Package tui implements the terminal interface: a day-stepped dashboard of
// market, portfolio, news and trade entry panels over one game session.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/paperhands/internal/game"
	"github.com/zappabad/paperhands/tui/panels"
	"github.com/zappabad/paperhands/tui/styles"
)

// defaultSlot is the save slot used by the quick-save keys.
const defaultSlot = "quicksave"

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusMarket    PanelFocus = 0
	FocusPortfolio PanelFocus = 1
	FocusNews      PanelFocus = 2
	FocusTrade     PanelFocus = 3
)

// Model is the main TUI application model. The game advances only on the
// advance-day key; there is no background clock.
type Model struct {
	game *game.Game

	marketPanel    *panels.MarketPanel
	portfolioPanel *panels.PortfolioPanel
	newsPanel      *panels.NewsPanel
	tradePanel     *panels.TradePanel

	focusedPanel PanelFocus

	width  int
	height int

	statusMsg string
	ready     bool
}

// NewModel creates a TUI model over a game session.
func NewModel(g *game.Game) *Model {
	m := &Model{
		game:           g,
		marketPanel:    panels.NewMarketPanel(g.Market().Companies()),
		portfolioPanel: panels.NewPortfolioPanel(g.Player()),
		newsPanel:      panels.NewNewsPanel(),
		tradePanel:     panels.NewTradePanel(),
		focusedPanel:   FocusMarket,
	}
	m.newsPanel.SetNews(g.News().Latest(50))
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.marketPanel.Init(),
		m.portfolioPanel.Init(),
		m.newsPanel.Init(),
		m.tradePanel.Init(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The trade form consumes plain keys while focused; only control
		// chords pass through globally.
		if m.focusedPanel == FocusTrade {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "tab":
				m.cycleFocus()
				return m, nil
			case "shift+tab":
				m.reverseFocus()
				return m, nil
			case "ctrl+n":
				m.advanceDay()
				return m, nil
			case "ctrl+s":
				m.save()
				return m, nil
			}
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.cycleFocus()
		case "shift+tab":
			m.reverseFocus()
		case "f1":
			m.setFocus(FocusMarket)
		case "f2":
			m.setFocus(FocusPortfolio)
		case "f3":
			m.setFocus(FocusNews)
		case "f4":
			m.setFocus(FocusTrade)
		case "n", " ":
			m.advanceDay()
		case "ctrl+s":
			m.save()
		case "ctrl+l":
			m.load()
		case "enter":
			if m.focusedPanel == FocusMarket {
				if c := m.marketPanel.SelectedCompany(); c != nil {
					m.tradePanel.SetTicker(c.Ticker())
					m.setFocus(FocusTrade)
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case panels.TradeSubmitMsg:
		m.handleTrade(msg)
	}

	m.updateFocusedPanel(msg, &cmds)
	return m, tea.Batch(cmds...)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd
	switch m.focusedPanel {
	case FocusMarket:
		m.marketPanel, cmd = m.marketPanel.Update(msg)
	case FocusPortfolio:
		m.portfolioPanel, cmd = m.portfolioPanel.Update(msg)
	case FocusNews:
		m.newsPanel, cmd = m.newsPanel.Update(msg)
	case FocusTrade:
		m.tradePanel, cmd = m.tradePanel.Update(msg)
	}
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) advanceDay() {
	items := m.game.AdvanceDay()
	m.newsPanel.AddNews(items...)
	m.statusMsg = fmt.Sprintf("Day %d simulated", m.game.Market().CurrentDay())
	if m.game.Player().CheckMarginCall() {
		m.statusMsg = styles.WarningStyle.Render("MARGIN CALL") + " " + m.statusMsg
	}
}

func (m *Model) handleTrade(trade panels.TradeSubmitMsg) {
	p := m.game.Player()
	var ok bool
	if trade.Sell {
		ok = p.SellStock(trade.Ticker, trade.Quantity)
	} else {
		ok = p.BuyStock(trade.Ticker, trade.Quantity, trade.UseMargin)
	}
	if !ok {
		m.tradePanel.SetError(p.LastError())
		m.statusMsg = "✗ " + p.LastError()
		return
	}
	m.tradePanel.SetError("")
	action := "Bought"
	if trade.Sell {
		action = "Sold"
	}
	m.statusMsg = fmt.Sprintf("✓ %s %d %s", action, trade.Quantity, trade.Ticker)
}

func (m *Model) save() {
	if err := m.game.Save(defaultSlot); err != nil {
		m.statusMsg = "✗ Save failed: " + err.Error()
		return
	}
	m.statusMsg = "✓ Game saved"
}

func (m *Model) load() {
	if err := m.game.Load(defaultSlot); err != nil {
		m.statusMsg = "✗ Load failed: " + err.Error()
		return
	}
	m.marketPanel.SetCompanies(m.game.Market().Companies())
	m.portfolioPanel.SetPlayer(m.game.Player())
	m.newsPanel.SetNews(m.game.News().Latest(50))
	m.statusMsg = fmt.Sprintf("✓ Loaded day %d", m.game.Market().CurrentDay())
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	m.marketPanel.SetFocus(m.focusedPanel == FocusMarket)
	m.portfolioPanel.SetFocus(m.focusedPanel == FocusPortfolio)
	m.newsPanel.SetFocus(m.focusedPanel == FocusNews)
	m.tradePanel.SetFocus(m.focusedPanel == FocusTrade)

	// Layout:
	// ┌───────────────────┬─────────────────────────┐
	// │      Market       │        Portfolio        │
	// ├───────────────────┼─────────────────────────┤
	// │      News         │          Trade          │
	// └───────────────────┴─────────────────────────┘

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth
	topHeight := (m.height - 4) * 3 / 5
	bottomHeight := m.height - topHeight - 4

	m.marketPanel.SetSize(leftWidth, topHeight)
	m.portfolioPanel.SetSize(rightWidth, topHeight)
	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.marketPanel.View(),
		m.portfolioPanel.View(),
	)

	m.newsPanel.SetSize(leftWidth, bottomHeight)
	m.tradePanel.SetSize(rightWidth, bottomHeight)
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.newsPanel.View(),
		m.tradePanel.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), topRow, bottomRow, m.renderStatusBar())
}

func (m *Model) renderHeader() string {
	mk := m.game.Market()
	state := mk.State()
	header := fmt.Sprintf(" Day %d  %s   Index %.2f (%s)   Trend %s   Rates %.1f%%/%.1f%%/%.1f%%",
		mk.CurrentDay(),
		mk.CurrentDate(),
		state.IndexValue,
		fmt.Sprintf("%+.2f%%", state.DailyChangePercent),
		state.Trend,
		state.InterestRate*100,
		state.InflationRate*100,
		state.UnemploymentRate*100,
	)
	return styles.StatusBarStyle.Width(m.width).Render(header)
}

func (m *Model) renderStatusBar() string {
	help := []string{
		styles.StatusBarKeyStyle.Render("F1-F4") + styles.StatusBarDescStyle.Render(" panels"),
		styles.StatusBarKeyStyle.Render("n") + styles.StatusBarDescStyle.Render(" next day"),
		styles.StatusBarKeyStyle.Render("^S/^L") + styles.StatusBarDescStyle.Render(" save/load"),
		styles.StatusBarKeyStyle.Render("q") + styles.StatusBarDescStyle.Render(" quit"),
	}
	helpStr := lipgloss.JoinHorizontal(lipgloss.Center, help[0], " │ ", help[1], " │ ", help[2], " │ ", help[3])

	status := ""
	if m.statusMsg != "" {
		status = " │ " + m.statusMsg
	}
	return styles.StatusBarStyle.Width(m.width).Render(helpStr + status)
}

func (m *Model) setFocus(panel PanelFocus) {
	m.focusedPanel = panel
}

func (m *Model) cycleFocus() {
	m.focusedPanel = (m.focusedPanel + 1) % 4
}

func (m *Model) reverseFocus() {
	m.focusedPanel--
	if m.focusedPanel < 0 {
		m.focusedPanel = 3
	}
}

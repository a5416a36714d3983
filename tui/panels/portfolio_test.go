package panels

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/player"
	"github.com/zappabad/paperhands/internal/rng"
)

func newPanelPlayer(t *testing.T) (*player.Player, *market.Market) {
	t.Helper()
	m := market.New(market.DefaultConfig(), rng.New(1), zerolog.Nop())
	p := player.New("tester", player.DefaultConfig(), market.NewHandle(m), zerolog.Nop())
	return p, m
}

func TestPortfolioPanelRendersBalances(t *testing.T) {
	p, _ := newPanelPlayer(t)
	panel := NewPortfolioPanel(p)
	panel.SetSize(80, 24)

	view := panel.View()
	assert.Contains(t, view, "Cash")
	assert.Contains(t, view, "No open positions")
	assert.NotContains(t, view, "Risk", "no history yet, no risk line")
}

func TestPortfolioPanelRendersRiskLine(t *testing.T) {
	p, _ := newPanelPlayer(t)
	pf := p.Portfolio()
	pf.CloseDay(1)
	pf.CloseDay(2)
	pf.CloseDay(3)

	panel := NewPortfolioPanel(p)
	panel.SetSize(80, 24)

	view := panel.View()
	assert.Contains(t, view, "Risk")
	assert.Contains(t, view, "max drawdown")
}

func TestPortfolioPanelRendersRecentTrades(t *testing.T) {
	p, m := newPanelPlayer(t)
	ticker := m.Companies()[0].Ticker()
	require.True(t, p.BuyStock(ticker, 1, false), p.LastError())

	panel := NewPortfolioPanel(p)
	panel.SetSize(80, 24)

	view := panel.View()
	assert.Contains(t, view, "Recent trades")
	assert.Contains(t, view, "Buy")
	assert.Contains(t, view, ticker)
}

package player

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/paperhands/internal/calendar"
	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/portfolio"
	"github.com/zappabad/paperhands/internal/rng"
)

// fixedMarket builds a market with static prices; no days are simulated, so
// scenario arithmetic stays exact.
func fixedMarket(t *testing.T, seeds ...market.SeedCompany) *market.Handle {
	t.Helper()
	cfg := market.DefaultConfig()
	cfg.Companies = seeds
	m := market.New(cfg, rng.New(1), zerolog.Nop())
	return market.NewHandle(m)
}

func seedAt(ticker string, price float64) market.SeedCompany {
	return market.SeedCompany{
		Name: ticker + " Inc", Ticker: ticker, Sector: market.SectorTechnology,
		Volatility: 0.5, InitialPrice: price, MarketInfluence: 0.5, SectorInfluence: 0.5,
	}
}

func newTestPlayer(t *testing.T, h *market.Handle) *Player {
	t.Helper()
	return New("tester", DefaultConfig(), h, zerolog.Nop())
}

func TestBuyStockCashOnly(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)

	require.True(t, p.BuyStock("NIMB", 10, false))
	assert.InDelta(t, 8990.0, p.Portfolio().CashBalance(), 1e-9)
	pos, held := p.Portfolio().Position("NIMB")
	require.True(t, held)
	assert.Equal(t, 10, pos.Quantity())
	assert.Empty(t, p.LastError())
}

func TestBuyStockRejections(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)

	assert.False(t, p.BuyStock("NIMB", 0, false))
	assert.False(t, p.BuyStock("NOPE", 1, false))
	assert.NotEmpty(t, p.LastError())

	assert.False(t, p.BuyStock("NIMB", 1000, false), "insufficient cash without margin")
	assert.InDelta(t, 10000.0, p.Portfolio().CashBalance(), 1e-9)
}

func TestBuyStockWithoutMarket(t *testing.T) {
	p := newTestPlayer(t, market.NewHandle(nil))
	assert.False(t, p.BuyStock("NIMB", 1, false))
	assert.Equal(t, "no market available", p.LastError())
}

func TestSellStockNetsCommission(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)
	require.True(t, p.BuyStock("NIMB", 10, false))

	require.True(t, p.SellStock("NIMB", 10))
	assert.InDelta(t, 8990.0+990.0, p.Portfolio().CashBalance(), 1e-9)
	_, held := p.Portfolio().Position("NIMB")
	assert.False(t, held)
}

func TestBuyOnMarginAndRepayFromSale(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)
	require.True(t, p.DepositMargin(500))
	assert.InDelta(t, 9500.0, p.Portfolio().CashBalance(), 1e-9)

	// 98 shares cost 9898; the 398 shortfall is drawn against margin.
	require.True(t, p.BuyStock("NIMB", 98, true))
	assert.InDelta(t, 398.0, p.MarginUsed(), 1e-9)
	assert.InDelta(t, 0.0, p.Portfolio().CashBalance(), 1e-9)

	// Sale proceeds sweep the margin debt before the rest stays as cash.
	require.True(t, p.SellStock("NIMB", 20))
	assert.Zero(t, p.MarginUsed())
	assert.InDelta(t, 1980.0-398.0, p.Portfolio().CashBalance(), 1e-9)
}

func TestBuyOnMarginLimit(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)
	require.True(t, p.DepositMargin(500))

	// With no stock held yet, capacity is the collateral alone.
	assert.InDelta(t, 500.0, p.MarginAvailable(), 1e-9)
	assert.False(t, p.BuyStock("NIMB", 120, true), "shortfall beyond capacity")
	assert.Zero(t, p.MarginUsed())

	// Held stock extends capacity at (1 - requirement).
	require.True(t, p.BuyStock("NIMB", 90, false))
	assert.InDelta(t, 9000*0.5+500, p.MarginAvailable(), 1e-9)
}

func TestMarginFlagUnusedWhenCashCovers(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)
	require.True(t, p.BuyStock("NIMB", 10, true))
	assert.Zero(t, p.MarginUsed(), "margin is a fallback, not a default")
}

func TestWithdrawMarginGuarded(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)
	require.True(t, p.DepositMargin(1000))

	assert.False(t, p.WithdrawMargin(2000), "cannot withdraw more than deposited")
	require.True(t, p.WithdrawMargin(400))
	assert.InDelta(t, 600.0, p.MarginBalance(), 1e-9)
	assert.InDelta(t, 9400.0, p.Portfolio().CashBalance(), 1e-9)
}

func TestWithdrawMarginRefusedDuringCall(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := deepMarginPlayer(t, h)

	m, _ := h.Resolve()
	c, _ := m.CompanyByTicker("NIMB")
	c.ApplyPriceMovement(1, -0.60)

	assert.False(t, p.WithdrawMargin(400), "withdrawal blocked while undercollateralized")
	assert.InDelta(t, 500.0, p.MarginBalance(), 1e-9, "refused withdrawal is rolled back")
}

// deepMarginPlayer sets up a player with 500 collateral, 19 shares at 100 and
// 919 borrowed on margin, with zero cash left.
func deepMarginPlayer(t *testing.T, h *market.Handle) *Player {
	t.Helper()
	p := newTestPlayer(t, h)
	require.True(t, p.DepositMargin(500))
	require.True(t, p.Portfolio().WithdrawCash(8500))
	require.True(t, p.BuyStock("NIMB", 9, false)) // cash 1000 -> 91
	require.True(t, p.BuyStock("NIMB", 10, true)) // shortfall 919 drawn
	require.InDelta(t, 919.0, p.MarginUsed(), 1e-9)
	require.InDelta(t, 0.0, p.Portfolio().CashBalance(), 1e-9)
	return p
}

func TestLoanLifecycle(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)

	require.True(t, p.TakeLoan(5000, 0.10, 30))
	assert.InDelta(t, 15000.0, p.Portfolio().CashBalance(), 1e-9)
	require.Len(t, p.Loans(), 1)

	// A loan is debt, not income.
	assert.InDelta(t, 10000.0, p.NetWorth(), 1e-9)

	p.UpdateDailyState()
	due := p.Loans()[0].TotalDue()
	assert.Greater(t, due, 5000.0)

	require.True(t, p.RepayLoan(0))
	assert.True(t, p.Loans()[0].IsPaid())
	assert.InDelta(t, 15000.0-due, p.Portfolio().CashBalance(), 1e-9)

	assert.False(t, p.RepayLoan(0), "already repaid")
	assert.False(t, p.RepayLoan(5), "index out of range is a rejection, not a panic")
}

func TestTakeLoanValidation(t *testing.T) {
	p := newTestPlayer(t, fixedMarket(t, seedAt("NIMB", 100)))
	assert.False(t, p.TakeLoan(0, 0.1, 30))
	assert.False(t, p.TakeLoan(100, -0.1, 30))
	assert.False(t, p.TakeLoan(100, 0.1, 0))
}

func TestMarginInterestAccrues(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)
	require.True(t, p.DepositMargin(500))
	require.True(t, p.BuyStock("NIMB", 98, true))
	used := p.MarginUsed()

	p.UpdateDailyState()
	assert.InDelta(t, used*(1+0.07/365), p.MarginUsed(), 1e-9)
}

func TestSuddenDropTriggersCall(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)
	require.True(t, p.DepositMargin(500))
	require.True(t, p.BuyStock("NIMB", 98, true))
	p.CloseDay() // records previous stock value 9800

	m, _ := h.Resolve()
	c, _ := m.CompanyByTicker("NIMB")
	c.ApplyPriceMovement(1, -0.35) // above maintenance, below 70% of yesterday

	assert.True(t, p.CheckMarginCall())
}

func TestForcedLiquidationSinglePass(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := deepMarginPlayer(t, h)

	m, _ := h.Resolve()
	c, _ := m.CompanyByTicker("NIMB")
	c.ApplyPriceMovement(1, -0.60)
	require.True(t, p.CheckMarginCall())

	txBefore := len(p.Portfolio().Transactions())
	p.UpdateDailyState()

	sells := 0
	for _, tx := range p.Portfolio().Transactions()[txBefore:] {
		if tx.Type() == portfolio.TransactionSell {
			sells++
			assert.Equal(t, 1, tx.Quantity(), "10% of 19 shares, minimum one")
		}
	}
	assert.Equal(t, 1, sells, "liquidation is one pass per day")
	assert.Greater(t, p.MarginBalance(), 500.0, "raised cash lands as collateral")
}

func TestMarginCallCoveredFromCash(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := deepMarginPlayer(t, h)
	require.True(t, p.TakeLoan(200, 0.05, 30)) // cash on hand for the deficit

	m, _ := h.Resolve()
	c, _ := m.CompanyByTicker("NIMB")
	c.ApplyPriceMovement(1, -0.60)
	require.True(t, p.CheckMarginCall())

	txBefore := len(p.Portfolio().Transactions())
	p.UpdateDailyState()
	assert.Len(t, p.Portfolio().Transactions(), txBefore, "cash covered the deficit, nothing sold")
	assert.Greater(t, p.MarginBalance(), 500.0, "the deficit moved into collateral")
}

func TestNetWorth(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)
	assert.InDelta(t, 10000.0, p.NetWorth(), 1e-9)

	require.True(t, p.BuyStock("NIMB", 10, false))
	assert.InDelta(t, 10000.0-10.0, p.NetWorth(), 1e-9, "only the commission is lost")

	require.True(t, p.DepositMargin(500))
	assert.InDelta(t, 9990.0, p.NetWorth(), 1e-9, "collateral is still the player's money")
}

func TestCloseDayAdvances(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)
	p.OpenDay()
	p.CloseDay()
	assert.Equal(t, 1, p.CurrentDay())
	assert.Len(t, p.Portfolio().History(), 1)
}

func TestMarginRequirementClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MarginRequirement = 0.01
	p := New("x", cfg, fixedMarket(t, seedAt("NIMB", 100)), zerolog.Nop())
	assert.InDelta(t, 0.1, p.MarginRequirement(), 1e-9)

	cfg.MarginRequirement = 2
	p = New("x", cfg, fixedMarket(t, seedAt("NIMB", 100)), zerolog.Nop())
	assert.InDelta(t, 1.0, p.MarginRequirement(), 1e-9)
}

func TestSnapshotRoundTrip(t *testing.T) {
	h := fixedMarket(t, seedAt("NIMB", 100))
	p := newTestPlayer(t, h)
	require.True(t, p.DepositMargin(500))
	require.True(t, p.BuyStock("NIMB", 20, false))
	require.True(t, p.TakeLoan(1000, 0.08, 60))
	p.CloseDay()

	restored := FromSnapshot(p.Snapshot(), DefaultConfig(), h, zerolog.Nop())

	assert.Equal(t, p.Name(), restored.Name())
	assert.Equal(t, p.CurrentDay(), restored.CurrentDay())
	assert.InDelta(t, p.MarginBalance(), restored.MarginBalance(), 1e-9)
	assert.InDelta(t, p.MarginUsed(), restored.MarginUsed(), 1e-9)
	assert.InDelta(t, p.Portfolio().CashBalance(), restored.Portfolio().CashBalance(), 1e-9)
	assert.InDelta(t, p.NetWorth(), restored.NetWorth(), 1e-9)
	require.Len(t, restored.Loans(), 1)
	assert.InDelta(t, p.Loans()[0].TotalDue(), restored.Loans()[0].TotalDue(), 1e-9)

	pos, held := restored.Portfolio().Position("NIMB")
	require.True(t, held)
	assert.Equal(t, 20, pos.Quantity())
}

func TestCurrentDateFollowsDayCounter(t *testing.T) {
	p := newTestPlayer(t, fixedMarket(t, seedAt("NIMB", 100)))
	assert.Equal(t, calendar.Epoch, p.CurrentDate())

	p.OpenDay()
	p.CloseDay()
	assert.Equal(t, calendar.New(2, 3, 2023), p.CurrentDate())
}

package market

// sharesOutstanding is the fixed share count used for the display market cap.
const sharesOutstanding = 1_000_000

// Company bundles identity, sector membership, dividend policy and exactly
// one Stock. Companies are created at market setup (seed roster or a loaded
// save) and live for the whole session unless removed by ticker.
type Company struct {
	name        string
	ticker      string
	description string
	sector      Sector
	volatility  float64 // [0,1]
	dividend    DividendPolicy
	stock       *Stock

	// Display-only financials. Only marketCap is kept in sync with the
	// price; the rest are static flavor.
	marketCap float64
	peRatio   float64
	revenue   float64
	profit    float64
}

// NewCompany creates a company and its stock.
func NewCompany(name, ticker, description string, sector Sector, volatility float64, dividend DividendPolicy, stock *Stock) *Company {
	c := &Company{
		name:        name,
		ticker:      ticker,
		description: description,
		sector:      sector,
		volatility:  clamp01(volatility),
		dividend:    dividend,
		stock:       stock,
	}
	c.refreshMarketCap()
	return c
}

func (c *Company) refreshMarketCap() {
	c.marketCap = c.stock.CurrentPrice() * sharesOutstanding
}

// UpdateStockPrice blends the market movement with the sector trend through
// the stock's influence weights.
func (c *Company) UpdateStockPrice(day int, marketMovement, sectorTrend float64) {
	c.stock.UpdatePrice(day, marketMovement, sectorTrend)
	c.refreshMarketCap()
}

// ApplyPriceMovement applies a fractional price movement directly.
func (c *Company) ApplyPriceMovement(day int, movement float64) {
	c.stock.ApplyMovement(day, movement)
	c.refreshMarketCap()
}

// ProcessDividends advances the dividend schedule. It returns the per-share
// amount paid this day, or 0 if nothing was due. The company never moves
// cash itself; crediting shareholders is the caller's job.
func (c *Company) ProcessDividends(day int) (perShare float64, paid bool) {
	if !c.dividend.ShouldPay(day) {
		return 0, false
	}
	c.dividend.MarkPaid(day)
	return c.dividend.PerShareAmount(), true
}

// Name returns the display name.
func (c *Company) Name() string { return c.name }

// Ticker returns the unique ticker symbol.
func (c *Company) Ticker() string { return c.ticker }

// Description returns the flavor text.
func (c *Company) Description() string { return c.description }

// Sector returns the company's sector.
func (c *Company) Sector() Sector { return c.sector }

// SetSector reassigns the company to another sector.
func (c *Company) SetSector(s Sector) { c.sector = s }

// Volatility returns the company's volatility in [0,1].
func (c *Company) Volatility() float64 { return c.volatility }

// Dividend returns the current dividend policy.
func (c *Company) Dividend() DividendPolicy { return c.dividend }

// SetDividend replaces the dividend policy.
func (c *Company) SetDividend(p DividendPolicy) { c.dividend = p }

// ScheduleDividend sets the next dividend payment day.
func (c *Company) ScheduleDividend(day int) { c.dividend.ScheduleNextPayment(day) }

// Stock returns the company's price series.
func (c *Company) Stock() *Stock { return c.stock }

// MarketCap returns price times the fixed share count.
func (c *Company) MarketCap() float64 { return c.marketCap }

// PERatio returns the display P/E ratio.
func (c *Company) PERatio() float64 { return c.peRatio }

// Revenue returns the display revenue figure.
func (c *Company) Revenue() float64 { return c.revenue }

// Profit returns the display profit figure.
func (c *Company) Profit() float64 { return c.profit }

// SetFinancials sets the static display financials.
func (c *Company) SetFinancials(peRatio, revenue, profit float64) {
	c.peRatio = peRatio
	c.revenue = revenue
	c.profit = profit
}

package market

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/zappabad/paperhands/internal/calendar"
	"github.com/zappabad/paperhands/internal/rng"
)

// Macro rate bands. Every mutation re-clamps into these.
const (
	minInterestRate     = 0.01
	maxInterestRate     = 0.15
	minInflationRate    = 0.0
	maxInflationRate    = 0.2
	minUnemploymentRate = 0.02
	maxUnemploymentRate = 0.15
)

// State is the aggregate market state.
type State struct {
	IndexValue         float64
	DailyChange        float64
	DailyChangePercent float64
	Trend              Trend
	TrendDuration      int // days since the last trend change
	InterestRate       float64
	InflationRate      float64
	UnemploymentRate   float64
}

// DividendPayment reports one company's dividend firing during a day.
type DividendPayment struct {
	Ticker   string
	PerShare float64
}

// Market owns the company roster, the index, the per-sector trend map and
// the macroeconomic state, and advances all of it one day at a time.
type Market struct {
	cfg  Config
	log  zerolog.Logger
	rand rng.Rand

	companies []*Company // insertion order
	byTicker  map[string]*Company

	state        State
	sectorTrends map[Sector]float64
	currentDay   int
	cycleDay     int
}

// New creates a market from the given config and seeds its roster.
func New(cfg Config, r rng.Rand, log zerolog.Logger) *Market {
	if cfg.CycleLength <= 0 {
		cfg.CycleLength = DefaultConfig().CycleLength
	}
	if cfg.Volatility <= 0 {
		cfg.Volatility = DefaultConfig().Volatility
	}
	if cfg.InitialIndex <= 0 {
		cfg.InitialIndex = DefaultConfig().InitialIndex
	}

	m := &Market{
		cfg:      cfg,
		log:      log,
		rand:     r,
		byTicker: make(map[string]*Company),
		state: State{
			IndexValue:       cfg.InitialIndex,
			Trend:            TrendSideways,
			InterestRate:     cfg.InterestRate,
			InflationRate:    cfg.InflationRate,
			UnemploymentRate: cfg.UnemploymentRate,
		},
		sectorTrends: make(map[Sector]float64),
	}
	m.clampRates()
	for _, s := range Sectors() {
		m.sectorTrends[s] = 0
	}
	for _, seed := range cfg.Companies {
		stock := NewStock(seed.Sector, seed.InitialPrice, seed.MarketInfluence, seed.SectorInfluence)
		c := NewCompany(seed.Name, seed.Ticker, seed.Description, seed.Sector, seed.Volatility, NewDividendPolicy(seed.DividendRate, seed.DividendFreq), stock)
		if seed.FirstDividend > 0 {
			c.ScheduleDividend(seed.FirstDividend)
		}
		m.AddCompany(c)
	}
	return m
}

// AddCompany registers a company. A company with a duplicate ticker is
// rejected and the roster is left unchanged.
func (m *Market) AddCompany(c *Company) bool {
	if _, exists := m.byTicker[c.Ticker()]; exists {
		m.log.Warn().Str("ticker", c.Ticker()).Msg("duplicate ticker rejected")
		return false
	}
	m.companies = append(m.companies, c)
	m.byTicker[c.Ticker()] = c
	return true
}

// RemoveCompany drops a company by ticker. Returns false if unknown.
func (m *Market) RemoveCompany(ticker string) bool {
	if _, exists := m.byTicker[ticker]; !exists {
		return false
	}
	delete(m.byTicker, ticker)
	for i, c := range m.companies {
		if c.Ticker() == ticker {
			m.companies = append(m.companies[:i], m.companies[i+1:]...)
			break
		}
	}
	return true
}

// CompanyByTicker looks a company up. Unknown tickers are an ordinary miss,
// not an error.
func (m *Market) CompanyByTicker(ticker string) (*Company, bool) {
	c, ok := m.byTicker[ticker]
	return c, ok
}

// Companies returns the roster in insertion order.
func (m *Market) Companies() []*Company {
	out := make([]*Company, len(m.companies))
	copy(out, m.companies)
	return out
}

// CompaniesInSector returns the roster subset belonging to a sector.
func (m *Market) CompaniesInSector(s Sector) []*Company {
	var out []*Company
	for _, c := range m.companies {
		if c.Sector() == s {
			out = append(out, c)
		}
	}
	return out
}

// SimulateDay advances the whole market by one trading day. The step order
// is part of the contract: closing prices are recorded before the day
// counter moves, and company prices update only after the index, macro
// state and sector trends have settled.
func (m *Market) SimulateDay() {
	for _, c := range m.companies {
		c.Stock().CloseTradingDay()
	}

	m.currentDay++
	m.cycleDay = (m.cycleDay + 1) % m.cfg.CycleLength

	m.updateTrend()
	m.updateMacroFactors()

	movement := m.generateMarketMovement()
	before := m.state.IndexValue
	m.state.IndexValue = before * (1 + movement)
	m.state.DailyChange = m.state.IndexValue - before
	m.state.DailyChangePercent = movement * 100

	for _, s := range Sectors() {
		m.sectorTrends[s] = m.generateSectorMovement(s)
	}

	for _, c := range m.companies {
		c.Stock().OpenTradingDay()
		c.UpdateStockPrice(m.currentDay, movement, m.sectorTrends[c.Sector()])
	}

	m.log.Debug().
		Int("day", m.currentDay).
		Float64("index", m.state.IndexValue).
		Str("trend", m.state.Trend.String()).
		Float64("movement", movement).
		Msg("market day simulated")
}

// updateTrend ages the current trend and probabilistically breaks it. Long
// trends become increasingly likely to break, capped at 30% per day.
func (m *Market) updateTrend() {
	m.state.TrendDuration++
	switchProb := math.Min(0.05+float64(m.state.TrendDuration)/100, 0.3)
	if !m.rand.Chance(switchProb) {
		return
	}
	draw := m.rand.FloatBetween(0, 1)
	switch {
	case draw < 0.35:
		m.state.Trend = TrendBullish
	case draw < 0.7:
		m.state.Trend = TrendBearish
	case draw < 0.85:
		m.state.Trend = TrendSideways
	default:
		m.state.Trend = TrendVolatile
	}
	m.state.TrendDuration = 0
}

// updateMacroFactors perturbs each macro rate and then applies the
// cross-couplings. The couplings are one-directional nudges with no
// corresponding downward pressure; the clamped bands keep them bounded.
func (m *Market) updateMacroFactors() {
	m.state.InterestRate += m.rand.Normal(0, 0.001)
	m.state.InflationRate += m.rand.Normal(0, 0.001)
	m.state.UnemploymentRate += m.rand.Normal(0, 0.001)
	m.clampRates()

	if m.state.InflationRate > 0.05 && m.state.InterestRate < 0.10 {
		m.state.InterestRate += m.rand.FloatBetween(0.001, 0.003)
	}
	if m.state.InterestRate > 0.08 && m.state.UnemploymentRate < 0.08 {
		m.state.UnemploymentRate += m.rand.FloatBetween(0.001, 0.002)
	}
	if m.state.UnemploymentRate > 0.08 && m.state.InflationRate > 0.02 {
		m.state.InflationRate -= m.rand.FloatBetween(0.001, 0.002)
	}
	m.clampRates()
}

func (m *Market) clampRates() {
	m.state.InterestRate = clampBand(m.state.InterestRate, minInterestRate, maxInterestRate)
	m.state.InflationRate = clampBand(m.state.InflationRate, minInflationRate, maxInflationRate)
	m.state.UnemploymentRate = clampBand(m.state.UnemploymentRate, minUnemploymentRate, maxUnemploymentRate)
}

// generateMarketMovement composes the day's fractional index movement from a
// trend-dependent Gaussian, a sinusoidal cycle term and macro penalties.
func (m *Market) generateMarketMovement() float64 {
	mean, sigma := trendParams(m.state.Trend, m.cfg.Volatility)
	movement := m.rand.Normal(mean, sigma)

	movement += math.Sin(2*math.Pi*float64(m.cycleDay)/float64(m.cfg.CycleLength)) * 0.001

	if m.state.InflationRate > 0.05 {
		movement -= (m.state.InflationRate - 0.05) * 0.1
	}
	if m.state.UnemploymentRate > 0.06 {
		movement -= (m.state.UnemploymentRate - 0.06) * 0.1
	}
	movement -= (m.state.InterestRate - 0.05) * 0.1

	return movement
}

// trendParams returns the mean and sigma of the Gaussian index movement for
// a trend regime.
func trendParams(t Trend, baseSigma float64) (mean, sigma float64) {
	switch t {
	case TrendBullish:
		return 0.002, baseSigma
	case TrendBearish:
		return -0.002, baseSigma
	case TrendSideways:
		return 0, baseSigma / 2
	case TrendVolatile:
		return 0, baseSigma * 2
	default:
		return 0, baseSigma
	}
}

// generateSectorMovement produces a sector's new trend value: 60% of the
// index day change plus 40% of a sector-specific term. A bit-identical
// result is jittered so no sector ever freezes day over day.
func (m *Market) generateSectorMovement(s Sector) float64 {
	marketPart := m.state.DailyChangePercent / 100

	var sectorPart float64
	switch s {
	case SectorTechnology:
		sectorPart = 1.5*m.rand.Normal(0, 0.005) - 0.2*(m.state.InterestRate-0.05)
	case SectorEnergy:
		sectorPart = math.Sin(2*math.Pi*float64(m.cycleDay)/float64(m.cfg.CycleLength)) * 0.002
	case SectorManufacturing:
		sectorPart = math.Sin(2*math.Pi*float64(m.cycleDay)/float64(m.cfg.CycleLength))*0.001 -
			0.1*(m.state.InflationRate-0.02)
	case SectorFinance:
		sectorPart = 0.1*(m.state.InterestRate-0.05) - 0.2*(m.state.UnemploymentRate-0.05)
	case SectorConsumer:
		sectorPart = -0.3*(m.state.UnemploymentRate-0.05) - 0.2*(m.state.InflationRate-0.02)
	}

	value := 0.6*marketPart + 0.4*sectorPart
	if value == m.sectorTrends[s] {
		value += m.rand.FloatBetween(-0.01, 0.01)
	}
	return value
}

// ProcessCompanyDividends advances every company's dividend schedule and
// reports which paid. The market never moves cash; crediting shareholders
// per held share is the consuming layer's job.
func (m *Market) ProcessCompanyDividends() []DividendPayment {
	var payments []DividendPayment
	for _, c := range m.companies {
		if perShare, paid := c.ProcessDividends(m.currentDay); paid {
			payments = append(payments, DividendPayment{Ticker: c.Ticker(), PerShare: perShare})
			m.log.Debug().Str("ticker", c.Ticker()).Float64("per_share", perShare).Msg("dividend paid")
		}
	}
	return payments
}

// TriggerEconomicEvent applies an immediate shock: the index moves by
// impact, sector trends absorb it (all sectors uniformly, or one random
// sector at double weight), and every company re-prices against its updated
// sector trend.
func (m *Market) TriggerEconomicEvent(impact float64, allSectors bool) {
	m.state.IndexValue *= 1 + impact

	if allSectors {
		for s := range m.sectorTrends {
			m.sectorTrends[s] += impact
		}
	} else {
		s := rng.Pick(m.rand, Sectors())
		m.sectorTrends[s] += impact * 2
	}

	for _, c := range m.companies {
		c.UpdateStockPrice(m.currentDay, impact, m.sectorTrends[c.Sector()])
	}

	m.log.Info().Float64("impact", impact).Bool("all_sectors", allSectors).Msg("economic event triggered")
}

// State returns a copy of the aggregate market state.
func (m *Market) State() State { return m.state }

// Index returns the current index value.
func (m *Market) Index() float64 { return m.state.IndexValue }

// CurrentTrend returns the prevailing trend regime.
func (m *Market) CurrentTrend() Trend { return m.state.Trend }

// CurrentDay returns the absolute day counter.
func (m *Market) CurrentDay() int { return m.currentDay }

// CurrentDate returns the day counter as a calendar date.
func (m *Market) CurrentDate() calendar.Date { return calendar.FromDayNumber(m.currentDay) }

// CycleDay returns the position inside the economic cycle.
func (m *Market) CycleDay() int { return m.cycleDay }

// SectorTrend returns the trend value of one sector.
func (m *Market) SectorTrend(s Sector) float64 { return m.sectorTrends[s] }

// SectorTrends returns a copy of the whole sector trend map.
func (m *Market) SectorTrends() map[Sector]float64 {
	out := make(map[Sector]float64, len(m.sectorTrends))
	for s, v := range m.sectorTrends {
		out[s] = v
	}
	return out
}

func clampBand(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

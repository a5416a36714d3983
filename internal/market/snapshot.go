package market

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zappabad/paperhands/internal/ring"
	"github.com/zappabad/paperhands/internal/rng"
)

// StockSnapshot is the serialized form of a Stock.
type StockSnapshot struct {
	Sector           Sector       `json:"sector"`
	CurrentPrice     float64      `json:"current_price"`
	PreviousClose    float64      `json:"previous_close"`
	OpenPrice        float64      `json:"open_price"`
	HighestPrice     float64      `json:"highest_price"`
	LowestPrice      float64      `json:"lowest_price"`
	DayChangeAmount  float64      `json:"day_change_amount"`
	DayChangePercent float64      `json:"day_change_percent"`
	MarketInfluence  float64      `json:"market_influence"`
	SectorInfluence  float64      `json:"sector_influence"`
	History          []PricePoint `json:"history"`
}

// DividendSnapshot is the serialized form of a DividendPolicy.
type DividendSnapshot struct {
	AnnualRate     float64 `json:"annual_rate"`
	Frequency      int     `json:"frequency"`
	NextPaymentDay int     `json:"next_payment_day"`
}

// CompanySnapshot is the serialized form of a Company.
type CompanySnapshot struct {
	Name        string           `json:"name"`
	Ticker      string           `json:"ticker"`
	Description string           `json:"description"`
	Sector      Sector           `json:"sector"`
	Volatility  float64          `json:"volatility"`
	Dividend    DividendSnapshot `json:"dividend"`
	Stock       StockSnapshot    `json:"stock"`
	PERatio     float64          `json:"pe_ratio"`
	Revenue     float64          `json:"revenue"`
	Profit      float64          `json:"profit"`
}

// Snapshot is the serialized form of the whole Market.
type Snapshot struct {
	CurrentDay         int                `json:"current_day"`
	CycleDay           int                `json:"cycle_day"`
	CycleLength        int                `json:"cycle_length"`
	Volatility         float64            `json:"volatility"`
	IndexValue         float64            `json:"index_value"`
	DailyChange        float64            `json:"daily_change"`
	DailyChangePercent float64            `json:"daily_change_percent"`
	Trend              Trend              `json:"trend"`
	TrendDuration      int                `json:"trend_duration"`
	InterestRate       float64            `json:"interest_rate"`
	InflationRate      float64            `json:"inflation_rate"`
	UnemploymentRate   float64            `json:"unemployment_rate"`
	SectorTrends       map[string]float64 `json:"sector_trends"`
	Companies          []CompanySnapshot  `json:"companies"`
}

// Snapshot serializes the stock.
func (s *Stock) Snapshot() StockSnapshot {
	return StockSnapshot{
		Sector:           s.sector,
		CurrentPrice:     s.currentPrice,
		PreviousClose:    s.previousClose,
		OpenPrice:        s.openPrice,
		HighestPrice:     s.highestPrice,
		LowestPrice:      s.lowestPrice,
		DayChangeAmount:  s.dayChangeAmount,
		DayChangePercent: s.dayChangePercent,
		MarketInfluence:  s.marketInfluence,
		SectorInfluence:  s.sectorInfluence,
		History:          s.history.Values(),
	}
}

// StockFromSnapshot rebuilds a stock from its serialized form.
func StockFromSnapshot(snap StockSnapshot) *Stock {
	st := &Stock{
		sector:           snap.Sector,
		currentPrice:     snap.CurrentPrice,
		previousClose:    snap.PreviousClose,
		openPrice:        snap.OpenPrice,
		highestPrice:     snap.HighestPrice,
		lowestPrice:      snap.LowestPrice,
		dayChangeAmount:  snap.DayChangeAmount,
		dayChangePercent: snap.DayChangePercent,
		marketInfluence:  clamp01(snap.MarketInfluence),
		sectorInfluence:  clamp01(snap.SectorInfluence),
		history:          ring.New[PricePoint](priceHistoryCap),
	}
	if st.currentPrice < minPrice {
		st.currentPrice = minPrice
	}
	for _, p := range snap.History {
		st.history.Push(p)
	}
	return st
}

// Snapshot serializes the company.
func (c *Company) Snapshot() CompanySnapshot {
	return CompanySnapshot{
		Name:        c.name,
		Ticker:      c.ticker,
		Description: c.description,
		Sector:      c.sector,
		Volatility:  c.volatility,
		Dividend: DividendSnapshot{
			AnnualRate:     c.dividend.annualRate,
			Frequency:      c.dividend.frequency,
			NextPaymentDay: c.dividend.nextPaymentDay,
		},
		Stock:   c.stock.Snapshot(),
		PERatio: c.peRatio,
		Revenue: c.revenue,
		Profit:  c.profit,
	}
}

// CompanyFromSnapshot rebuilds a company from its serialized form.
func CompanyFromSnapshot(snap CompanySnapshot) *Company {
	policy := NewDividendPolicy(snap.Dividend.AnnualRate, snap.Dividend.Frequency)
	policy.nextPaymentDay = snap.Dividend.NextPaymentDay
	c := NewCompany(snap.Name, snap.Ticker, snap.Description, snap.Sector, snap.Volatility, policy, StockFromSnapshot(snap.Stock))
	c.SetFinancials(snap.PERatio, snap.Revenue, snap.Profit)
	return c
}

// Snapshot serializes the market.
func (m *Market) Snapshot() Snapshot {
	snap := Snapshot{
		CurrentDay:         m.currentDay,
		CycleDay:           m.cycleDay,
		CycleLength:        m.cfg.CycleLength,
		Volatility:         m.cfg.Volatility,
		IndexValue:         m.state.IndexValue,
		DailyChange:        m.state.DailyChange,
		DailyChangePercent: m.state.DailyChangePercent,
		Trend:              m.state.Trend,
		TrendDuration:      m.state.TrendDuration,
		InterestRate:       m.state.InterestRate,
		InflationRate:      m.state.InflationRate,
		UnemploymentRate:   m.state.UnemploymentRate,
		SectorTrends:       make(map[string]float64, len(m.sectorTrends)),
	}
	for s, v := range m.sectorTrends {
		snap.SectorTrends[s.String()] = v
	}
	for _, c := range m.companies {
		snap.Companies = append(snap.Companies, c.Snapshot())
	}
	return snap
}

// FromSnapshot rebuilds a market from its serialized form.
func FromSnapshot(snap Snapshot, r rng.Rand, log zerolog.Logger) (*Market, error) {
	cfg := DefaultConfig()
	cfg.Companies = nil
	if snap.CycleLength > 0 {
		cfg.CycleLength = snap.CycleLength
	}
	if snap.Volatility > 0 {
		cfg.Volatility = snap.Volatility
	}

	m := New(cfg, r, log)
	m.currentDay = snap.CurrentDay
	m.cycleDay = snap.CycleDay % m.cfg.CycleLength
	m.state = State{
		IndexValue:         snap.IndexValue,
		DailyChange:        snap.DailyChange,
		DailyChangePercent: snap.DailyChangePercent,
		Trend:              snap.Trend,
		TrendDuration:      snap.TrendDuration,
		InterestRate:       snap.InterestRate,
		InflationRate:      snap.InflationRate,
		UnemploymentRate:   snap.UnemploymentRate,
	}
	m.clampRates()
	for name, v := range snap.SectorTrends {
		m.sectorTrends[ParseSector(name)] = v
	}
	for _, cs := range snap.Companies {
		if !m.AddCompany(CompanyFromSnapshot(cs)) {
			return nil, fmt.Errorf("market: duplicate ticker %q in snapshot", cs.Ticker)
		}
	}
	return m, nil
}

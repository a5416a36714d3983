package market

// SeedCompany describes one company of the starting roster.
type SeedCompany struct {
	Name            string  `toml:"name"`
	Ticker          string  `toml:"ticker"`
	Description     string  `toml:"description"`
	Sector          Sector  `toml:"sector"`
	Volatility      float64 `toml:"volatility"`
	InitialPrice    float64 `toml:"initial_price"`
	MarketInfluence float64 `toml:"market_influence"`
	SectorInfluence float64 `toml:"sector_influence"`
	DividendRate    float64 `toml:"dividend_rate"`
	DividendFreq    int     `toml:"dividend_freq"`
	FirstDividend   int     `toml:"first_dividend_day"`
}

// Config holds the market's starting conditions.
type Config struct {
	// InitialIndex is the index baseline at day zero.
	InitialIndex float64 `toml:"initial_index"`
	// Volatility is the base sigma of the daily index movement.
	Volatility float64 `toml:"volatility"`
	// CycleLength is the economic cycle period in days.
	CycleLength int `toml:"cycle_length"`
	// InterestRate, InflationRate and UnemploymentRate seed the macro state.
	InterestRate     float64 `toml:"interest_rate"`
	InflationRate    float64 `toml:"inflation_rate"`
	UnemploymentRate float64 `toml:"unemployment_rate"`
	// Companies is the starting roster.
	Companies []SeedCompany `toml:"companies"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		InitialIndex:     1000.0,
		Volatility:       0.01,
		CycleLength:      365,
		InterestRate:     0.05,
		InflationRate:    0.03,
		UnemploymentRate: 0.05,
		Companies:        defaultCompanies(),
	}
}

func defaultCompanies() []SeedCompany {
	return []SeedCompany{
		{Name: "Nimbus Systems", Ticker: "NIMB", Description: "Cloud infrastructure and developer tooling", Sector: SectorTechnology, Volatility: 0.7, InitialPrice: 142.50, MarketInfluence: 0.6, SectorInfluence: 0.4, DividendRate: 0, DividendFreq: 0},
		{Name: "Quanta Microdevices", Ticker: "QMD", Description: "Semiconductors and embedded controllers", Sector: SectorTechnology, Volatility: 0.8, InitialPrice: 87.20, MarketInfluence: 0.5, SectorInfluence: 0.5, DividendRate: 0.80, DividendFreq: 2, FirstDividend: 90},
		{Name: "Borealis Petroleum", Ticker: "BRP", Description: "Oil and gas exploration", Sector: SectorEnergy, Volatility: 0.6, InitialPrice: 64.10, MarketInfluence: 0.7, SectorInfluence: 0.3, DividendRate: 3.20, DividendFreq: 4, FirstDividend: 30},
		{Name: "Heliowatt Renewables", Ticker: "HWR", Description: "Solar and wind generation", Sector: SectorEnergy, Volatility: 0.5, InitialPrice: 38.75, MarketInfluence: 0.6, SectorInfluence: 0.4, DividendRate: 1.10, DividendFreq: 4, FirstDividend: 45},
		{Name: "Meridian Trust", Ticker: "MERT", Description: "Retail and commercial banking", Sector: SectorFinance, Volatility: 0.4, InitialPrice: 112.00, MarketInfluence: 0.8, SectorInfluence: 0.2, DividendRate: 4.40, DividendFreq: 4, FirstDividend: 60},
		{Name: "Argent Insurance Group", Ticker: "ARG", Description: "Property and casualty insurance", Sector: SectorFinance, Volatility: 0.3, InitialPrice: 95.60, MarketInfluence: 0.7, SectorInfluence: 0.3, DividendRate: 3.00, DividendFreq: 2, FirstDividend: 120},
		{Name: "Hearthline Retail", Ticker: "HRTH", Description: "Discount retail chain", Sector: SectorConsumer, Volatility: 0.4, InitialPrice: 54.30, MarketInfluence: 0.6, SectorInfluence: 0.4, DividendRate: 2.00, DividendFreq: 4, FirstDividend: 30},
		{Name: "Vela Foods", Ticker: "VELA", Description: "Packaged foods and beverages", Sector: SectorConsumer, Volatility: 0.3, InitialPrice: 71.90, MarketInfluence: 0.5, SectorInfluence: 0.5, DividendRate: 2.60, DividendFreq: 4, FirstDividend: 75},
		{Name: "Ironcrest Works", Ticker: "IRCW", Description: "Heavy machinery and industrial equipment", Sector: SectorManufacturing, Volatility: 0.5, InitialPrice: 128.40, MarketInfluence: 0.7, SectorInfluence: 0.3, DividendRate: 3.80, DividendFreq: 2, FirstDividend: 100},
		{Name: "Strata Composites", Ticker: "STRC", Description: "Advanced materials manufacturing", Sector: SectorManufacturing, Volatility: 0.6, InitialPrice: 45.85, MarketInfluence: 0.6, SectorInfluence: 0.4, DividendRate: 0, DividendFreq: 0},
	}
}

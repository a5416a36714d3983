package pricing

import "github.com/zappabad/paperhands/internal/market"

// SectorProfile weights the movement components for one sector.
type SectorProfile struct {
	BaseVolatility    float64 `json:"base_volatility" toml:"base_volatility"`
	MarketSensitivity float64 `json:"market_sensitivity" toml:"market_sensitivity"`
	NewsSensitivity   float64 `json:"news_sensitivity" toml:"news_sensitivity"`
	CycleSensitivity  float64 `json:"cycle_sensitivity" toml:"cycle_sensitivity"`
}

// CycleParams describes the service's own economic super-cycle, independent
// of the market's cycle counter.
type CycleParams struct {
	Length     int     `json:"length" toml:"length"`
	Position   int     `json:"position" toml:"position"`
	Amplitude  float64 `json:"amplitude" toml:"amplitude"`
	PhaseShift float64 `json:"phase_shift" toml:"phase_shift"`
}

// Config holds the tunables of the price movement generator.
type Config struct {
	// VolatilityFactor scales the base sigma of trend draws.
	VolatilityFactor float64 `toml:"volatility_factor"`
	// TrendStrength scales how hard the market trend pulls prices.
	TrendStrength float64 `toml:"trend_strength"`
	// MomentumFactor blends recent movement history into new movements.
	MomentumFactor float64 `toml:"momentum_factor"`
	// RandomnessFactor scales the idiosyncratic noise component.
	RandomnessFactor float64 `toml:"randomness_factor"`
	// Cycle configures the internal economic super-cycle.
	Cycle CycleParams `toml:"cycle"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		VolatilityFactor: 0.01,
		TrendStrength:    1.0,
		MomentumFactor:   0.3,
		RandomnessFactor: 1.0,
		Cycle: CycleParams{
			Length:    250,
			Amplitude: 0.002,
		},
	}
}

func defaultProfiles() map[market.Sector]SectorProfile {
	return map[market.Sector]SectorProfile{
		market.SectorTechnology:    {BaseVolatility: 0.020, MarketSensitivity: 1.2, NewsSensitivity: 1.4, CycleSensitivity: 0.8},
		market.SectorEnergy:        {BaseVolatility: 0.015, MarketSensitivity: 0.9, NewsSensitivity: 1.1, CycleSensitivity: 1.3},
		market.SectorFinance:       {BaseVolatility: 0.012, MarketSensitivity: 1.1, NewsSensitivity: 1.0, CycleSensitivity: 1.0},
		market.SectorConsumer:      {BaseVolatility: 0.010, MarketSensitivity: 0.8, NewsSensitivity: 0.9, CycleSensitivity: 0.7},
		market.SectorManufacturing: {BaseVolatility: 0.013, MarketSensitivity: 1.0, NewsSensitivity: 0.9, CycleSensitivity: 1.2},
		market.SectorUnknown:       {BaseVolatility: 0.012, MarketSensitivity: 1.0, NewsSensitivity: 1.0, CycleSensitivity: 1.0},
	}
}

package pricing

import (
	"github.com/rs/zerolog"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/ring"
	"github.com/zappabad/paperhands/internal/rng"
)

// Snapshot is the serialized form of the pricing service.
type Snapshot struct {
	VolatilityFactor float64              `json:"volatility_factor"`
	TrendStrength    float64              `json:"trend_strength"`
	MomentumFactor   float64              `json:"momentum_factor"`
	RandomnessFactor float64              `json:"randomness_factor"`
	Cycle            CycleParams          `json:"cycle"`
	Momentum         map[string][]float64 `json:"momentum"`
}

// Snapshot serializes the service state.
func (s *Service) Snapshot() Snapshot {
	snap := Snapshot{
		VolatilityFactor: s.cfg.VolatilityFactor,
		TrendStrength:    s.cfg.TrendStrength,
		MomentumFactor:   s.cfg.MomentumFactor,
		RandomnessFactor: s.cfg.RandomnessFactor,
		Cycle:            s.cycle,
		Momentum:         make(map[string][]float64, len(s.momentum)),
	}
	for ticker, hist := range s.momentum {
		snap.Momentum[ticker] = hist.Values()
	}
	return snap
}

// FromSnapshot rebuilds a pricing service from its serialized form, bound to
// the given market handle.
func FromSnapshot(snap Snapshot, h *market.Handle, r rng.Rand, log zerolog.Logger) *Service {
	cfg := Config{
		VolatilityFactor: snap.VolatilityFactor,
		TrendStrength:    snap.TrendStrength,
		MomentumFactor:   snap.MomentumFactor,
		RandomnessFactor: snap.RandomnessFactor,
		Cycle:            snap.Cycle,
	}
	s := New(cfg, h, r, log)
	for ticker, values := range snap.Momentum {
		hist := ring.New[float64](momentumHistoryCap)
		for _, v := range values {
			hist.Push(v)
		}
		s.momentum[ticker] = hist
	}
	return s
}

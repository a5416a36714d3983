// Package pricing implements a stochastic per-company price movement
// generator. It layers sector volatility profiles, an economic super-cycle
// and per-ticker momentum on top of the market's own movement model.
package pricing

import (
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/ring"
	"github.com/zappabad/paperhands/internal/rng"
)

const (
	// maxDailyMove hard-clamps any generated movement.
	maxDailyMove = 0.10
	// bullishFloor is the minimum movement in a bullish regime.
	bullishFloor = 0.001
	// momentumWindow is how many recent movements feed the momentum blend.
	momentumWindow = 5
	// momentumHistoryCap bounds the per-ticker movement history.
	momentumHistoryCap = 100
)

// Service generates price movements with memory. Movement generation is a
// recorded side effect: every call appends to the ticker's momentum history.
type Service struct {
	cfg      Config
	log      zerolog.Logger
	rand     rng.Rand
	market   *market.Handle
	profiles map[market.Sector]SectorProfile
	cycle    CycleParams
	momentum map[string]*ring.Buffer[float64]
}

// New creates a pricing service bound to the given market handle.
func New(cfg Config, h *market.Handle, r rng.Rand, log zerolog.Logger) *Service {
	if cfg.Cycle.Length <= 0 {
		cfg.Cycle.Length = DefaultConfig().Cycle.Length
	}
	if cfg.VolatilityFactor <= 0 {
		cfg.VolatilityFactor = DefaultConfig().VolatilityFactor
	}
	return &Service{
		cfg:      cfg,
		log:      log,
		rand:     r,
		market:   h,
		profiles: defaultProfiles(),
		cycle:    cfg.Cycle,
		momentum: make(map[string]*ring.Buffer[float64]),
	}
}

// GeneratePriceMovement composes the four movement components for a company
// under the given trend, blends in momentum, and records the result in the
// ticker's history.
func (s *Service) GeneratePriceMovement(c *market.Company, trend market.Trend) float64 {
	profile := s.profile(c.Sector())

	movement := s.trendComponent(trend, profile)
	movement += s.cyclicalComponent(profile)
	movement += s.randomComponent(profile)
	movement += s.sectorComponent(c.Sector(), trend)

	movement = s.blendMomentum(c.Ticker(), movement)

	if trend == market.TrendBullish && movement < bullishFloor {
		movement = bullishFloor
	}
	if movement > maxDailyMove {
		movement = maxDailyMove
	} else if movement < -maxDailyMove {
		movement = -maxDailyMove
	}

	s.recordMovement(c.Ticker(), movement)
	return movement
}

func (s *Service) profile(sec market.Sector) SectorProfile {
	if p, ok := s.profiles[sec]; ok {
		return p
	}
	return s.profiles[market.SectorUnknown]
}

func (s *Service) trendComponent(trend market.Trend, p SectorProfile) float64 {
	var mean, sigma float64
	switch trend {
	case market.TrendBullish:
		mean, sigma = 0.002, s.cfg.VolatilityFactor
	case market.TrendBearish:
		mean, sigma = -0.002, s.cfg.VolatilityFactor
	case market.TrendSideways:
		mean, sigma = 0, s.cfg.VolatilityFactor/2
	case market.TrendVolatile:
		mean, sigma = 0, s.cfg.VolatilityFactor*2
	}
	return s.rand.Normal(mean, sigma) * s.cfg.TrendStrength * p.MarketSensitivity
}

func (s *Service) cyclicalComponent(p SectorProfile) float64 {
	phase := 2*math.Pi*float64(s.cycle.Position)/float64(s.cycle.Length) + s.cycle.PhaseShift
	return math.Sin(phase) * s.cycle.Amplitude * p.CycleSensitivity
}

func (s *Service) randomComponent(p SectorProfile) float64 {
	return s.rand.Normal(0, p.BaseVolatility) * s.cfg.RandomnessFactor
}

// sectorComponent reads the market's sector trend map. It amplifies the
// trend when its sign agrees with the regime direction, and Technology gets
// an extra idiosyncratic term.
func (s *Service) sectorComponent(sec market.Sector, trend market.Trend) float64 {
	m, ok := s.market.Resolve()
	if !ok {
		return 0
	}
	value := m.SectorTrend(sec)

	agrees := (trend == market.TrendBullish && value > 0) ||
		(trend == market.TrendBearish && value < 0)
	if agrees {
		value *= 1.2
	}
	if sec == market.SectorTechnology {
		value += s.rand.Normal(0.002, 0.01)
	}
	return value * 0.5
}

// blendMomentum mixes the raw movement with the mean of the last few
// recorded movements for this ticker.
func (s *Service) blendMomentum(ticker string, raw float64) float64 {
	hist, ok := s.momentum[ticker]
	if !ok || hist.Len() == 0 {
		return raw
	}
	recent := stat.Mean(hist.Last(momentumWindow), nil)
	return raw*(1-s.cfg.MomentumFactor) + recent*s.cfg.MomentumFactor
}

func (s *Service) recordMovement(ticker string, movement float64) {
	hist, ok := s.momentum[ticker]
	if !ok {
		hist = ring.New[float64](momentumHistoryCap)
		s.momentum[ticker] = hist
	}
	hist.Push(movement)
}

// UpdatePrices runs one full pricing day: every company gets a generated
// movement applied multiplicatively, then the internal cycle advances one
// day. Inert when the market handle is unbound.
func (s *Service) UpdatePrices() {
	m, ok := s.market.Resolve()
	if !ok {
		s.log.Warn().Msg("pricing service has no market; skipping update")
		return
	}
	trend := m.CurrentTrend()
	for _, c := range m.Companies() {
		movement := s.GeneratePriceMovement(c, trend)
		c.ApplyPriceMovement(m.CurrentDay(), movement)
	}
	s.AdvanceEconomicCycle(1)
}

// AdvanceEconomicCycle moves the internal cycle position forward.
func (s *Service) AdvanceEconomicCycle(days int) {
	s.cycle.Position = (s.cycle.Position + days) % s.cycle.Length
	if s.cycle.Position < 0 {
		s.cycle.Position += s.cycle.Length
	}
}

// SimulateMarketShock routes a market-wide shock through the market's
// economic event mechanism.
func (s *Service) SimulateMarketShock(impact float64) {
	m, ok := s.market.Resolve()
	if !ok {
		return
	}
	m.TriggerEconomicEvent(impact, true)
}

// SimulateSectorShock bumps only the targeted sector's companies. A positive
// Technology shock is applied three times over to exaggerate tech rallies.
func (s *Service) SimulateSectorShock(sec market.Sector, impact float64) {
	m, ok := s.market.Resolve()
	if !ok {
		return
	}
	repeats := 1
	if sec == market.SectorTechnology && impact > 0 {
		repeats = 3
	}
	scaled := impact * s.profile(sec).NewsSensitivity
	for i := 0; i < repeats; i++ {
		for _, c := range m.CompaniesInSector(sec) {
			c.ApplyPriceMovement(m.CurrentDay(), scaled)
		}
	}
	s.log.Info().Str("sector", sec.String()).Float64("impact", impact).Int("repeats", repeats).Msg("sector shock applied")
}

// MomentumHistory returns the recorded movements for a ticker, oldest first.
func (s *Service) MomentumHistory(ticker string) []float64 {
	if hist, ok := s.momentum[ticker]; ok {
		return hist.Values()
	}
	return nil
}

// CyclePosition returns the current position in the internal cycle.
func (s *Service) CyclePosition() int { return s.cycle.Position }

package news

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/ring"
	"github.com/zappabad/paperhands/internal/rng"
)

// Per-day category appearance probabilities.
const (
	globalChance    = 0.7
	sectorChance    = 0.5
	corporateChance = 0.7
)

// Service generates daily news and dispatches their market effects.
type Service struct {
	cfg        Config
	log        zerolog.Logger
	rand       rng.Rand
	market     *market.Handle
	templates  map[Category][]Template
	history    *ring.Buffer[Item]
	currentDay int
}

// New creates a news service bound to the given market handle. Template
// loading failures degrade to the built-in pack.
func New(cfg Config, h *market.Handle, r rng.Rand, log zerolog.Logger) *Service {
	if cfg.ItemsPerDay <= 0 {
		cfg.ItemsPerDay = DefaultConfig().ItemsPerDay
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultConfig().HistorySize
	}

	templates := defaultTemplates()
	if cfg.TemplatePath != "" {
		loaded, err := LoadTemplates(cfg.TemplatePath)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.TemplatePath).Msg("template pack unavailable, using built-ins")
		}
		templates = loaded
	}

	return &Service{
		cfg:       cfg,
		log:       log,
		rand:      r,
		market:    h,
		templates: templates,
		history:   ring.New[Item](cfg.HistorySize),
	}
}

// SetDay moves the service's day stamp; generated items carry it as their
// publish day.
func (s *Service) SetDay(day int) {
	s.currentDay = day
}

// GenerateDailyNews produces up to count items for the current day. The
// headline categories appear probabilistically; remaining slots are filled
// with random categories. Every item is appended to the bounded history.
func (s *Service) GenerateDailyNews(count int) []Item {
	if count <= 0 {
		count = s.cfg.ItemsPerDay
	}

	var items []Item
	if s.rand.Chance(globalChance) {
		if item, ok := s.generateItem(CategoryGlobal); ok {
			items = append(items, item)
		}
	}
	if len(items) < count && s.rand.Chance(sectorChance) {
		if item, ok := s.generateItem(CategorySector); ok {
			items = append(items, item)
		}
	}
	if len(items) < count && s.rand.Chance(corporateChance) {
		if item, ok := s.generateItem(CategoryCorporate); ok {
			items = append(items, item)
		}
	}
	categories := []Category{CategoryGlobal, CategorySector, CategoryCorporate}
	for len(items) < count {
		if item, ok := s.generateItem(rng.Pick(s.rand, categories)); ok {
			items = append(items, item)
		} else {
			break
		}
	}

	for _, item := range items {
		s.history.Push(item)
	}
	return items
}

func (s *Service) generateItem(cat Category) (Item, bool) {
	pool := s.templates[cat]
	if len(pool) == 0 {
		return Item{}, false
	}
	tmpl := s.selectTemplate(pool)

	item := Item{
		ID:         uuid.New(),
		Category:   cat,
		PublishDay: s.currentDay,
		Impact:     s.sampleImpact(tmpl),
	}

	var companyName string
	switch cat {
	case CategorySector:
		item.TargetSector = tmpl.Sector
		if item.TargetSector == market.SectorUnknown {
			item.TargetSector = rng.Pick(s.rand, market.Sectors())
		}
	case CategoryCorporate:
		m, ok := s.market.Resolve()
		if !ok {
			return Item{}, false
		}
		companies := m.Companies()
		if len(companies) == 0 {
			return Item{}, false
		}
		target := rng.Pick(s.rand, companies)
		item.TargetTicker = target.Ticker()
		item.TargetSector = target.Sector()
		companyName = target.Name()
	}

	item.Title = renderTemplate(tmpl.Title, companyName, s.rand)
	item.Content = renderTemplate(tmpl.Content, companyName, s.rand)
	return item, true
}

// selectTemplate filters the pool to templates whose direction gating
// matches the current trend. If nothing survives, it falls back to an
// unfiltered random pick.
func (s *Service) selectTemplate(pool []Template) Template {
	trend := market.TrendSideways
	if m, ok := s.market.Resolve(); ok {
		trend = m.CurrentTrend()
	}

	var eligible []Template
	for _, t := range pool {
		switch trend {
		case market.TrendBullish:
			if !t.BearOnly {
				eligible = append(eligible, t)
			}
		case market.TrendBearish:
			if !t.BullOnly {
				eligible = append(eligible, t)
			}
		default:
			if !t.BullOnly && !t.BearOnly {
				eligible = append(eligible, t)
			}
		}
	}
	if len(eligible) == 0 {
		eligible = pool
	}
	return rng.Pick(s.rand, eligible)
}

// sampleImpact draws uniformly inside the template band and biases it by the
// current regime: good news travels further in good times, bad news is
// dampened, and the reverse in bad times.
func (s *Service) sampleImpact(t Template) float64 {
	impact := s.rand.FloatBetween(t.MinImpact, t.MaxImpact)
	trend := market.TrendSideways
	if m, ok := s.market.Resolve(); ok {
		trend = m.CurrentTrend()
	}
	switch trend {
	case market.TrendBullish:
		if impact < 0 {
			impact *= 0.5
		} else {
			impact *= 1.2
		}
	case market.TrendBearish:
		if impact > 0 {
			impact *= 0.5
		} else {
			impact *= 1.2
		}
	}
	return impact
}

// ApplyNewsEffects dispatches the impact of every unprocessed item and marks
// it processed, both on the passed slice and in the retained history
// (matched by ID). Inert when the market handle is unbound.
func (s *Service) ApplyNewsEffects(items []Item) {
	m, ok := s.market.Resolve()
	if !ok {
		s.log.Warn().Msg("news service has no market; effects skipped")
		return
	}

	for i := range items {
		item := &items[i]
		if item.Processed {
			continue
		}
		switch item.Category {
		case CategoryGlobal:
			m.TriggerEconomicEvent(item.Impact, true)
		case CategorySector:
			for _, c := range m.CompaniesInSector(item.TargetSector) {
				c.ApplyPriceMovement(m.CurrentDay(), item.Impact)
			}
		case CategoryCorporate:
			// The target may have been delisted since generation; a
			// dangling ticker is skipped, not an error.
			if c, found := m.CompanyByTicker(item.TargetTicker); found {
				c.ApplyPriceMovement(m.CurrentDay(), item.Impact)
			}
		}
		item.Processed = true
		s.markProcessed(item.ID)

		s.log.Debug().
			Str("category", item.Category.String()).
			Str("title", item.Title).
			Float64("impact", item.Impact).
			Msg("news effect applied")
	}
}

// markProcessed flags the stored copy of an item by its stable ID.
func (s *Service) markProcessed(id uuid.UUID) {
	for i := 0; i < s.history.Len(); i++ {
		if s.history.At(i).ID == id {
			item := s.history.At(i)
			item.Processed = true
			s.history.Set(i, item)
			return
		}
	}
}

// Latest returns up to n most recent items, oldest first.
func (s *Service) Latest(n int) []Item {
	return s.history.Last(n)
}

// History returns the whole retained tape, oldest first.
func (s *Service) History() []Item {
	return s.history.Values()
}

package news

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/rng"
)

func newTestService(t *testing.T, seed int64) (*Service, *market.Market) {
	t.Helper()
	m := market.New(market.DefaultConfig(), rng.New(seed), zerolog.Nop())
	h := market.NewHandle(m)
	return New(DefaultConfig(), h, rng.New(seed+1), zerolog.Nop()), m
}

func TestGenerateDailyNewsCountAndDay(t *testing.T) {
	s, _ := newTestService(t, 1)
	s.SetDay(17)

	items := s.GenerateDailyNews(3)
	require.Len(t, items, 3, "top-up fills the requested count")
	for _, item := range items {
		assert.Equal(t, 17, item.PublishDay)
		assert.NotEmpty(t, item.Title)
		assert.NotEmpty(t, item.Content)
		assert.False(t, item.Processed)
		assert.NotContains(t, item.Title, "{", "placeholders must be rendered")
		assert.NotContains(t, item.Content, "{", "placeholders must be rendered")
	}
	assert.Len(t, s.History(), 3)
}

func TestGenerateDailyNewsTargets(t *testing.T) {
	s, m := newTestService(t, 2)
	s.SetDay(1)

	for i := 0; i < 40; i++ {
		for _, item := range s.GenerateDailyNews(3) {
			switch item.Category {
			case CategoryGlobal:
				assert.Empty(t, item.TargetTicker)
			case CategorySector:
				assert.NotEqual(t, market.SectorUnknown, item.TargetSector)
			case CategoryCorporate:
				c, ok := m.CompanyByTicker(item.TargetTicker)
				require.True(t, ok, "corporate news targets a listed company")
				assert.Equal(t, c.Sector(), item.TargetSector)
			}
		}
	}
}

func TestGenerateWithoutMarketSkipsCorporate(t *testing.T) {
	s := New(DefaultConfig(), market.NewHandle(nil), rng.New(3), zerolog.Nop())
	for i := 0; i < 40; i++ {
		for _, item := range s.GenerateDailyNews(3) {
			assert.NotEqual(t, CategoryCorporate, item.Category)
		}
	}
}

func TestSelectTemplateGating(t *testing.T) {
	s, _ := newTestService(t, 4)
	pool := []Template{
		{Title: "up", BullOnly: true},
		{Title: "down", BearOnly: true},
		{Title: "flat"},
	}

	// Sideways market: only direction-neutral templates survive.
	for i := 0; i < 30; i++ {
		assert.Equal(t, "flat", s.selectTemplate(pool).Title)
	}

	// All-gated pool falls back to an unfiltered pick.
	gated := []Template{{Title: "up", BullOnly: true}, {Title: "down", BearOnly: true}}
	got := s.selectTemplate(gated)
	assert.Contains(t, []string{"up", "down"}, got.Title)
}

func TestSampleImpactBias(t *testing.T) {
	s, _ := newTestService(t, 5)
	// Sideways regime: no bias, impact stays inside the template band.
	tmpl := Template{MinImpact: 0.01, MaxImpact: 0.02}
	for i := 0; i < 200; i++ {
		impact := s.sampleImpact(tmpl)
		require.GreaterOrEqual(t, impact, 0.01)
		require.Less(t, impact, 0.02)
	}
}

func TestApplyNewsEffects(t *testing.T) {
	s, m := newTestService(t, 6)
	s.SetDay(1)

	target, ok := m.CompanyByTicker("QMD")
	require.True(t, ok)
	indexBefore := m.Index()
	priceBefore := target.Stock().CurrentPrice()

	var items []Item
	for len(items) == 0 {
		for _, item := range s.GenerateDailyNews(3) {
			if item.Category == CategoryGlobal {
				items = append(items, item)
			}
		}
	}
	items[0].Impact = -0.05
	s.ApplyNewsEffects(items)

	assert.True(t, items[0].Processed)
	assert.InDelta(t, indexBefore*0.95, m.Index(), 1e-9)
	assert.NotEqual(t, priceBefore, target.Stock().CurrentPrice(), "global news re-prices all companies")

	// History copies are marked by ID.
	for _, h := range s.History() {
		if h.ID == items[0].ID {
			assert.True(t, h.Processed)
		}
	}

	// A processed item is not applied twice.
	indexAfter := m.Index()
	s.ApplyNewsEffects(items)
	assert.InDelta(t, indexAfter, m.Index(), 1e-9)
}

func TestApplyCorporateEffectSkipsDelisted(t *testing.T) {
	s, m := newTestService(t, 7)
	item := Item{Category: CategoryCorporate, TargetTicker: "GONE", Impact: -0.5}
	items := []Item{item}
	s.ApplyNewsEffects(items)
	assert.True(t, items[0].Processed, "dangling targets are marked processed, not retried")
	_ = m
}

func TestApplySectorEffect(t *testing.T) {
	s, m := newTestService(t, 8)
	energyBefore := map[string]float64{}
	for _, c := range m.CompaniesInSector(market.SectorEnergy) {
		energyBefore[c.Ticker()] = c.Stock().CurrentPrice()
	}
	techC, ok := m.CompanyByTicker("NIMB")
	require.True(t, ok)
	techBefore := techC.Stock().CurrentPrice()

	items := []Item{{Category: CategorySector, TargetSector: market.SectorEnergy, Impact: 0.03}}
	s.ApplyNewsEffects(items)

	for _, c := range m.CompaniesInSector(market.SectorEnergy) {
		assert.InDelta(t, energyBefore[c.Ticker()]*1.03, c.Stock().CurrentPrice(), 1e-9)
	}
	assert.Equal(t, techBefore, techC.Stock().CurrentPrice(), "other sectors untouched")
}

func TestApplyEffectsInertWithoutMarket(t *testing.T) {
	s := New(DefaultConfig(), market.NewHandle(nil), rng.New(9), zerolog.Nop())
	items := []Item{{Category: CategoryGlobal, Impact: 0.1}}
	s.ApplyNewsEffects(items)
	assert.False(t, items[0].Processed, "nothing applied means nothing marked")
}

func TestRenderTemplate(t *testing.T) {
	r := rng.New(10)
	out := renderTemplate("{company} gained {percent}% on {adjective} outlook", "Vela Foods", r)
	assert.Contains(t, out, "Vela Foods")
	assert.NotContains(t, out, "{")

	generic := renderTemplate("{company} in focus", "", r)
	assert.True(t, strings.HasPrefix(generic, "a listed company"))
}

func TestLoadTemplatesFailOpen(t *testing.T) {
	pools, err := LoadTemplates("/nonexistent/path.toml")
	assert.Error(t, err)
	require.NotNil(t, pools)
	assert.NotEmpty(t, pools[CategoryGlobal], "missing packs degrade to built-ins")
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, m := newTestService(t, 11)
	s.SetDay(40)
	items := s.GenerateDailyNews(3)
	s.ApplyNewsEffects(items)

	snap := s.Snapshot()
	restored := FromSnapshot(snap, DefaultConfig(), market.NewHandle(m), rng.New(11), zerolog.Nop())

	require.Equal(t, len(s.History()), len(restored.History()))
	for i, item := range s.History() {
		assert.Equal(t, item, restored.History()[i])
	}
	assert.Equal(t, 40, restored.Snapshot().CurrentDay)
}

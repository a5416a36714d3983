package market

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/paperhands/internal/calendar"
	"github.com/zappabad/paperhands/internal/rng"
)

func newTestMarket(t *testing.T, seed int64) *Market {
	t.Helper()
	return New(DefaultConfig(), rng.New(seed), zerolog.Nop())
}

func TestNewSeedsRoster(t *testing.T) {
	m := newTestMarket(t, 1)
	assert.Len(t, m.Companies(), 10)
	assert.InDelta(t, 1000.0, m.Index(), 1e-9)
	assert.Equal(t, TrendSideways, m.CurrentTrend())
	assert.Equal(t, 0, m.CurrentDay())

	c, ok := m.CompanyByTicker("NIMB")
	require.True(t, ok)
	assert.Equal(t, SectorTechnology, c.Sector())

	_, ok = m.CompanyByTicker("NOPE")
	assert.False(t, ok)
}

func TestAddCompanyRejectsDuplicateTicker(t *testing.T) {
	m := newTestMarket(t, 1)
	dup := NewCompany("Other", "NIMB", "", SectorEnergy, 0.5, NewDividendPolicy(0, 0), NewStock(SectorEnergy, 10, 0.5, 0.5))
	assert.False(t, m.AddCompany(dup))
	assert.Len(t, m.Companies(), 10)
}

func TestRemoveCompany(t *testing.T) {
	m := newTestMarket(t, 1)
	assert.True(t, m.RemoveCompany("NIMB"))
	assert.False(t, m.RemoveCompany("NIMB"))
	assert.Len(t, m.Companies(), 9)
	_, ok := m.CompanyByTicker("NIMB")
	assert.False(t, ok)
}

func TestCompaniesInSector(t *testing.T) {
	m := newTestMarket(t, 1)
	tech := m.CompaniesInSector(SectorTechnology)
	require.Len(t, tech, 2)
	for _, c := range tech {
		assert.Equal(t, SectorTechnology, c.Sector())
	}
	assert.Empty(t, m.CompaniesInSector(SectorUnknown))
}

func TestSimulateDayAdvancesState(t *testing.T) {
	m := newTestMarket(t, 42)
	m.SimulateDay()
	assert.Equal(t, 1, m.CurrentDay())
	assert.Equal(t, 1, m.CycleDay())
	assert.NotZero(t, m.State().DailyChange, "index should move every day")

	for _, s := range Sectors() {
		assert.NotZero(t, m.SectorTrend(s), "sector %s should have a trend", s)
	}
}

func TestSimulateDayInvariantsOverLongRun(t *testing.T) {
	m := newTestMarket(t, 7)
	for day := 0; day < 800; day++ {
		m.SimulateDay()
		st := m.State()
		require.GreaterOrEqual(t, st.InterestRate, minInterestRate)
		require.LessOrEqual(t, st.InterestRate, maxInterestRate)
		require.GreaterOrEqual(t, st.InflationRate, minInflationRate)
		require.LessOrEqual(t, st.InflationRate, maxInflationRate)
		require.GreaterOrEqual(t, st.UnemploymentRate, minUnemploymentRate)
		require.LessOrEqual(t, st.UnemploymentRate, maxUnemploymentRate)
		require.Positive(t, st.IndexValue)
		for _, c := range m.Companies() {
			require.GreaterOrEqual(t, c.Stock().CurrentPrice(), minPrice)
		}
	}
	assert.Equal(t, 800, m.CurrentDay())
	assert.Equal(t, 800%DefaultConfig().CycleLength, m.CycleDay())
}

func TestTrendChangesEventually(t *testing.T) {
	m := newTestMarket(t, 3)
	seen := map[Trend]bool{}
	for day := 0; day < 500; day++ {
		m.SimulateDay()
		seen[m.CurrentTrend()] = true
	}
	assert.Greater(t, len(seen), 1, "trend should switch regimes over a long run")
}

func TestTriggerEconomicEventAllSectors(t *testing.T) {
	m := newTestMarket(t, 5)
	before := m.Index()
	trendsBefore := m.SectorTrends()
	prices := map[string]float64{}
	for _, c := range m.Companies() {
		prices[c.Ticker()] = c.Stock().CurrentPrice()
	}

	m.TriggerEconomicEvent(-0.05, true)

	assert.InDelta(t, before*0.95, m.Index(), 1e-9)
	for s, v := range m.SectorTrends() {
		assert.InDelta(t, trendsBefore[s]-0.05, v, 1e-9)
	}
	for _, c := range m.Companies() {
		assert.Less(t, c.Stock().CurrentPrice(), prices[c.Ticker()], "%s should re-price downward", c.Ticker())
	}
}

func TestTriggerEconomicEventSingleSector(t *testing.T) {
	m := newTestMarket(t, 5)
	trendsBefore := m.SectorTrends()

	m.TriggerEconomicEvent(0.04, false)

	bumped := 0
	for s, v := range m.SectorTrends() {
		if v != trendsBefore[s] {
			bumped++
			assert.InDelta(t, trendsBefore[s]+0.08, v, 1e-9, "single-sector impact lands at double weight")
		}
	}
	assert.Equal(t, 1, bumped)
}

func TestSnapshotRoundTrip(t *testing.T) {
	m := newTestMarket(t, 99)
	for day := 0; day < 30; day++ {
		m.SimulateDay()
	}

	snap := m.Snapshot()
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored, err := FromSnapshot(decoded, rng.New(99), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, m.CurrentDay(), restored.CurrentDay())
	assert.Equal(t, m.CycleDay(), restored.CycleDay())
	assert.Equal(t, m.CurrentTrend(), restored.CurrentTrend())
	assert.InDelta(t, m.Index(), restored.Index(), 1e-9)
	assert.InDelta(t, m.State().InterestRate, restored.State().InterestRate, 1e-9)
	assert.Equal(t, m.SectorTrends(), restored.SectorTrends())

	require.Len(t, restored.Companies(), len(m.Companies()))
	for i, c := range m.Companies() {
		rc := restored.Companies()[i]
		assert.Equal(t, c.Ticker(), rc.Ticker())
		assert.InDelta(t, c.Stock().CurrentPrice(), rc.Stock().CurrentPrice(), 1e-9)
		assert.Equal(t, c.Dividend().NextPaymentDay(), rc.Dividend().NextPaymentDay())
		assert.Len(t, rc.Stock().History(), len(c.Stock().History()))
	}
}

func TestFromSnapshotRejectsDuplicateTickers(t *testing.T) {
	m := newTestMarket(t, 1)
	snap := m.Snapshot()
	snap.Companies = append(snap.Companies, snap.Companies[0])

	_, err := FromSnapshot(snap, rng.New(1), zerolog.Nop())
	assert.Error(t, err)
}

func TestHandleRebinding(t *testing.T) {
	h := NewHandle(nil)
	_, ok := h.Resolve()
	assert.False(t, ok)

	m := newTestMarket(t, 1)
	h.Bind(m)
	got, ok := h.Resolve()
	require.True(t, ok)
	assert.Same(t, m, got)

	var nilHandle *Handle
	_, ok = nilHandle.Resolve()
	assert.False(t, ok)
}

func TestCurrentDateFollowsDayCounter(t *testing.T) {
	m := newTestMarket(t, 7)
	assert.Equal(t, calendar.Epoch, m.CurrentDate())

	for i := 0; i < 10; i++ {
		m.SimulateDay()
	}
	assert.Equal(t, calendar.New(11, 3, 2023), m.CurrentDate())
	assert.Equal(t, "11.03.2023", m.CurrentDate().String())
}

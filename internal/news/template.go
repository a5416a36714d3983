package news

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/rng"
)

// Template is one news blueprint. Title and Content may contain typed
// placeholder tokens ({company}, {direction}, {adjective}, {percent})
// resolved from word tables at generation time.
type Template struct {
	Title      string        `toml:"title"`
	Content    string        `toml:"content"`
	MinImpact  float64       `toml:"min_impact"`
	MaxImpact  float64       `toml:"max_impact"`
	BullOnly   bool          `toml:"bull_only"` // only eligible while the market trends up
	BearOnly   bool          `toml:"bear_only"` // only eligible while the market trends down
	Sector     market.Sector `toml:"sector"`    // fixed target sector, if any
}

// templateFile is the on-disk TOML shape of a template pack.
type templateFile struct {
	Global    []Template `toml:"global"`
	Sector    []Template `toml:"sector"`
	Corporate []Template `toml:"corporate"`
}

// LoadTemplates reads a template pack from a TOML file. A missing or
// unparseable file falls back to the built-in defaults; template loading is
// fail-open, never fail-fatal.
func LoadTemplates(path string) (map[Category][]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultTemplates(), fmt.Errorf("news: reading template file: %w", err)
	}
	var file templateFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return defaultTemplates(), fmt.Errorf("news: parsing template file: %w", err)
	}
	pools := map[Category][]Template{
		CategoryGlobal:    file.Global,
		CategorySector:    file.Sector,
		CategoryCorporate: file.Corporate,
	}
	for cat, pool := range pools {
		if len(pool) == 0 {
			pools[cat] = defaultTemplates()[cat]
		}
	}
	return pools, nil
}

// Word tables backing the typed placeholder slots.
var (
	rateDirections    = []string{"raises", "cuts", "holds", "reviews"}
	economyAdjectives = []string{"resilient", "overheating", "cooling", "fragile", "booming", "stagnant"}
)

// renderTemplate fills the placeholder tokens. companyName may be empty for
// non-corporate news; the {company} token then degrades to a generic phrase.
func renderTemplate(text, companyName string, r rng.Rand) string {
	if strings.Contains(text, "{company}") {
		name := companyName
		if name == "" {
			name = "a listed company"
		}
		text = strings.ReplaceAll(text, "{company}", name)
	}
	if strings.Contains(text, "{direction}") {
		text = strings.ReplaceAll(text, "{direction}", rng.Pick(r, rateDirections))
	}
	if strings.Contains(text, "{adjective}") {
		text = strings.ReplaceAll(text, "{adjective}", rng.Pick(r, economyAdjectives))
	}
	for strings.Contains(text, "{percent}") {
		text = strings.Replace(text, "{percent}", fmt.Sprintf("%d", r.IntBetween(5, 50)), 1)
	}
	return text
}

func defaultTemplates() map[Category][]Template {
	return map[Category][]Template{
		CategoryGlobal: {
			{Title: "Central bank {direction} key rate", Content: "The central bank {direction} its key rate as the economy looks {adjective}.", MinImpact: -0.03, MaxImpact: 0.03},
			{Title: "Economic outlook upgraded", Content: "Analysts call the economy {adjective} and lift growth forecasts by {percent} basis points.", MinImpact: 0.005, MaxImpact: 0.04, BullOnly: true},
			{Title: "Recession fears mount", Content: "Forecasters see a {percent}% chance of contraction as indicators turn {adjective}.", MinImpact: -0.05, MaxImpact: -0.005, BearOnly: true},
			{Title: "Trade talks conclude", Content: "A new trade agreement is expected to shift flows by {percent}%.", MinImpact: -0.02, MaxImpact: 0.025},
			{Title: "Inflation report surprises", Content: "Consumer prices came in off-consensus, leaving markets {adjective}.", MinImpact: -0.025, MaxImpact: 0.02},
		},
		CategorySector: {
			{Title: "Tech spending wave", Content: "Enterprise budgets for software rise {percent}% year over year.", MinImpact: 0.005, MaxImpact: 0.05, Sector: market.SectorTechnology, BullOnly: true},
			{Title: "Chip supply disruption", Content: "Component shortages could cut output by {percent}%.", MinImpact: -0.04, MaxImpact: -0.005, Sector: market.SectorTechnology},
			{Title: "Oil inventories swing", Content: "Crude stockpiles moved {percent} million barrels against expectations.", MinImpact: -0.03, MaxImpact: 0.03, Sector: market.SectorEnergy},
			{Title: "Banking stress test results", Content: "Regulators publish capital adequacy results across the sector.", MinImpact: -0.025, MaxImpact: 0.02, Sector: market.SectorFinance},
			{Title: "Retail sales print", Content: "Consumer spending shifted {percent}% last quarter as sentiment turned {adjective}.", MinImpact: -0.02, MaxImpact: 0.025, Sector: market.SectorConsumer},
			{Title: "Factory orders update", Content: "Industrial orders moved {percent}% amid {adjective} demand.", MinImpact: -0.02, MaxImpact: 0.02, Sector: market.SectorManufacturing},
		},
		CategoryCorporate: {
			{Title: "{company} beats earnings estimates", Content: "{company} reported profit {percent}% above consensus.", MinImpact: 0.01, MaxImpact: 0.08, BullOnly: true},
			{Title: "{company} misses expectations", Content: "{company} fell {percent}% short of forecast revenue.", MinImpact: -0.07, MaxImpact: -0.01, BearOnly: true},
			{Title: "{company} announces buyback", Content: "{company} will repurchase up to {percent}% of outstanding shares.", MinImpact: 0.005, MaxImpact: 0.04},
			{Title: "{company} faces regulatory probe", Content: "Authorities opened an inquiry into {company} business practices.", MinImpact: -0.06, MaxImpact: -0.005},
			{Title: "{company} unveils new product line", Content: "{company} expects the launch to add {percent}% to annual revenue.", MinImpact: -0.01, MaxImpact: 0.05},
		},
	}
}

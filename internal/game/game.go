// Package game ties the market, player, news and pricing services into a
// day-stepped session and handles save/load.
package game

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/news"
	"github.com/zappabad/paperhands/internal/player"
	"github.com/zappabad/paperhands/internal/pricing"
	"github.com/zappabad/paperhands/internal/rng"
	"github.com/zappabad/paperhands/internal/save"
)

// Game owns all game subsystems and drives the daily loop. Everything is
// synchronous: a day advances only when the caller asks.
type Game struct {
	cfg  Config
	log  zerolog.Logger
	rand rng.Rand

	market  *market.Market
	handle  *market.Handle
	player  *player.Player
	news    *news.Service
	pricing *pricing.Service
	store   *save.Store
}

// New creates a game session with a fresh market. A nil store disables
// persistence.
func New(cfg Config, store *save.Store, log zerolog.Logger) *Game {
	r := rng.NewFromClock()
	if cfg.Seed != 0 {
		r = rng.New(cfg.Seed)
	}
	if cfg.NewsPerDay <= 0 {
		cfg.NewsPerDay = DefaultConfig().NewsPerDay
	}

	g := &Game{cfg: cfg, log: log, rand: r, store: store}
	g.market = market.New(cfg.Market, r, log)
	g.handle = market.NewHandle(g.market)
	g.player = player.New(cfg.PlayerName, cfg.Player, g.handle, log)
	g.news = news.New(cfg.News, g.handle, r, log)
	g.pricing = pricing.New(cfg.Pricing, g.handle, r, log)
	return g
}

// AdvanceDay runs one full simulated day in fixed order: market simulation,
// the pricing overlay, news generation and effects, dividends, the player's
// daily pipeline, and finally the day close.
func (g *Game) AdvanceDay() []news.Item {
	g.player.OpenDay()

	g.market.SimulateDay()
	g.pricing.UpdatePrices()

	g.news.SetDay(g.market.CurrentDay())
	items := g.news.GenerateDailyNews(g.cfg.NewsPerDay)
	g.news.ApplyNewsEffects(items)

	for _, payment := range g.market.ProcessCompanyDividends() {
		credited := g.player.Portfolio().ReceiveDividends(payment.Ticker, payment.PerShare)
		if credited > 0 {
			g.log.Info().Str("ticker", payment.Ticker).Float64("amount", credited).Msg("dividends received")
		}
	}

	g.player.UpdateDailyState()
	g.player.CloseDay()
	return items
}

// Save persists the full session state into the named slot.
func (g *Game) Save(slot string) error {
	if g.store == nil {
		return fmt.Errorf("game: no save store configured")
	}
	newsSnap := g.news.Snapshot()
	pricingSnap := g.pricing.Snapshot()
	doc := save.Document{
		SaveVersion: save.CurrentVersion,
		SavedAt:     time.Now().Format(time.RFC3339),
		Market:      g.market.Snapshot(),
		Player:      g.player.Snapshot(),
		News:        &newsSnap,
		Pricing:     &pricingSnap,
	}
	return g.store.Save(slot, doc)
}

// Load replaces the session state from the named slot. The market handle is
// rebound in place, so the player and services keep working against the
// loaded market.
func (g *Game) Load(slot string) error {
	if g.store == nil {
		return fmt.Errorf("game: no save store configured")
	}
	doc, err := g.store.Load(slot)
	if err != nil {
		return err
	}

	m, err := market.FromSnapshot(doc.Market, g.rand, g.log)
	if err != nil {
		return fmt.Errorf("game: restoring market: %w", err)
	}
	g.market = m
	g.handle.Bind(m)

	g.player = player.FromSnapshot(doc.Player, g.cfg.Player, g.handle, g.log)
	if doc.News != nil {
		g.news = news.FromSnapshot(*doc.News, g.cfg.News, g.handle, g.rand, g.log)
	} else {
		g.news = news.New(g.cfg.News, g.handle, g.rand, g.log)
	}
	if doc.Pricing != nil {
		g.pricing = pricing.FromSnapshot(*doc.Pricing, g.handle, g.rand, g.log)
	} else {
		g.pricing = pricing.New(g.cfg.Pricing, g.handle, g.rand, g.log)
	}

	g.log.Info().Str("slot", slot).Int("day", m.CurrentDay()).Msg("game loaded")
	return nil
}

// Market returns the live market.
func (g *Game) Market() *market.Market { return g.market }

// Player returns the session's player.
func (g *Game) Player() *player.Player { return g.player }

// News returns the news service.
func (g *Game) News() *news.Service { return g.news }

// Pricing returns the pricing service.
func (g *Game) Pricing() *pricing.Service { return g.pricing }

// Store returns the save store, nil when persistence is disabled.
func (g *Game) Store() *save.Store { return g.store }

// Config returns the session configuration.
func (g *Game) Config() Config { return g.cfg }

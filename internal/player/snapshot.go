package player

import (
	"github.com/rs/zerolog"

	"github.com/zappabad/paperhands/internal/loan"
	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/portfolio"
)

// Snapshot is the serialized form of a Player.
type Snapshot struct {
	Name               string             `json:"name"`
	CurrentDay         int                `json:"current_day"`
	MarginBalance      float64            `json:"margin_balance"`
	MarginUsed         float64            `json:"margin_used"`
	MarginRequirement  float64            `json:"margin_requirement"`
	PreviousStockValue float64            `json:"previous_stock_value"`
	HasPreviousDay     bool               `json:"has_previous_day"`
	Portfolio          portfolio.Snapshot `json:"portfolio"`
	Loans              []loan.Snapshot    `json:"loans"`
}

// Snapshot serializes the player.
func (p *Player) Snapshot() Snapshot {
	snap := Snapshot{
		Name:               p.name,
		CurrentDay:         p.currentDay,
		MarginBalance:      p.marginBalance,
		MarginUsed:         p.marginUsed,
		MarginRequirement:  p.marginRequirement,
		PreviousStockValue: p.previousStockValue,
		HasPreviousDay:     p.hasPreviousDay,
		Portfolio:          p.portfolio.Snapshot(),
	}
	for _, l := range p.loans {
		snap.Loans = append(snap.Loans, l.Snapshot())
	}
	return snap
}

// FromSnapshot rebuilds a player bound to the given market handle.
func FromSnapshot(snap Snapshot, cfg Config, h *market.Handle, log zerolog.Logger) *Player {
	cfg.MarginRequirement = snap.MarginRequirement
	p := New(snap.Name, cfg, h, log)
	p.currentDay = snap.CurrentDay
	p.marginBalance = snap.MarginBalance
	p.marginUsed = snap.MarginUsed
	p.previousStockValue = snap.PreviousStockValue
	p.hasPreviousDay = snap.HasPreviousDay
	p.portfolio = portfolio.FromSnapshot(snap.Portfolio, h, log)
	for _, ls := range snap.Loans {
		p.loans = append(p.loans, loan.FromSnapshot(ls))
	}
	return p
}

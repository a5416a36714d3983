package news

import (
	"github.com/rs/zerolog"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/rng"
)

// Snapshot is the serialized form of the news service.
type Snapshot struct {
	CurrentDay int    `json:"current_day"`
	History    []Item `json:"history"`
}

// Snapshot serializes the retained news state.
func (s *Service) Snapshot() Snapshot {
	return Snapshot{
		CurrentDay: s.currentDay,
		History:    s.history.Values(),
	}
}

// FromSnapshot rebuilds a news service from its serialized form, bound to
// the given market handle. Templates are reloaded from config, not carried
// in the save.
func FromSnapshot(snap Snapshot, cfg Config, h *market.Handle, r rng.Rand, log zerolog.Logger) *Service {
	s := New(cfg, h, r, log)
	s.currentDay = snap.CurrentDay
	for _, item := range snap.History {
		s.history.Push(item)
	}
	return s
}

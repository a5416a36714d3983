// Package save persists complete game states as versioned JSON documents in
// a local SQLite store.
package save

import (
	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/news"
	"github.com/zappabad/paperhands/internal/player"
	"github.com/zappabad/paperhands/internal/pricing"
)

// CurrentVersion is the newest save document version this build writes and
// understands. Loading rejects documents with a greater version.
const CurrentVersion = 1

// Document bundles every subsystem's snapshot.
type Document struct {
	SaveVersion int               `json:"save_version"`
	SavedAt     string            `json:"saved_at"`
	Market      market.Snapshot   `json:"market"`
	Player      player.Snapshot   `json:"player"`
	News        *news.Snapshot    `json:"news_service,omitempty"`
	Pricing     *pricing.Snapshot `json:"price_service,omitempty"`
}

// Info describes one stored save for browser listings. Corrupt rows are
// surfaced as placeholder entries with Corrupt set, never as load failures.
type Info struct {
	Slot        string
	SaveVersion int
	SavedAt     string
	PlayerName  string
	NetWorthDay int
	Corrupt     bool
}

// Package news generates templated random market news and applies their
// price impact to the market.
package news

import (
	"github.com/google/uuid"

	"github.com/zappabad/paperhands/internal/market"
)

// Category determines what a news item affects.
type Category uint8

const (
	// CategoryGlobal affects the whole market.
	CategoryGlobal Category = iota
	// CategorySector affects one sector.
	CategorySector
	// CategoryCorporate affects one company.
	CategoryCorporate
)

func (c Category) String() string {
	switch c {
	case CategoryGlobal:
		return "Global"
	case CategorySector:
		return "Sector"
	case CategoryCorporate:
		return "Corporate"
	default:
		return "Unknown"
	}
}

// ParseCategory maps a category name back to its value.
func ParseCategory(name string) Category {
	switch name {
	case "Sector":
		return CategorySector
	case "Corporate":
		return CategoryCorporate
	default:
		return CategoryGlobal
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}

// Item is one generated news event. The ID is assigned at generation and is
// the only thing effect application matches on.
type Item struct {
	ID           uuid.UUID     `json:"id"`
	Category     Category      `json:"category"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Impact       float64       `json:"impact"`
	PublishDay   int           `json:"publish_day"`
	TargetSector market.Sector `json:"target_sector"`
	TargetTicker string        `json:"target_ticker,omitempty"`
	Processed    bool          `json:"processed"`
}

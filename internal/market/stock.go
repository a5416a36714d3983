package market

import (
	"github.com/zappabad/paperhands/internal/ring"
)

const (
	// minPrice is the hard floor applied on every price update.
	minPrice = 0.01
	// priceHistoryCap bounds the per-stock price history.
	priceHistoryCap = 1000
)

// PricePoint is one entry of a stock's price history.
type PricePoint struct {
	Day   int     `json:"day"`
	Price float64 `json:"price"`
}

// Stock is a single company's price series. It is owned exclusively by its
// Company; the sector is carried by value so price updates never have to
// reach back into the owner.
type Stock struct {
	sector Sector

	currentPrice     float64
	previousClose    float64
	openPrice        float64
	highestPrice     float64
	lowestPrice      float64
	dayChangeAmount  float64
	dayChangePercent float64
	marketInfluence  float64 // [0,1] weight of the market movement
	sectorInfluence  float64 // [0,1] weight of the sector trend
	history          *ring.Buffer[PricePoint]
}

// NewStock creates a stock at the given initial price. The influences weight
// how strongly the market movement and the sector trend blend into the
// stock's own daily move.
func NewStock(sector Sector, initialPrice, marketInfluence, sectorInfluence float64) *Stock {
	if initialPrice < minPrice {
		initialPrice = minPrice
	}
	return &Stock{
		sector:          sector,
		currentPrice:    initialPrice,
		previousClose:   initialPrice,
		openPrice:       initialPrice,
		highestPrice:    initialPrice,
		lowestPrice:     initialPrice,
		marketInfluence: clamp01(marketInfluence),
		sectorInfluence: clamp01(sectorInfluence),
		history:         ring.New[PricePoint](priceHistoryCap),
	}
}

// UpdatePrice blends the day's market movement with the stock's sector trend
// and applies the result multiplicatively.
func (s *Stock) UpdatePrice(day int, marketMovement, sectorTrend float64) {
	move := marketMovement*s.marketInfluence + sectorTrend*s.sectorInfluence
	s.ApplyMovement(day, move)
}

// ApplyMovement applies a fractional movement directly (news impacts, the
// pricing service, economic shocks).
func (s *Stock) ApplyMovement(day int, movement float64) {
	s.setPrice(day, s.currentPrice*(1+movement))
}

func (s *Stock) setPrice(day int, price float64) {
	if price < minPrice {
		price = minPrice
	}
	s.currentPrice = price
	if price > s.highestPrice {
		s.highestPrice = price
	}
	if price < s.lowestPrice {
		s.lowestPrice = price
	}
	if s.openPrice > 0 {
		s.dayChangeAmount = price - s.openPrice
		s.dayChangePercent = s.dayChangeAmount / s.openPrice * 100
	}
	s.history.Push(PricePoint{Day: day, Price: price})
}

// CloseTradingDay records the closing price of the day.
func (s *Stock) CloseTradingDay() {
	s.previousClose = s.currentPrice
}

// OpenTradingDay marks the current price as the day's open and zeroes the
// day-change figures.
func (s *Stock) OpenTradingDay() {
	s.openPrice = s.currentPrice
	s.dayChangeAmount = 0
	s.dayChangePercent = 0
}

// CurrentPrice returns the live price, the single source of truth for all
// valuation.
func (s *Stock) CurrentPrice() float64 { return s.currentPrice }

// PreviousClose returns the last close price.
func (s *Stock) PreviousClose() float64 { return s.previousClose }

// OpenPrice returns the day's opening price.
func (s *Stock) OpenPrice() float64 { return s.openPrice }

// HighestPrice returns the all-time high.
func (s *Stock) HighestPrice() float64 { return s.highestPrice }

// LowestPrice returns the all-time low.
func (s *Stock) LowestPrice() float64 { return s.lowestPrice }

// DayChangeAmount returns the absolute change since the open.
func (s *Stock) DayChangeAmount() float64 { return s.dayChangeAmount }

// DayChangePercent returns the percentage change since the open.
func (s *Stock) DayChangePercent() float64 { return s.dayChangePercent }

// Sector returns the sector the stock trades in.
func (s *Stock) Sector() Sector { return s.sector }

// History returns the bounded price history, oldest first.
func (s *Stock) History() []PricePoint { return s.history.Values() }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

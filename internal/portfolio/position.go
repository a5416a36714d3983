package portfolio

import (
	"fmt"

	"github.com/zappabad/paperhands/internal/market"
)

// Position is one held stock: quantity, weighted-average cost basis and a
// mark-to-market value against the live stock price. A position never holds
// zero shares; selling out removes it from the portfolio entirely.
type Position struct {
	company      *market.Company
	quantity     int
	averagePrice float64
	totalCost    float64
}

// NewPosition opens a position. A non-positive quantity or price is a
// contract violation.
func NewPosition(company *market.Company, quantity int, price float64) (*Position, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("portfolio: position quantity %d must be positive", quantity)
	}
	if price <= 0 {
		return nil, fmt.Errorf("portfolio: position price %f must be positive", price)
	}
	return &Position{
		company:      company,
		quantity:     quantity,
		averagePrice: price,
		totalCost:    float64(quantity) * price,
	}, nil
}

// AddShares extends the position, recomputing the weighted-average basis.
func (p *Position) AddShares(quantity int, price float64) {
	p.totalCost += float64(quantity) * price
	p.quantity += quantity
	p.averagePrice = p.totalCost / float64(p.quantity)
}

// RemoveShares shrinks the position. The cost basis shrinks proportionally,
// so the average price is unchanged by a partial sell; realized gains are
// not tracked separately from cash flow. Removing the full quantity empties
// the position (the caller then deletes it). Removing more than held is an
// error.
func (p *Position) RemoveShares(quantity int) error {
	if quantity <= 0 || quantity > p.quantity {
		return fmt.Errorf("portfolio: cannot remove %d of %d shares", quantity, p.quantity)
	}
	remaining := p.quantity - quantity
	if remaining == 0 {
		p.quantity = 0
		p.totalCost = 0
		return nil
	}
	p.totalCost *= float64(remaining) / float64(p.quantity)
	p.quantity = remaining
	p.averagePrice = p.totalCost / float64(remaining)
	return nil
}

// CurrentValue marks the position to the live stock price.
func (p *Position) CurrentValue() float64 {
	return float64(p.quantity) * p.company.Stock().CurrentPrice()
}

// UnrealizedPL is the mark-to-market gain over the cost basis.
func (p *Position) UnrealizedPL() float64 {
	return p.CurrentValue() - p.totalCost
}

// UnrealizedPLPercent is the unrealized gain relative to the cost basis.
func (p *Position) UnrealizedPLPercent() float64 {
	if p.totalCost == 0 {
		return 0
	}
	return p.UnrealizedPL() / p.totalCost * 100
}

// Company returns the held company.
func (p *Position) Company() *market.Company { return p.company }

// Ticker returns the held ticker.
func (p *Position) Ticker() string { return p.company.Ticker() }

// Quantity returns the held share count.
func (p *Position) Quantity() int { return p.quantity }

// AveragePrice returns the weighted-average purchase price.
func (p *Position) AveragePrice() float64 { return p.averagePrice }

// TotalCost returns the current cost basis.
func (p *Position) TotalCost() float64 { return p.totalCost }

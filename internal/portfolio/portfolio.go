package portfolio

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/ring"
)

// historyCap bounds the per-day snapshot list (about five years).
const historyCap = 1825

// HistoryPoint is one end-of-day portfolio snapshot.
type HistoryPoint struct {
	Day                int     `json:"day"`
	TotalValue         float64 `json:"total_value"`
	CashBalance        float64 `json:"cash_balance"`
	TotalReturn        float64 `json:"total_return"`
	TotalReturnPercent float64 `json:"total_return_percent"`
}

// Portfolio is the player's cash and stock ledger. Trade rejections are
// ordinary outcomes reported as a false return, never errors.
type Portfolio struct {
	log zerolog.Logger

	cash              float64
	initialInvestment float64
	positions         map[string]*Position
	history           *ring.Buffer[HistoryPoint]
	transactions      []*Transaction
	totalDividends    float64
	previousDayValue  float64
}

// New creates a portfolio with the given starting cash. The starting cash
// seeds the return baseline.
func New(startingCash float64, log zerolog.Logger) *Portfolio {
	return &Portfolio{
		log:               log,
		cash:              startingCash,
		initialInvestment: startingCash,
		positions:         make(map[string]*Position),
		history:           ring.New[HistoryPoint](historyCap),
	}
}

// BuyStock executes a purchase at the given price. Rejects non-positive
// quantity or price, and purchases the cash balance cannot cover.
func (p *Portfolio) BuyStock(c *market.Company, quantity int, price, commissionRate float64, day int) bool {
	if quantity <= 0 || price <= 0 {
		return false
	}
	tx, err := NewTransaction(TransactionBuy, c.Ticker(), c.Name(), quantity, price, commissionRate, day)
	if err != nil {
		p.log.Error().Err(err).Msg("invalid buy transaction")
		return false
	}
	totalCost := tx.TotalCost()
	if totalCost > p.cash {
		p.log.Debug().Str("ticker", c.Ticker()).Float64("cost", totalCost).Float64("cash", p.cash).Msg("buy rejected: insufficient funds")
		return false
	}

	p.cash -= totalCost
	if pos, held := p.positions[c.Ticker()]; held {
		pos.AddShares(quantity, price)
	} else {
		pos, err := NewPosition(c, quantity, price)
		if err != nil {
			// Unreachable given the checks above; restore cash anyway.
			p.cash += totalCost
			p.log.Error().Err(err).Msg("position open failed")
			return false
		}
		p.positions[c.Ticker()] = pos
	}

	if err := tx.Execute(); err != nil {
		p.log.Error().Err(err).Msg("buy execute failed")
	}
	p.transactions = append(p.transactions, tx)
	p.log.Info().Str("ticker", c.Ticker()).Int("quantity", quantity).Float64("price", price).Msg("bought stock")
	return true
}

// SellStock executes a sale at the given price. Rejects unless the position
// holds at least the requested quantity. Selling the full position removes
// it.
func (p *Portfolio) SellStock(c *market.Company, quantity int, price, commissionRate float64, day int) bool {
	if quantity <= 0 || price <= 0 {
		return false
	}
	pos, held := p.positions[c.Ticker()]
	if !held || pos.Quantity() < quantity {
		p.log.Debug().Str("ticker", c.Ticker()).Int("quantity", quantity).Msg("sell rejected: insufficient shares")
		return false
	}
	tx, err := NewTransaction(TransactionSell, c.Ticker(), c.Name(), quantity, price, commissionRate, day)
	if err != nil {
		p.log.Error().Err(err).Msg("invalid sell transaction")
		return false
	}

	if err := pos.RemoveShares(quantity); err != nil {
		p.log.Error().Err(err).Msg("share removal failed")
		return false
	}
	if pos.Quantity() == 0 {
		delete(p.positions, c.Ticker())
	}
	p.cash += tx.TotalCost()

	if err := tx.Execute(); err != nil {
		p.log.Error().Err(err).Msg("sell execute failed")
	}
	p.transactions = append(p.transactions, tx)
	p.log.Info().Str("ticker", c.Ticker()).Int("quantity", quantity).Float64("price", price).Msg("sold stock")
	return true
}

// ReceiveDividends credits perShare for every held share of the company.
// No-op without a position.
func (p *Portfolio) ReceiveDividends(ticker string, perShare float64) float64 {
	pos, held := p.positions[ticker]
	if !held || perShare <= 0 {
		return 0
	}
	amount := float64(pos.Quantity()) * perShare
	p.cash += amount
	p.totalDividends += amount
	return amount
}

// DepositCash adds external funds. Deposits grow the return baseline: they
// are treated as additional principal, not gains.
func (p *Portfolio) DepositCash(amount float64) bool {
	if amount <= 0 {
		return false
	}
	p.cash += amount
	p.initialInvestment += amount
	return true
}

// CreditCash adds funds without touching the return baseline. Used for
// loan principal, margin draws and collateral transfers, which are not
// contributed principal.
func (p *Portfolio) CreditCash(amount float64) {
	if amount > 0 {
		p.cash += amount
	}
}

// DebitCash removes funds without baseline effects; fails if the balance
// cannot cover the amount.
func (p *Portfolio) DebitCash(amount float64) bool {
	if amount <= 0 || amount > p.cash {
		return false
	}
	p.cash -= amount
	return true
}

// WithdrawCash removes funds; fails if the balance cannot cover the amount.
func (p *Portfolio) WithdrawCash(amount float64) bool {
	if amount <= 0 || amount > p.cash {
		return false
	}
	p.cash -= amount
	return true
}

// OpenDay snapshots the previous day's value for day-over-day change.
func (p *Portfolio) OpenDay() {
	p.previousDayValue = p.TotalValue()
}

// CloseDay appends one end-of-day snapshot to the bounded history.
func (p *Portfolio) CloseDay(day int) {
	total := p.TotalValue()
	p.history.Push(HistoryPoint{
		Day:                day,
		TotalValue:         total,
		CashBalance:        p.cash,
		TotalReturn:        p.TotalReturn(),
		TotalReturnPercent: p.TotalReturnPercent(),
	})
}

// StockValue sums the mark-to-market value of all positions.
func (p *Portfolio) StockValue() float64 {
	var total float64
	for _, pos := range p.positions {
		total += pos.CurrentValue()
	}
	return total
}

// TotalValue is cash plus stock value.
func (p *Portfolio) TotalValue() float64 {
	return p.cash + p.StockValue()
}

// TotalReturn is the lifetime gain over all contributed principal.
func (p *Portfolio) TotalReturn() float64 {
	return p.TotalValue() - p.initialInvestment
}

// TotalReturnPercent is the lifetime return relative to principal.
func (p *Portfolio) TotalReturnPercent() float64 {
	if p.initialInvestment == 0 {
		return 0
	}
	return p.TotalReturn() / p.initialInvestment * 100
}

// PeriodReturn looks back the given number of history entries. When history
// is shorter than requested, or days is non-positive, it falls back to the
// lifetime return.
func (p *Portfolio) PeriodReturn(days int) float64 {
	if days <= 0 || p.history.Len() <= days {
		return p.TotalReturn()
	}
	base := p.history.At(p.history.Len() - 1 - days)
	return p.TotalValue() - base.TotalValue
}

// PeriodReturnPercent is PeriodReturn relative to the period's base value.
func (p *Portfolio) PeriodReturnPercent(days int) float64 {
	if days <= 0 || p.history.Len() <= days {
		return p.TotalReturnPercent()
	}
	base := p.history.At(p.history.Len() - 1 - days)
	if base.TotalValue == 0 {
		return 0
	}
	return (p.TotalValue() - base.TotalValue) / base.TotalValue * 100
}

// Position returns the held position for a ticker, if any.
func (p *Portfolio) Position(ticker string) (*Position, bool) {
	pos, ok := p.positions[ticker]
	return pos, ok
}

// Positions returns all positions sorted by ticker for stable iteration.
func (p *Portfolio) Positions() []*Position {
	out := make([]*Position, 0, len(p.positions))
	for _, pos := range p.positions {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ticker() < out[j].Ticker() })
	return out
}

// Transactions returns the executed-trade log, oldest first.
func (p *Portfolio) Transactions() []*Transaction {
	out := make([]*Transaction, len(p.transactions))
	copy(out, p.transactions)
	return out
}

// History returns the bounded daily history, oldest first.
func (p *Portfolio) History() []HistoryPoint {
	return p.history.Values()
}

// CashBalance returns the available cash.
func (p *Portfolio) CashBalance() float64 { return p.cash }

// InitialInvestment returns the return baseline (starting cash plus all
// deposits).
func (p *Portfolio) InitialInvestment() float64 { return p.initialInvestment }

// TotalDividendsReceived returns the monotonic dividend accumulator.
func (p *Portfolio) TotalDividendsReceived() float64 { return p.totalDividends }

// PreviousDayValue returns the value snapshotted at the last OpenDay.
func (p *Portfolio) PreviousDayValue() float64 { return p.previousDayValue }

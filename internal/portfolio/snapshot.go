package portfolio

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/ring"
)

// PositionSnapshot is the serialized form of a Position. The company is
// referenced by ticker and re-resolved against the market on restore.
type PositionSnapshot struct {
	Ticker       string  `json:"ticker"`
	Quantity     int     `json:"quantity"`
	AveragePrice float64 `json:"average_price"`
	TotalCost    float64 `json:"total_cost"`
}

// TransactionSnapshot is the serialized form of a Transaction.
type TransactionSnapshot struct {
	ID             uuid.UUID       `json:"id"`
	Type           TransactionType `json:"type"`
	Ticker         string          `json:"ticker"`
	CompanyName    string          `json:"company_name"`
	Quantity       int             `json:"quantity"`
	PricePerShare  float64         `json:"price_per_share"`
	CommissionRate float64         `json:"commission_rate"`
	Day            int             `json:"day"`
	Executed       bool            `json:"executed"`
	Status         string          `json:"status"`
}

// Snapshot is the serialized form of a Portfolio.
type Snapshot struct {
	Cash              float64               `json:"cash"`
	InitialInvestment float64               `json:"initial_investment"`
	TotalDividends    float64               `json:"total_dividends"`
	PreviousDayValue  float64               `json:"previous_day_value"`
	Positions         []PositionSnapshot    `json:"positions"`
	Transactions      []TransactionSnapshot `json:"transactions"`
	History           []HistoryPoint        `json:"history"`
}

// Snapshot serializes the transaction.
func (t *Transaction) Snapshot() TransactionSnapshot {
	return TransactionSnapshot{
		ID:             t.id,
		Type:           t.kind,
		Ticker:         t.ticker,
		CompanyName:    t.companyName,
		Quantity:       t.quantity,
		PricePerShare:  t.pricePerShare,
		CommissionRate: t.commissionRate,
		Day:            t.day,
		Executed:       t.executed,
		Status:         t.status,
	}
}

// TransactionFromSnapshot rebuilds a transaction from its serialized form.
func TransactionFromSnapshot(snap TransactionSnapshot) *Transaction {
	return &Transaction{
		id:             snap.ID,
		kind:           snap.Type,
		ticker:         snap.Ticker,
		companyName:    snap.CompanyName,
		quantity:       snap.Quantity,
		pricePerShare:  snap.PricePerShare,
		commissionRate: snap.CommissionRate,
		day:            snap.Day,
		executed:       snap.Executed,
		status:         snap.Status,
	}
}

// Snapshot serializes the portfolio.
func (p *Portfolio) Snapshot() Snapshot {
	snap := Snapshot{
		Cash:              p.cash,
		InitialInvestment: p.initialInvestment,
		TotalDividends:    p.totalDividends,
		PreviousDayValue:  p.previousDayValue,
		History:           p.history.Values(),
	}
	for _, pos := range p.Positions() {
		snap.Positions = append(snap.Positions, PositionSnapshot{
			Ticker:       pos.Ticker(),
			Quantity:     pos.quantity,
			AveragePrice: pos.averagePrice,
			TotalCost:    pos.totalCost,
		})
	}
	for _, tx := range p.transactions {
		snap.Transactions = append(snap.Transactions, tx.Snapshot())
	}
	return snap
}

// FromSnapshot rebuilds a portfolio, resolving position companies through
// the market handle. Positions whose ticker no longer exists are dropped
// with a warning rather than failing the whole load.
func FromSnapshot(snap Snapshot, h *market.Handle, log zerolog.Logger) *Portfolio {
	p := New(snap.Cash, log)
	p.initialInvestment = snap.InitialInvestment
	p.totalDividends = snap.TotalDividends
	p.previousDayValue = snap.PreviousDayValue

	m, ok := h.Resolve()
	for _, ps := range snap.Positions {
		if !ok {
			break
		}
		c, found := m.CompanyByTicker(ps.Ticker)
		if !found {
			log.Warn().Str("ticker", ps.Ticker).Msg("dropping position for unknown ticker")
			continue
		}
		p.positions[ps.Ticker] = &Position{
			company:      c,
			quantity:     ps.Quantity,
			averagePrice: ps.AveragePrice,
			totalCost:    ps.TotalCost,
		}
	}
	for _, ts := range snap.Transactions {
		p.transactions = append(p.transactions, TransactionFromSnapshot(ts))
	}
	p.history = ring.New[HistoryPoint](historyCap)
	for _, hp := range snap.History {
		p.history.Push(hp)
	}
	return p
}

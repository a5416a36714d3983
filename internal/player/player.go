// Package player implements the trading façade: buy/sell with commission,
// margin borrowing with forced liquidation, a loan book and the daily state
// pipeline.
package player

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/zappabad/paperhands/internal/calendar"
	"github.com/zappabad/paperhands/internal/loan"
	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/portfolio"
)

// suddenDropThreshold forces a margin call when the stock value falls below
// this fraction of the previous day's stock value while margin is in use.
const suddenDropThreshold = 0.7

// Player owns one portfolio and a loan book, and borrows on margin against
// the shared market. Business-rule rejections return false with the reason
// available via LastError.
type Player struct {
	cfg  Config
	log  zerolog.Logger
	name string

	portfolio *portfolio.Portfolio
	loans     []*loan.Loan
	market    *market.Handle

	marginBalance     float64 // collateral, separate from cash
	marginUsed        float64 // borrowed against margin, accrues interest
	marginRequirement float64

	currentDay         int
	previousStockValue float64
	hasPreviousDay     bool
	lastError          string
}

// New creates a player bound to the given market handle.
func New(name string, cfg Config, h *market.Handle, log zerolog.Logger) *Player {
	req := cfg.MarginRequirement
	if req < 0.1 {
		req = 0.1
	}
	if req > 1.0 {
		req = 1.0
	}
	return &Player{
		cfg:               cfg,
		log:               log,
		name:              name,
		portfolio:         portfolio.New(cfg.StartingCash, log),
		market:            h,
		marginRequirement: req,
	}
}

func (p *Player) fail(format string, args ...any) bool {
	p.lastError = fmt.Sprintf(format, args...)
	p.log.Debug().Str("player", p.name).Msg(p.lastError)
	return false
}

// BuyStock buys at the current market price. When cash falls short and
// useMargin is set, the shortfall is borrowed against margin as a virtual
// cash top-up; if the underlying buy still fails the draw is rolled back.
func (p *Player) BuyStock(ticker string, quantity int, useMargin bool) bool {
	if quantity <= 0 {
		return p.fail("quantity must be positive")
	}
	m, ok := p.market.Resolve()
	if !ok {
		return p.fail("no market available")
	}
	c, found := m.CompanyByTicker(ticker)
	if !found {
		return p.fail("unknown ticker %s", ticker)
	}

	price := c.Stock().CurrentPrice()
	totalCost := price * float64(quantity) * (1 + p.cfg.CommissionRate)
	cash := p.portfolio.CashBalance()

	var drawn float64
	if totalCost > cash {
		if !useMargin {
			return p.fail("insufficient funds: need %.2f, have %.2f", totalCost, cash)
		}
		shortfall := totalCost - cash
		if shortfall > p.MarginAvailable() {
			return p.fail("margin limit exceeded: need %.2f, available %.2f", shortfall, p.MarginAvailable())
		}
		drawn = shortfall
		p.marginUsed += drawn
		p.portfolio.CreditCash(drawn)
	}

	if !p.portfolio.BuyStock(c, quantity, price, p.cfg.CommissionRate, p.currentDay) {
		// Roll the margin draw back so the books stay consistent.
		if drawn > 0 {
			p.portfolio.DebitCash(drawn)
			p.marginUsed -= drawn
		}
		return p.fail("purchase failed")
	}
	p.lastError = ""
	return true
}

// SellStock sells at the current market price. Outstanding margin is repaid
// opportunistically from the proceeds before the cash is the player's to
// withdraw.
func (p *Player) SellStock(ticker string, quantity int) bool {
	m, ok := p.market.Resolve()
	if !ok {
		return p.fail("no market available")
	}
	c, found := m.CompanyByTicker(ticker)
	if !found {
		return p.fail("unknown ticker %s", ticker)
	}

	price := c.Stock().CurrentPrice()
	if !p.portfolio.SellStock(c, quantity, price, p.cfg.CommissionRate, p.currentDay) {
		return p.fail("sale failed")
	}

	if p.marginUsed > 0 {
		proceeds := price * float64(quantity) * (1 - p.cfg.CommissionRate)
		repay := math.Min(p.marginUsed, proceeds)
		if p.portfolio.DebitCash(repay) {
			p.marginUsed -= repay
		}
	}
	p.lastError = ""
	return true
}

// TakeLoan adds a loan to the book and credits the principal as cash.
func (p *Player) TakeLoan(amount, annualRate float64, durationDays int) bool {
	if amount <= 0 || annualRate < 0 || durationDays <= 0 {
		return p.fail("invalid loan terms")
	}
	l := loan.New(amount, annualRate, durationDays, p.currentDay, p.cfg.LoanPenaltyRate)
	p.loans = append(p.loans, l)
	p.portfolio.CreditCash(amount)
	p.lastError = ""
	return true
}

// RepayLoan settles the loan at the given index in full from cash.
func (p *Player) RepayLoan(index int) bool {
	if index < 0 || index >= len(p.loans) {
		return p.fail("loan index %d out of range", index)
	}
	l := p.loans[index]
	if l.IsPaid() {
		return p.fail("loan already repaid")
	}
	due := l.TotalDue()
	if !p.portfolio.DebitCash(due) {
		return p.fail("insufficient funds to repay %.2f", due)
	}
	l.MarkPaid()
	p.lastError = ""
	return true
}

// DepositMargin moves cash into the margin account as collateral.
func (p *Player) DepositMargin(amount float64) bool {
	if amount <= 0 {
		return p.fail("deposit must be positive")
	}
	if !p.portfolio.DebitCash(amount) {
		return p.fail("insufficient cash for margin deposit")
	}
	p.marginBalance += amount
	p.lastError = ""
	return true
}

// WithdrawMargin moves collateral back to cash, refused when it would
// trigger a margin call.
func (p *Player) WithdrawMargin(amount float64) bool {
	if amount <= 0 || amount > p.marginBalance {
		return p.fail("invalid margin withdrawal")
	}
	p.marginBalance -= amount
	if p.CheckMarginCall() {
		p.marginBalance += amount
		return p.fail("withdrawal would trigger a margin call")
	}
	p.portfolio.CreditCash(amount)
	p.lastError = ""
	return true
}

// MarginAvailable is the remaining borrowing capacity against held stock
// and collateral.
func (p *Player) MarginAvailable() float64 {
	avail := p.portfolio.StockValue()*(1-p.marginRequirement) + p.marginBalance - p.marginUsed
	return math.Max(0, avail)
}

// CheckMarginCall reports whether a margin call is in force. The primary
// trigger is equity below maintenance; the secondary is a sudden drop below
// 70% of the prior day's stock value while margin is in use.
func (p *Player) CheckMarginCall() bool {
	stockValue := p.portfolio.StockValue()
	equity := stockValue + p.marginBalance - p.marginUsed
	if equity < stockValue*p.marginRequirement {
		return true
	}
	if p.hasPreviousDay && p.marginUsed > 0 && stockValue < p.previousStockValue*suddenDropThreshold {
		return true
	}
	return false
}

// UpdateDailyState runs the player's daily pipeline: loan accrual, margin
// interest, and margin-call resolution. Liquidation is a single pass over
// the worst position; severe shortfalls resolve over multiple days.
func (p *Player) UpdateDailyState() {
	for _, l := range p.loans {
		l.Update(p.currentDay)
	}

	if p.marginUsed > 0 {
		p.marginUsed += p.marginUsed * p.cfg.MarginInterestRate / 365
	}

	if p.CheckMarginCall() {
		p.resolveMarginCall()
	}
}

// resolveMarginCall covers the equity deficit from cash when possible,
// otherwise force-sells about 10% of the worst-performing position and
// moves the resulting cash into the margin account.
func (p *Player) resolveMarginCall() {
	stockValue := p.portfolio.StockValue()
	equity := stockValue + p.marginBalance - p.marginUsed
	deficit := stockValue*p.marginRequirement - equity
	if deficit <= 0 {
		return
	}
	p.log.Warn().Str("player", p.name).Float64("deficit", deficit).Msg("margin call")

	if p.portfolio.CashBalance() >= deficit {
		if p.portfolio.DebitCash(deficit) {
			p.marginBalance += deficit
		}
		return
	}

	positions := p.portfolio.Positions()
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].UnrealizedPLPercent() < positions[j].UnrealizedPLPercent()
	})

	m, ok := p.market.Resolve()
	if !ok {
		return
	}
	cashBefore := p.portfolio.CashBalance()
	for _, pos := range positions {
		if pos.Quantity() <= 0 {
			continue
		}
		sellQty := pos.Quantity() / 10
		if sellQty < 1 {
			sellQty = 1
		}
		c, found := m.CompanyByTicker(pos.Ticker())
		if !found {
			continue
		}
		price := c.Stock().CurrentPrice()
		if p.portfolio.SellStock(c, sellQty, price, p.cfg.CommissionRate, p.currentDay) {
			p.log.Warn().Str("ticker", pos.Ticker()).Int("quantity", sellQty).Msg("forced liquidation")
			break
		}
	}

	raised := p.portfolio.CashBalance() - cashBefore
	transfer := math.Min(raised, deficit)
	if transfer > 0 && p.portfolio.DebitCash(transfer) {
		p.marginBalance += transfer
	}
}

// CloseDay closes the portfolio's day and advances the day counter.
func (p *Player) CloseDay() {
	p.portfolio.CloseDay(p.currentDay)
	p.previousStockValue = p.portfolio.StockValue()
	p.hasPreviousDay = true
	p.currentDay++
}

// OpenDay snapshots the portfolio value for day-over-day change.
func (p *Player) OpenDay() {
	p.portfolio.OpenDay()
}

// NetWorth is cash plus stock plus collateral, minus unpaid loans and
// borrowed margin.
func (p *Player) NetWorth() float64 {
	worth := p.portfolio.TotalValue() + p.marginBalance - p.marginUsed
	for _, l := range p.loans {
		if !l.IsPaid() {
			worth -= l.TotalDue()
		}
	}
	return worth
}

// Name returns the player name.
func (p *Player) Name() string { return p.name }

// Portfolio returns the owned portfolio.
func (p *Player) Portfolio() *portfolio.Portfolio { return p.portfolio }

// Loans returns the loan book, including repaid loans.
func (p *Player) Loans() []*loan.Loan {
	out := make([]*loan.Loan, len(p.loans))
	copy(out, p.loans)
	return out
}

// MarginBalance returns the collateral on deposit.
func (p *Player) MarginBalance() float64 { return p.marginBalance }

// MarginUsed returns the amount borrowed against margin.
func (p *Player) MarginUsed() float64 { return p.marginUsed }

// MarginRequirement returns the maintenance fraction.
func (p *Player) MarginRequirement() float64 { return p.marginRequirement }

// CurrentDay returns the player's day counter.
func (p *Player) CurrentDay() int { return p.currentDay }

// CurrentDate returns the player's day counter as a calendar date.
func (p *Player) CurrentDate() calendar.Date { return calendar.FromDayNumber(p.currentDay) }

// LastError returns the reason of the most recent rejection.
func (p *Player) LastError() string { return p.lastError }

// Package portfolio tracks a player's cash, positions and executed trades.
package portfolio

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// TransactionType distinguishes buys from sells.
type TransactionType uint8

const (
	TransactionBuy TransactionType = iota
	TransactionSell
)

func (t TransactionType) String() string {
	switch t {
	case TransactionBuy:
		return "Buy"
	case TransactionSell:
		return "Sell"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TransactionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TransactionType) UnmarshalText(text []byte) error {
	if string(text) == "Sell" {
		*t = TransactionSell
	} else {
		*t = TransactionBuy
	}
	return nil
}

// ErrAlreadyExecuted is returned when a transaction is executed twice.
// Double execution is a caller bug, not a trading outcome.
var ErrAlreadyExecuted = errors.New("portfolio: transaction already executed")

// Transaction is an immutable record of one executed trade.
type Transaction struct {
	id             uuid.UUID
	kind           TransactionType
	ticker         string
	companyName    string
	quantity       int
	pricePerShare  float64
	commissionRate float64
	day            int
	executed       bool
	status         string
}

// NewTransaction validates and creates a pending transaction. Quantity and
// price must be positive; the commission rate must lie in [0, 0.1].
func NewTransaction(kind TransactionType, ticker, companyName string, quantity int, pricePerShare, commissionRate float64, day int) (*Transaction, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("portfolio: non-positive quantity %d", quantity)
	}
	if pricePerShare <= 0 {
		return nil, fmt.Errorf("portfolio: non-positive price %f", pricePerShare)
	}
	if commissionRate < 0 || commissionRate > 0.1 {
		return nil, fmt.Errorf("portfolio: commission rate %f outside [0, 0.1]", commissionRate)
	}
	return &Transaction{
		id:             uuid.New(),
		kind:           kind,
		ticker:         ticker,
		companyName:    companyName,
		quantity:       quantity,
		pricePerShare:  pricePerShare,
		commissionRate: commissionRate,
		day:            day,
	}, nil
}

// Execute marks the transaction executed. It fires exactly once; a second
// call is an error.
func (t *Transaction) Execute() error {
	if t.executed {
		return ErrAlreadyExecuted
	}
	t.executed = true
	t.status = "executed"
	return nil
}

// CommissionAmount is the commission charged on the gross value.
func (t *Transaction) CommissionAmount() float64 {
	return float64(t.quantity) * t.pricePerShare * t.commissionRate
}

// TotalCost is the full cash effect: gross plus commission for buys, gross
// minus commission for sells.
func (t *Transaction) TotalCost() float64 {
	gross := float64(t.quantity) * t.pricePerShare
	if t.kind == TransactionBuy {
		return gross + t.CommissionAmount()
	}
	return gross - t.CommissionAmount()
}

// ID returns the stable transaction identity.
func (t *Transaction) ID() uuid.UUID { return t.id }

// Type returns the transaction type.
func (t *Transaction) Type() TransactionType { return t.kind }

// Ticker returns the traded ticker.
func (t *Transaction) Ticker() string { return t.ticker }

// CompanyName returns the traded company's display name.
func (t *Transaction) CompanyName() string { return t.companyName }

// Quantity returns the traded share count.
func (t *Transaction) Quantity() int { return t.quantity }

// PricePerShare returns the execution price.
func (t *Transaction) PricePerShare() float64 { return t.pricePerShare }

// CommissionRate returns the applied commission rate.
func (t *Transaction) CommissionRate() float64 { return t.commissionRate }

// Day returns the execution day.
func (t *Transaction) Day() int { return t.day }

// Executed reports whether the transaction has fired.
func (t *Transaction) Executed() bool { return t.executed }

// Status returns the free-text status.
func (t *Transaction) Status() string { return t.status }

// SetStatus sets the free-text status.
func (t *Transaction) SetStatus(s string) { t.status = s }

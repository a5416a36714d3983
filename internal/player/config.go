package player

// Config holds the player's trading terms.
type Config struct {
	// StartingCash seeds the portfolio.
	StartingCash float64 `toml:"starting_cash"`
	// CommissionRate is charged on every player trade.
	CommissionRate float64 `toml:"commission_rate"`
	// MarginRequirement is the maintenance fraction, clamped to [0.1, 1.0].
	MarginRequirement float64 `toml:"margin_requirement"`
	// MarginInterestRate is the annual rate charged on borrowed margin.
	MarginInterestRate float64 `toml:"margin_interest_rate"`
	// LoanPenaltyRate is the daily penalty rate on overdue loans.
	LoanPenaltyRate float64 `toml:"loan_penalty_rate"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		StartingCash:       10000,
		CommissionRate:     0.01,
		MarginRequirement:  0.5,
		MarginInterestRate: 0.07,
		LoanPenaltyRate:    0.001,
	}
}

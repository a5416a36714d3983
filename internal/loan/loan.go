// Package loan implements an amortizing debt instrument with penalty
// escalation past its due day.
package loan

// Loan accrues simple daily interest while active and a daily penalty once
// overdue. Marking it paid is terminal: accrual stops and the totals freeze
// so the loan can stay on the books for audit.
type Loan struct {
	amount          float64
	interestRate    float64 // annual
	durationDays    int
	takenOnDay      int
	dueDay          int
	interestAccrued float64
	penaltyRate     float64 // per overdue day, on principal
	penaltyAccrued  float64
	paid            bool
}

// New creates an active loan taken on the given day.
func New(amount, interestRate float64, durationDays, takenOnDay int, penaltyRate float64) *Loan {
	return &Loan{
		amount:       amount,
		interestRate: interestRate,
		durationDays: durationDays,
		takenOnDay:   takenOnDay,
		dueDay:       takenOnDay + durationDays,
		penaltyRate:  penaltyRate,
	}
}

// Update accrues one day of interest, plus one day of penalty when the loan
// is past due. No-op once paid.
func (l *Loan) Update(day int) {
	if l.paid {
		return
	}
	l.interestAccrued += l.amount * l.interestRate / 365
	if day > l.dueDay {
		l.penaltyAccrued += l.amount * l.penaltyRate
	}
}

// MarkPaid flips the loan into its terminal paid state. Idempotent.
func (l *Loan) MarkPaid() {
	l.paid = true
}

// TotalDue is principal plus accrued interest and penalty, regardless of
// paid state (frozen after payment).
func (l *Loan) TotalDue() float64 {
	return l.amount + l.interestAccrued + l.penaltyAccrued
}

// IsOverdue reports whether the loan is unpaid past its due day.
func (l *Loan) IsOverdue(day int) bool {
	return !l.paid && day > l.dueDay
}

// DaysRemaining returns days until due, zero once due or paid.
func (l *Loan) DaysRemaining(day int) int {
	if l.paid || day >= l.dueDay {
		return 0
	}
	return l.dueDay - day
}

// Amount returns the principal.
func (l *Loan) Amount() float64 { return l.amount }

// InterestRate returns the annual interest rate.
func (l *Loan) InterestRate() float64 { return l.interestRate }

// DurationDays returns the agreed term.
func (l *Loan) DurationDays() int { return l.durationDays }

// TakenOnDay returns the origination day.
func (l *Loan) TakenOnDay() int { return l.takenOnDay }

// DueDay returns the repayment deadline.
func (l *Loan) DueDay() int { return l.dueDay }

// InterestAccrued returns the accumulated interest.
func (l *Loan) InterestAccrued() float64 { return l.interestAccrued }

// PenaltyRate returns the daily penalty rate.
func (l *Loan) PenaltyRate() float64 { return l.penaltyRate }

// PenaltyAccrued returns the accumulated penalty.
func (l *Loan) PenaltyAccrued() float64 { return l.penaltyAccrued }

// IsPaid reports whether the loan has been repaid.
func (l *Loan) IsPaid() bool { return l.paid }

// Snapshot is the serialized form of a Loan.
type Snapshot struct {
	Amount          float64 `json:"amount"`
	InterestRate    float64 `json:"interest_rate"`
	DurationDays    int     `json:"duration_days"`
	TakenOnDay      int     `json:"taken_on_day"`
	DueDay          int     `json:"due_day"`
	InterestAccrued float64 `json:"interest_accrued"`
	PenaltyRate     float64 `json:"penalty_rate"`
	PenaltyAccrued  float64 `json:"penalty_accrued"`
	IsPaid          bool    `json:"is_paid"`
}

// Snapshot serializes the loan.
func (l *Loan) Snapshot() Snapshot {
	return Snapshot{
		Amount:          l.amount,
		InterestRate:    l.interestRate,
		DurationDays:    l.durationDays,
		TakenOnDay:      l.takenOnDay,
		DueDay:          l.dueDay,
		InterestAccrued: l.interestAccrued,
		PenaltyRate:     l.penaltyRate,
		PenaltyAccrued:  l.penaltyAccrued,
		IsPaid:          l.paid,
	}
}

// FromSnapshot rebuilds a loan from its serialized form.
func FromSnapshot(snap Snapshot) *Loan {
	return &Loan{
		amount:          snap.Amount,
		interestRate:    snap.InterestRate,
		durationDays:    snap.DurationDays,
		takenOnDay:      snap.TakenOnDay,
		dueDay:          snap.DueDay,
		interestAccrued: snap.InterestAccrued,
		penaltyRate:     snap.PenaltyRate,
		penaltyAccrued:  snap.PenaltyAccrued,
		paid:            snap.IsPaid,
	}
}

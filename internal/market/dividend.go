package market

// DividendPolicy schedules a company's dividend payments on the absolute
// day counter. A frequency of 0 means the company never pays; a
// nextPaymentDay of 0 means no payment is scheduled yet.
type DividendPolicy struct {
	annualRate     float64 // per-share amount paid over a full year
	frequency      int     // payments per year
	nextPaymentDay int
}

// NewDividendPolicy creates a policy paying annualRate per share per year in
// `frequency` installments. The first payment fires only once scheduled via
// ScheduleNextPayment.
func NewDividendPolicy(annualRate float64, frequency int) DividendPolicy {
	return DividendPolicy{annualRate: annualRate, frequency: frequency}
}

// DaysBetweenPayments derives the payment cadence. Zero when the policy
// never pays.
func (p DividendPolicy) DaysBetweenPayments() int {
	if p.frequency <= 0 {
		return 0
	}
	return 365 / p.frequency
}

// ShouldPay reports whether a payment is due on the given day.
func (p DividendPolicy) ShouldPay(day int) bool {
	return p.frequency > 0 && p.annualRate > 0 && p.nextPaymentDay != 0 && day >= p.nextPaymentDay
}

// ScheduleNextPayment sets the next payment day explicitly.
func (p *DividendPolicy) ScheduleNextPayment(day int) {
	p.nextPaymentDay = day
}

// MarkPaid reschedules the next payment relative to the paying day, not the
// original cadence. Late processing therefore shifts the whole schedule
// instead of catching up.
func (p *DividendPolicy) MarkPaid(day int) {
	p.nextPaymentDay = day + p.DaysBetweenPayments()
}

// PerShareAmount returns the amount paid per share per installment.
func (p DividendPolicy) PerShareAmount() float64 {
	if p.frequency <= 0 {
		return 0
	}
	return p.annualRate / float64(p.frequency)
}

// AnnualRate returns the yearly per-share amount.
func (p DividendPolicy) AnnualRate() float64 { return p.annualRate }

// Frequency returns the number of payments per year.
func (p DividendPolicy) Frequency() int { return p.frequency }

// NextPaymentDay returns the scheduled payment day, 0 if unscheduled.
func (p DividendPolicy) NextPaymentDay() int { return p.nextPaymentDay }

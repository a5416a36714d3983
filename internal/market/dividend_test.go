package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDividendCadence(t *testing.T) {
	p := NewDividendPolicy(4.0, 4)
	assert.Equal(t, 91, p.DaysBetweenPayments())
	assert.InDelta(t, 1.0, p.PerShareAmount(), 1e-9)

	none := NewDividendPolicy(0, 0)
	assert.Zero(t, none.DaysBetweenPayments())
	assert.Zero(t, none.PerShareAmount())
}

func TestShouldPayRequiresSchedule(t *testing.T) {
	p := NewDividendPolicy(4.0, 4)
	assert.False(t, p.ShouldPay(100), "unscheduled policies never pay")

	p.ScheduleNextPayment(30)
	assert.False(t, p.ShouldPay(29))
	assert.True(t, p.ShouldPay(30))
	assert.True(t, p.ShouldPay(31), "late processing still pays")
}

func TestMarkPaidShiftsFromPayingDay(t *testing.T) {
	p := NewDividendPolicy(4.0, 4)
	p.ScheduleNextPayment(30)

	// Processed five days late: next payment is anchored to the paying day.
	p.MarkPaid(35)
	assert.Equal(t, 35+91, p.NextPaymentDay())
}

func TestZeroRatePolicyNeverPays(t *testing.T) {
	p := NewDividendPolicy(0, 4)
	p.ScheduleNextPayment(10)
	assert.False(t, p.ShouldPay(10))
}

func TestCompanyProcessDividends(t *testing.T) {
	stock := NewStock(SectorFinance, 100, 0.5, 0.5)
	c := NewCompany("Meridian Trust", "MERT", "", SectorFinance, 0.4, NewDividendPolicy(4.40, 4), stock)
	c.ScheduleDividend(60)

	perShare, paid := c.ProcessDividends(59)
	assert.False(t, paid)
	assert.Zero(t, perShare)

	perShare, paid = c.ProcessDividends(60)
	assert.True(t, paid)
	assert.InDelta(t, 1.10, perShare, 1e-9)
	assert.Equal(t, 60+91, c.Dividend().NextPaymentDay())

	_, paid = c.ProcessDividends(61)
	assert.False(t, paid, "no double payment inside one cadence")
}

package loan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoanSchedule(t *testing.T) {
	l := New(5000, 0.10, 30, 10, 0.001)
	assert.InDelta(t, 5000.0, l.Amount(), 1e-9)
	assert.Equal(t, 40, l.DueDay())
	assert.InDelta(t, 5000.0, l.TotalDue(), 1e-9, "nothing accrued at origination")
	assert.False(t, l.IsOverdue(40), "due day itself is not overdue")
	assert.True(t, l.IsOverdue(41))
	assert.Equal(t, 25, l.DaysRemaining(15))
	assert.Equal(t, 0, l.DaysRemaining(40))
}

func TestUpdateAccruesDailyInterest(t *testing.T) {
	l := New(5000, 0.10, 30, 0, 0.001)
	for day := 1; day <= 10; day++ {
		l.Update(day)
	}
	wantInterest := 10 * 5000 * 0.10 / 365
	assert.InDelta(t, wantInterest, l.InterestAccrued(), 1e-9)
	assert.Zero(t, l.PenaltyAccrued())
	assert.InDelta(t, 5000+wantInterest, l.TotalDue(), 1e-9)
}

func TestUpdateAddsPenaltyPastDue(t *testing.T) {
	l := New(5000, 0.10, 5, 0, 0.001)
	for day := 1; day <= 8; day++ {
		l.Update(day)
	}
	// Days 6, 7 and 8 are past the due day.
	assert.InDelta(t, 3*5000*0.001, l.PenaltyAccrued(), 1e-9)
	assert.InDelta(t, 8*5000*0.10/365, l.InterestAccrued(), 1e-9)
}

func TestTotalDueMonotonicWhileActive(t *testing.T) {
	l := New(1000, 0.07, 10, 0, 0.001)
	prev := l.TotalDue()
	for day := 1; day <= 30; day++ {
		l.Update(day)
		require.Greater(t, l.TotalDue(), prev)
		prev = l.TotalDue()
	}
}

func TestMarkPaidFreezesAccrual(t *testing.T) {
	l := New(1000, 0.07, 10, 0, 0.001)
	l.Update(1)
	due := l.TotalDue()

	l.MarkPaid()
	assert.True(t, l.IsPaid())
	for day := 2; day <= 50; day++ {
		l.Update(day)
	}
	assert.InDelta(t, due, l.TotalDue(), 1e-9, "paid loans stop accruing")
	assert.False(t, l.IsOverdue(50))
	assert.Equal(t, 0, l.DaysRemaining(5))

	l.MarkPaid()
	assert.True(t, l.IsPaid(), "MarkPaid is idempotent")
}

func TestSnapshotRoundTrip(t *testing.T) {
	l := New(5000, 0.10, 5, 3, 0.002)
	for day := 4; day <= 12; day++ {
		l.Update(day)
	}

	restored := FromSnapshot(l.Snapshot())
	assert.InDelta(t, l.TotalDue(), restored.TotalDue(), 1e-9)
	assert.Equal(t, l.DueDay(), restored.DueDay())
	assert.Equal(t, l.IsPaid(), restored.IsPaid())
	assert.InDelta(t, l.PenaltyAccrued(), restored.PenaltyAccrued(), 1e-9)
}

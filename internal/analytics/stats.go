// Package analytics provides return and volatility statistics over price
// series.
package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// DailyReturns converts a price series to fractional day-over-day returns.
func DailyReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
		}
	}
	return returns
}

// Mean returns the arithmetic mean, 0 for an empty series.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev returns the sample standard deviation, 0 for fewer than two
// values.
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// AnnualizedVolatility scales the daily return deviation to a 252-trading-
// day year.
func AnnualizedVolatility(dailyReturns []float64) float64 {
	return StdDev(dailyReturns) * math.Sqrt(252)
}

// MaxDrawdown returns the largest peak-to-trough loss fraction in a price
// series.
func MaxDrawdown(prices []float64) float64 {
	var peak, worst float64
	for _, p := range prices {
		if p > peak {
			peak = p
		}
		if peak > 0 {
			dd := (peak - p) / peak
			if dd > worst {
				worst = dd
			}
		}
	}
	return worst
}

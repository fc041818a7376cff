package calculator

import (
	"errors"
	"math"
)

// CalculateSMA computes the simple moving average of the last period prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// RollingSMA returns the simple moving average at every index. Entries before the
// window is full are NaN.
func RollingSMA(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := nanSeries(len(prices))
	for i := period - 1; i < len(prices); i++ {
		sma, err := CalculateSMA(prices[:i+1], period)
		if err != nil {
			return nil, err
		}
		out[i] = sma
	}
	return out, nil
}

// RollingStdDev returns the population standard deviation (ddof=0) over a trailing
// window at every index.
func RollingStdDev(prices []float64, period int) ([]float64, error) {
	means, err := RollingSMA(prices, period)
	if err != nil {
		return nil, err
	}
	out := nanSeries(len(prices))
	for i := period - 1; i < len(prices); i++ {
		var ss float64
		for j := i - period + 1; j <= i; j++ {
			d := prices[j] - means[i]
			ss += d * d
		}
		out[i] = math.Sqrt(ss / float64(period))
	}
	return out, nil
}

// MA50 returns the 50-day rolling mean.
func MA50(closes []float64) ([]float64, error) { return RollingSMA(closes, 50) }

// MA200 returns the 200-day rolling mean.
func MA200(closes []float64) ([]float64, error) { return RollingSMA(closes, 200) }

func nanSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

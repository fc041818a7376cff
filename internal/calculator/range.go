package calculator

import (
	"errors"
	"math"
)

// RollingMax returns the highest value over a trailing window at every index.
func RollingMax(values []float64, period int) ([]float64, error) {
	return rollingExtreme(values, period, func(a, b float64) bool { return a > b })
}

// RollingMin returns the lowest value over a trailing window at every index.
func RollingMin(values []float64, period int) ([]float64, error) {
	return rollingExtreme(values, period, func(a, b float64) bool { return a < b })
}

func rollingExtreme(values []float64, period int, better func(a, b float64) bool) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := nanSeries(len(values))
	for i := period - 1; i < len(values); i++ {
		ext := values[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			if better(values[j], ext) {
				ext = values[j]
			}
		}
		out[i] = ext
	}
	return out, nil
}

// Stochastic computes the %K line: 100 * (close - lowest low) / (highest high - lowest low)
// over the trailing window. A zero-width range yields NaN or ±Inf, as plain float
// division does.
func Stochastic(highs, lows, closes []float64, period int) ([]float64, error) {
	if len(highs) != len(closes) || len(lows) != len(closes) {
		return nil, errors.New("high, low and close series must have equal length")
	}
	hh, err := RollingMax(highs, period)
	if err != nil {
		return nil, err
	}
	ll, err := RollingMin(lows, period)
	if err != nil {
		return nil, err
	}
	out := nanSeries(len(closes))
	for i := range closes {
		if math.IsNaN(hh[i]) || math.IsNaN(ll[i]) {
			continue
		}
		out[i] = 100 * (closes[i] - ll[i]) / (hh[i] - ll[i])
	}
	return out, nil
}

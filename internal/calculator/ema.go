package calculator

import (
	"errors"
	"math"
)

// EMA computes the recursive exponential moving average with alpha = 2/(span+1).
// The first span-1 defined inputs produce NaN.
func EMA(values []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, errors.New("span must be positive")
	}
	return ewm(values, 2/(float64(span)+1), span), nil
}

// ewm is the recursive weighting y0 = x0, y += alpha*(x-y). Leading NaN inputs are
// skipped so the recursion starts at the first defined value; minPeriods counts
// defined observations.
func ewm(values []float64, alpha float64, minPeriods int) []float64 {
	out := nanSeries(len(values))
	var y float64
	seen := 0
	for i, x := range values {
		if math.IsNaN(x) {
			if seen >= minPeriods {
				out[i] = y
			}
			continue
		}
		if seen == 0 {
			y = x
		} else {
			y += alpha * (x - y)
		}
		seen++
		if seen >= minPeriods {
			out[i] = y
		}
	}
	return out
}

package calculator

import (
	"errors"
	"math"
)

// RSIPeriod is the default RSI lookback.
const RSIPeriod = 14

// CalculateRSI computes the Wilder-smoothed RSI at every index. Gains and losses are
// smoothed with alpha = 1/period starting from the first bar (whose change counts as
// zero); the first period-1 values are NaN. When the average loss is zero the RSI
// is 100.
func CalculateRSI(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else if change < 0 {
			losses[i] = -change
		}
	}

	alpha := 1 / float64(period)
	avgGain := ewm(gains, alpha, period)
	avgLoss := ewm(losses, alpha, period)

	out := nanSeries(len(closes))
	for i := range closes {
		switch {
		case math.IsNaN(avgLoss[i]) || math.IsNaN(avgGain[i]):
		case avgLoss[i] == 0:
			out[i] = 100.0
		default:
			rs := avgGain[i] / avgLoss[i]
			out[i] = 100.0 - 100.0/(1.0+rs)
		}
	}
	return out, nil
}

package calculator

import (
	"errors"
	"math"
)

// MACD periods used by the reference statistics library.
const (
	MACDFast   = 12
	MACDSlow   = 26
	MACDSignal = 9
)

// MACDHistogram returns the MACD line minus its signal line.
func MACDHistogram(closes []float64, fast, slow, signal int) ([]float64, error) {
	if fast >= slow {
		return nil, errors.New("fast period must be shorter than slow period")
	}
	emaFast, err := EMA(closes, fast)
	if err != nil {
		return nil, err
	}
	emaSlow, err := EMA(closes, slow)
	if err != nil {
		return nil, err
	}
	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = emaFast[i] - emaSlow[i] // NaN propagates
	}
	sig, err := EMA(line, signal)
	if err != nil {
		return nil, err
	}
	hist := make([]float64, len(closes))
	for i := range closes {
		if math.IsNaN(line[i]) || math.IsNaN(sig[i]) {
			hist[i] = math.NaN()
			continue
		}
		hist[i] = line[i] - sig[i]
	}
	return hist, nil
}

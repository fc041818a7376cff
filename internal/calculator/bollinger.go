package calculator

// Bollinger band defaults.
const (
	BollingerPeriod = 20
	BollingerDev    = 2.0
)

// BollingerBands returns the upper and lower bands: rolling mean ± dev population
// standard deviations.
func BollingerBands(closes []float64, period int, dev float64) (high, low []float64, err error) {
	mid, err := RollingSMA(closes, period)
	if err != nil {
		return nil, nil, err
	}
	std, err := RollingStdDev(closes, period)
	if err != nil {
		return nil, nil, err
	}
	high = make([]float64, len(closes))
	low = make([]float64, len(closes))
	for i := range closes {
		high[i] = mid[i] + dev*std[i]
		low[i] = mid[i] - dev*std[i]
	}
	return high, low, nil
}

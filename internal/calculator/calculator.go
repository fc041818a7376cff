package calculator

import (
	"errors"
	"fmt"

	"StockPicker/internal/model"
)

// StochPeriod is the stochastic oscillator lookback.
const StochPeriod = 14

// ErrEmptySeries is returned when there is nothing to compute on.
var ErrEmptySeries = errors.New("empty price series")

// Compute derives all indicator series from a cleaned price series.
func Compute(series *model.PriceSeries) (*model.Analysis, error) {
	if series.Empty() {
		return nil, ErrEmptySeries
	}
	adj := series.AdjCloses()
	a := &model.Analysis{Series: series}

	var err error
	if a.MACD, err = MACDHistogram(adj, MACDFast, MACDSlow, MACDSignal); err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}
	if a.RSI, err = CalculateRSI(adj, RSIPeriod); err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}
	if a.BBHigh, a.BBLow, err = BollingerBands(adj, BollingerPeriod, BollingerDev); err != nil {
		return nil, fmt.Errorf("bollinger: %w", err)
	}
	if a.MA50, err = MA50(adj); err != nil {
		return nil, fmt.Errorf("ma50: %w", err)
	}
	if a.MA200, err = MA200(adj); err != nil {
		return nil, fmt.Errorf("ma200: %w", err)
	}
	// High/Low stay unadjusted.
	if a.Stoch, err = Stochastic(series.Highs(), series.Lows(), adj, StochPeriod); err != nil {
		return nil, fmt.Errorf("stochastic: %w", err)
	}
	return a, nil
}

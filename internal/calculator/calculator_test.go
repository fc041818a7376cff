package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockPicker/internal/model"
)

func linear(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func countNaN(values []float64) int {
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

func TestCalculateSMA(t *testing.T) {
	sma, err := CalculateSMA([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assert.Equal(t, 4.0, sma)

	_, err = CalculateSMA([]float64{1, 2}, 3)
	assert.Error(t, err)
	_, err = CalculateSMA([]float64{1, 2}, 0)
	assert.Error(t, err)
}

func TestRollingSMA_LeadingNaN(t *testing.T) {
	out, err := RollingSMA(linear(60, 1, 1), 50)
	require.NoError(t, err)
	assert.Equal(t, 49, countNaN(out))
	assert.Equal(t, 25.5, out[49])
	assert.Equal(t, 35.5, out[59])
}

func TestRollingStdDev_Population(t *testing.T) {
	out, err := RollingStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}, 8)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, out[7], 1e-12)
	assert.True(t, math.IsNaN(out[6]))
}

func TestEMA(t *testing.T) {
	out, err := EMA([]float64{1, 2, 3, 4}, 3)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.Equal(t, 2.25, out[2])
	assert.Equal(t, 3.125, out[3])
}

func TestEMA_SkipsLeadingNaN(t *testing.T) {
	nan := math.NaN()
	out, err := EMA([]float64{nan, nan, 1, 2, 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, countNaN(out))
	// alpha = 2/3: y=1, y=1+2/3, y=5/3+2/3*(3-5/3)
	assert.InDelta(t, 5.0/3.0, out[3], 1e-12)
	assert.InDelta(t, 5.0/3.0+(2.0/3.0)*(3-5.0/3.0), out[4], 1e-12)
}

func TestCalculateRSI(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		check  func(t *testing.T, rsi float64)
	}{
		{"rising", linear(40, 100, 1), func(t *testing.T, rsi float64) { assert.Equal(t, 100.0, rsi) }},
		{"flat", linear(40, 100, 0), func(t *testing.T, rsi float64) { assert.Equal(t, 100.0, rsi) }},
		{"falling", linear(40, 100, -1), func(t *testing.T, rsi float64) { assert.Equal(t, 0.0, rsi) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := CalculateRSI(tt.closes, RSIPeriod)
			require.NoError(t, err)
			assert.Equal(t, RSIPeriod-1, countNaN(out))
			tt.check(t, out[len(out)-1])
		})
	}
}

func TestCalculateRSI_Bounded(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100 + 5*math.Sin(float64(i)/3)
	}
	out, err := CalculateRSI(closes, RSIPeriod)
	require.NoError(t, err)
	for _, v := range out[RSIPeriod-1:] {
		assert.Greater(t, v, 0.0)
		assert.Less(t, v, 100.0)
	}
}

func TestMACDHistogram_Flat(t *testing.T) {
	out, err := MACDHistogram(linear(100, 42, 0), MACDFast, MACDSlow, MACDSignal)
	require.NoError(t, err)
	// slow EMA masks 25 values, signal EMA masks 8 more
	assert.Equal(t, MACDSlow-1+MACDSignal-1, countNaN(out))
	for _, v := range out[33:] {
		assert.Equal(t, 0.0, v)
	}
}

func TestMACDHistogram_InvalidPeriods(t *testing.T) {
	_, err := MACDHistogram(linear(10, 1, 1), 26, 12, 9)
	assert.Error(t, err)
}

func TestBollingerBands_FlatCollapses(t *testing.T) {
	high, low, err := BollingerBands(linear(30, 50, 0), BollingerPeriod, BollingerDev)
	require.NoError(t, err)
	assert.Equal(t, 50.0, high[29])
	assert.Equal(t, 50.0, low[29])
	assert.True(t, math.IsNaN(low[18]))
}

func TestStochastic(t *testing.T) {
	highs := []float64{10, 12, 11}
	lows := []float64{8, 9, 7}
	closes := []float64{9, 11, 10}
	out, err := Stochastic(highs, lows, closes, 3)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out[1]))
	// (10-7)/(12-7)
	assert.InDelta(t, 60.0, out[2], 1e-12)

	_, err = Stochastic(highs, lows[:2], closes, 3)
	assert.Error(t, err)
}

func TestStochastic_ZeroRange(t *testing.T) {
	flat := linear(20, 5, 0)
	out, err := Stochastic(flat, flat, flat, StochPeriod)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out[19]))
}

func TestCompute(t *testing.T) {
	_, err := Compute(&model.PriceSeries{Symbol: "X"})
	assert.ErrorIs(t, err, ErrEmptySeries)

	closes := linear(250, 100, 1)
	bars := make([]model.OHLCV, len(closes))
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: day.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c, AdjClose: c, Volume: 1000}
	}
	a, err := Compute(&model.PriceSeries{Symbol: "X", Bars: bars})
	require.NoError(t, err)
	for _, s := range [][]float64{a.MACD, a.RSI, a.BBHigh, a.BBLow, a.MA50, a.MA200, a.Stoch} {
		assert.Len(t, s, 250)
	}
	last := a.Row(249)
	assert.Equal(t, 349.0, last.AdjClose)
	assert.Equal(t, 324.5, last.MA50)
	assert.Equal(t, 249.5, last.MA200)
	assert.InDelta(t, 100*14.0/15.0, last.Stoch, 1e-9)
	assert.Len(t, a.Tail(5), 5)
}

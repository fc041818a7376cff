package model

import (
	"math"
	"time"
)

// OHLCV represents a single daily bar. Values the provider left undefined are NaN.
type OHLCV struct {
	Time     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   float64
}

// HasNaN reports whether any field of the bar is undefined.
func (b OHLCV) HasNaN() bool {
	return math.IsNaN(b.Open) || math.IsNaN(b.High) || math.IsNaN(b.Low) ||
		math.IsNaN(b.Close) || math.IsNaN(b.AdjClose) || math.IsNaN(b.Volume)
}

// PriceSeries holds the raw daily bars of one symbol, oldest first.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Len returns the number of bars.
func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

// Empty reports whether the provider returned no data at all.
func (s *PriceSeries) Empty() bool { return s.Len() == 0 }

// DropNA returns a copy of the series without bars that have any undefined field.
func (s *PriceSeries) DropNA() *PriceSeries {
	out := &PriceSeries{Symbol: s.Symbol, FetchedAt: s.FetchedAt}
	out.Bars = make([]OHLCV, 0, len(s.Bars))
	for _, b := range s.Bars {
		if b.HasNaN() {
			continue
		}
		out.Bars = append(out.Bars, b)
	}
	return out
}

// AdjCloses extracts the adjusted close column.
func (s *PriceSeries) AdjCloses() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.AdjClose
	}
	return out
}

// Highs extracts the high column.
func (s *PriceSeries) Highs() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.High
	}
	return out
}

// Lows extracts the low column.
func (s *PriceSeries) Lows() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Low
	}
	return out
}

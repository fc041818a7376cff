package model

import "time"

// Analysis holds a cleaned price series and the indicator series computed on it.
// Every indicator slice has the same length as Series.Bars; entries without enough
// history are NaN.
type Analysis struct {
	Series *PriceSeries
	MACD   []float64 // MACD histogram
	RSI    []float64
	BBHigh []float64
	BBLow  []float64
	MA50   []float64
	MA200  []float64
	Stoch  []float64 // stochastic %K
}

// AnalysisRow is one dated row of an Analysis, as shown in reports.
type AnalysisRow struct {
	Time     time.Time
	AdjClose float64
	MACD     float64
	RSI      float64
	BBHigh   float64
	BBLow    float64
	MA50     float64
	MA200    float64
	Stoch    float64
}

// Len returns the number of rows.
func (a *Analysis) Len() int { return a.Series.Len() }

// Row returns row i.
func (a *Analysis) Row(i int) AnalysisRow {
	b := a.Series.Bars[i]
	return AnalysisRow{
		Time:     b.Time,
		AdjClose: b.AdjClose,
		MACD:     a.MACD[i],
		RSI:      a.RSI[i],
		BBHigh:   a.BBHigh[i],
		BBLow:    a.BBLow[i],
		MA50:     a.MA50[i],
		MA200:    a.MA200[i],
		Stoch:    a.Stoch[i],
	}
}

// Tail returns the last n rows, oldest first.
func (a *Analysis) Tail(n int) []AnalysisRow {
	total := a.Len()
	start := total - n
	if start < 0 {
		start = 0
	}
	rows := make([]AnalysisRow, 0, total-start)
	for i := start; i < total; i++ {
		rows = append(rows, a.Row(i))
	}
	return rows
}

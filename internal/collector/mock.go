package collector

import (
	"context"
	"time"

	"StockPicker/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string][]model.OHLCV
	Errors map[string]error
	Calls  []string
}

func (m *MockFetcher) Name() string { return "mock" }

// FetchDaily returns the configured bars for symbol, clipped to [start, end).
// Unknown symbols yield an empty series.
func (m *MockFetcher) FetchDaily(ctx context.Context, symbol string, start, end time.Time) (*model.PriceSeries, error) {
	m.Calls = append(m.Calls, symbol)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.Errors[symbol]; ok {
		return nil, err
	}
	series := &model.PriceSeries{Symbol: symbol, FetchedAt: time.Now()}
	for _, b := range m.Series[symbol] {
		if b.Time.Before(start) || !b.Time.Before(end) {
			continue
		}
		series.Bars = append(series.Bars, b)
	}
	return series, nil
}

// GenerateBars builds daily bars ending the day before end, one per calendar day,
// from a price function. High and Low sit spread away from the close.
func GenerateBars(end time.Time, count int, spread float64, price func(i int) float64) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	first := end.AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		p := price(i)
		bars[i] = model.OHLCV{
			Time:     first.AddDate(0, 0, i),
			Open:     p,
			High:     p + spread,
			Low:      p - spread,
			Close:    p,
			AdjClose: p,
			Volume:   1000000,
		}
	}
	return bars
}

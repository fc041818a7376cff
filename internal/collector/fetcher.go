package collector

import (
	"context"
	"time"

	"StockPicker/internal/model"
)

// Fetcher defines the interface for fetching daily market data.
//
// FetchDaily returns the bars in [start, end). A provider that has no data for the
// symbol returns an empty series and a nil error.
type Fetcher interface {
	FetchDaily(ctx context.Context, symbol string, start, end time.Time) (*model.PriceSeries, error)
	Name() string
}

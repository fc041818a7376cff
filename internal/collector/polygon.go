package collector

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"StockPicker/internal/model"
)

// PolygonFetcher implements Fetcher using Polygon.io daily aggregates.
type PolygonFetcher struct {
	client *polygon.Client
}

// NewPolygonFetcher creates a fetcher authenticated with apiKey.
func NewPolygonFetcher(apiKey string) *PolygonFetcher {
	return &PolygonFetcher{client: polygon.New(apiKey)}
}

func (f *PolygonFetcher) Name() string { return "polygon" }

// FetchDaily downloads split/dividend adjusted daily aggregates in [start, end).
// The aggregates are already adjusted, so AdjClose equals Close.
func (f *PolygonFetcher) FetchDaily(ctx context.Context, symbol string, start, end time.Time) (*model.PriceSeries, error) {
	series := &model.PriceSeries{Symbol: symbol, FetchedAt: time.Now()}

	params := models.ListAggsParams{
		Ticker:     symbol,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(start),
		To:         models.Millis(end.AddDate(0, 0, -1)), // polygon's range is inclusive
	}.WithAdjusted(true).WithOrder(models.Asc).WithLimit(50000)

	iter := f.client.ListAggs(ctx, params)
	for iter.Next() {
		agg := iter.Item()
		series.Bars = append(series.Bars, model.OHLCV{
			Time:     time.Time(agg.Timestamp).UTC(),
			Open:     agg.Open,
			High:     agg.High,
			Low:      agg.Low,
			Close:    agg.Close,
			AdjClose: agg.Close,
			Volume:   agg.Volume,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("polygon aggregates: %w", err)
	}
	return series, nil
}

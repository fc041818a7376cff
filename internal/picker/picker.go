package picker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"StockPicker/internal/calculator"
	"StockPicker/internal/collector"
	"StockPicker/internal/logger"
	"StockPicker/internal/model"
	"StockPicker/internal/strategy"
)

// Options configures a run.
type Options struct {
	Start   time.Time
	MinRows int
	TopN    int
	Rules   strategy.Rules
}

// Picker scans a universe symbol by symbol and ranks the ones that score.
type Picker struct {
	Fetcher collector.Fetcher
	Options Options
	// Now returns the current time; the fetch window ends at the start of its day.
	Now func() time.Time
}

// New creates a Picker.
func New(fetcher collector.Fetcher, opts Options) *Picker {
	if opts.MinRows <= 0 {
		opts.MinRows = 200
	}
	if opts.TopN <= 0 {
		opts.TopN = 3
	}
	return &Picker{Fetcher: fetcher, Options: opts, Now: time.Now}
}

// Run processes symbols sequentially. Per-symbol failures are logged and skipped;
// only context cancellation aborts the run. The logger is taken from ctx.
func (p *Picker) Run(ctx context.Context, runID string, symbols []string) (*model.Result, error) {
	log := logger.From(ctx)
	now := p.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	res := &model.Result{
		RunID:    runID,
		Analyses: make(map[string]*model.Analysis),
		Scores:   make(map[string]model.ScoreBreakdown),
	}
	qualifying := make(map[string]int)

	log.Info().Str("source", p.Fetcher.Name()).Int("symbols", len(symbols)).
		Str("from", p.Options.Start.Format("2006-01-02")).Str("to", end.Format("2006-01-02")).
		Msg("scan started")

	for _, sym := range symbols {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		a, score, reason, err := p.process(ctx, sym, end)
		if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		switch reason {
		case model.SkipNoData:
			log.Info().Msgf("No data for %s", sym)
		case model.SkipInsufficient:
			log.Info().Msgf("Not enough data points for %s", sym)
		case model.SkipError:
			log.Warn().Msgf("Error processing %s: %v", sym, err)
		}
		if reason != "" {
			res.Skipped = append(res.Skipped, model.Skip{Symbol: sym, Reason: reason, Err: err})
			continue
		}

		res.Analyses[sym] = a
		res.Scores[sym] = score
		log.Debug().Str("symbol", sym).Int("score", score.Total).Msg("scored")
		if score.Qualifies() {
			qualifying[sym] = score.Total
		}
	}

	res.Top = strategy.Rank(qualifying, p.Options.TopN)
	log.Info().Int("analysed", len(res.Analyses)).Int("qualifying", len(qualifying)).
		Int("skipped", len(res.Skipped)).Msg("scan finished")
	return res, nil
}

// process fetches, cleans, computes and scores one symbol. A non-empty reason means
// the symbol is skipped.
func (p *Picker) process(ctx context.Context, sym string, end time.Time) (*model.Analysis, model.ScoreBreakdown, model.SkipReason, error) {
	var none model.ScoreBreakdown

	raw, err := p.Fetcher.FetchDaily(ctx, sym, p.Options.Start, end)
	if err != nil {
		return nil, none, model.SkipError, fmt.Errorf("fetch: %w", err)
	}
	if raw.Empty() {
		return nil, none, model.SkipNoData, nil
	}

	series := raw.DropNA()
	if series.Len() < p.Options.MinRows {
		return nil, none, model.SkipInsufficient, nil
	}

	a, err := calculator.Compute(series)
	if err != nil {
		return nil, none, model.SkipError, fmt.Errorf("compute: %w", err)
	}
	return a, strategy.Score(a, p.Options.Rules), "", nil
}

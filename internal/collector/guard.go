package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"StockPicker/internal/model"
)

// ErrCircuitOpen is returned while the provider's circuit breaker is open.
var ErrCircuitOpen = errors.New("provider circuit open")

// GuardOptions configures a GuardedFetcher.
type GuardOptions struct {
	RequestsPerSecond float64
	Burst             int
	// MaxFailures is the number of consecutive failures that opens the breaker.
	MaxFailures int
	// Cooldown is how long the breaker stays open before probing again.
	Cooldown time.Duration
}

// GuardedFetcher rate limits an underlying Fetcher and stops calling it after a run
// of consecutive failures. It never retries.
type GuardedFetcher struct {
	next    Fetcher
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewGuardedFetcher wraps next.
func NewGuardedFetcher(next Fetcher, opts GuardOptions) *GuardedFetcher {
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	if opts.MaxFailures <= 0 {
		opts.MaxFailures = 10
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = 30 * time.Second
	}
	maxFailures := uint32(opts.MaxFailures)

	st := gobreaker.Settings{
		Name:    next.Name(),
		Timeout: opts.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	return &GuardedFetcher{
		next:    next,
		limiter: rate.NewLimiter(limit, opts.Burst),
		breaker: gobreaker.NewCircuitBreaker(st),
	}
}

func (g *GuardedFetcher) Name() string { return g.next.Name() }

// State reports the breaker state, for logging.
func (g *GuardedFetcher) State() string { return g.breaker.State().String() }

func (g *GuardedFetcher) FetchDaily(ctx context.Context, symbol string, start, end time.Time) (*model.PriceSeries, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	res, err := g.breaker.Execute(func() (interface{}, error) {
		return g.next.FetchDaily(ctx, symbol, start, end)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%s: %w", g.next.Name(), ErrCircuitOpen)
		}
		return nil, err
	}
	return res.(*model.PriceSeries), nil
}

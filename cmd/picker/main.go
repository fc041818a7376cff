package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"StockPicker/internal/collector"
	"StockPicker/internal/config"
	"StockPicker/internal/logger"
	"StockPicker/internal/notifier"
	"StockPicker/internal/picker"
	"StockPicker/internal/scheduler"
	"StockPicker/internal/strategy"
	"StockPicker/internal/universe"
)

type flags struct {
	configPath string
	top        int
	start      string
	rsiMode    string
	symbols    string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "stockpicker",
		Short:         "Rank S&P 500 stocks by a technical-indicator score",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	defaultPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	cmd.Flags().StringVar(&f.configPath, "config", defaultPath, "path to the YAML config file")
	cmd.Flags().IntVar(&f.top, "top", 0, "number of stocks to report")
	cmd.Flags().StringVar(&f.start, "start", "", "first day of the price window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.rsiMode, "rsi-mode", "", "RSI counter: literal or below70")
	cmd.Flags().StringVar(&f.symbols, "symbols", "", "comma-separated symbols instead of the S&P 500 list")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "log provider client diagnostics")
	return cmd
}

// loadConfig reads the config file and environment, then applies explicitly set flags.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, f, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("top") {
		cfg.Strategy.TopN = f.top
	}
	if fl.Changed("start") {
		cfg.DataSource.StartDate = f.start
	}
	if fl.Changed("rsi-mode") {
		cfg.Strategy.RSIMode = f.rsiMode
	}
	if fl.Changed("symbols") {
		cfg.Universe.Symbols = nil
		for _, s := range strings.Split(f.symbols, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Universe.Symbols = append(cfg.Universe.Symbols, s)
			}
		}
	}
	if fl.Changed("verbose") {
		cfg.DataSource.Verbose = f.verbose
	}
}

func run(parent context.Context, cfg *config.Config) error {
	log, err := logger.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	job, err := buildJob(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("init failed")
		return err
	}

	if cfg.Schedule.Cron == "" {
		if err := job(ctx); err != nil {
			log.Error().Err(err).Msg("scan failed")
			return err
		}
		return nil
	}

	sched := scheduler.NewScheduler(ctx, job, log)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Error().Err(err).Msg("register cron task")
		return err
	}
	sched.Start()
	if cfg.Schedule.RunOnStart {
		log.Info().Msg("run_on_start enabled, executing scan now")
		go sched.RunNow()
	}

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, stopping...")
	sched.Stop()
	return nil
}

// buildJob wires one batch run: universe, fetch, score, rank, print.
func buildJob(cfg *config.Config, log zerolog.Logger) (scheduler.Job, error) {
	start, err := cfg.Start()
	if err != nil {
		return nil, err
	}
	mode, err := strategy.ParseRSIMode(cfg.Strategy.RSIMode)
	if err != nil {
		return nil, err
	}

	var loader universe.Loader
	if len(cfg.Universe.Symbols) > 0 {
		loader = universe.StaticLoader{Symbols: cfg.Universe.Symbols}
	} else {
		loader = universe.NewWikipediaLoader(cfg.Universe.URL, cfg.DataSource.Timeout, log)
	}

	source := "yahoo"
	if cfg.DataSource.PolygonAPIKey != "" {
		source = "polygon"
	}
	log.Info().Str("source", source).Msg("data source selected")

	opts := picker.Options{
		Start:   start,
		MinRows: cfg.Strategy.MinRows,
		TopN:    cfg.Strategy.TopN,
		Rules:   strategy.Rules{Threshold: cfg.Strategy.Threshold, RSIMode: mode},
	}
	out := notifier.NewConsoleNotifier(os.Stdout, cfg.Strategy.TailRows)

	return func(ctx context.Context) error {
		ctx, runID := logger.WithRun(ctx, log)
		symbols, err := loader.Load(ctx)
		if err != nil {
			return fmt.Errorf("load universe: %w", err)
		}
		// each run gets its own limiter and breaker
		pk := picker.New(newFetcher(cfg, log), opts)
		res, err := pk.Run(ctx, runID, symbols)
		if err != nil {
			return err
		}
		return out.Notify(ctx, res)
	}, nil
}

// newFetcher builds the configured provider behind a fresh rate limiter and breaker.
func newFetcher(cfg *config.Config, log zerolog.Logger) *collector.GuardedFetcher {
	var fetcher collector.Fetcher
	if cfg.DataSource.PolygonAPIKey != "" {
		fetcher = collector.NewPolygonFetcher(cfg.DataSource.PolygonAPIKey)
	} else {
		fetcher = collector.NewYahooFetcher(collector.YahooOptions{
			BaseURL: cfg.DataSource.YahooBaseURL,
			Proxy:   cfg.Proxy,
			Timeout: cfg.DataSource.Timeout,
			Quiet:   !cfg.DataSource.Verbose,
			Logger:  log,
		})
	}
	return collector.NewGuardedFetcher(fetcher, collector.GuardOptions{
		RequestsPerSecond: cfg.DataSource.RequestsPerSecond,
		Burst:             cfg.DataSource.Burst,
		MaxFailures:       cfg.DataSource.BreakerFailures,
		Cooldown:          cfg.DataSource.BreakerCooldown,
	})
}

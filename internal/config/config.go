package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DateLayout is the layout of configured dates.
const DateLayout = "2006-01-02"

// Config holds all application configuration.
type Config struct {
	Log        Log        `yaml:"log"`
	Universe   Universe   `yaml:"universe"`
	DataSource DataSource `yaml:"data_source"`
	Strategy   Strategy   `yaml:"strategy"`
	Schedule   Schedule   `yaml:"schedule"`
	Proxy      string     `yaml:"proxy" env:"HTTPS_PROXY" validate:"omitempty,url"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
}

type Universe struct {
	URL     string   `yaml:"url" env:"UNIVERSE_URL" validate:"omitempty,url"`
	Symbols []string `yaml:"symbols" env:"UNIVERSE_SYMBOLS" envSeparator:"," validate:"dive,required"`
}

type DataSource struct {
	YahooBaseURL      string        `yaml:"yahoo_base_url" env:"YAHOO_BASE_URL" validate:"omitempty,url"`
	PolygonAPIKey     string        `yaml:"polygon_api_key" env:"POLYGON_API_KEY"`
	StartDate         string        `yaml:"start_date" env:"START_DATE" validate:"required,datetime=2006-01-02"`
	Timeout           time.Duration `yaml:"timeout" env:"API_TIMEOUT" validate:"gt=0"`
	Verbose           bool          `yaml:"verbose" env:"API_VERBOSE"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"REQUESTS_PER_SECOND" validate:"gte=0"`
	Burst             int           `yaml:"burst" env:"REQUESTS_BURST" validate:"gte=1"`
	BreakerFailures   int           `yaml:"breaker_failures" env:"BREAKER_FAILURES" validate:"gte=1"`
	BreakerCooldown   time.Duration `yaml:"breaker_cooldown" env:"BREAKER_COOLDOWN" validate:"gt=0"`
}

type Strategy struct {
	TopN      int    `yaml:"top_n" env:"TOP_N" validate:"gte=1"`
	MinRows   int    `yaml:"min_rows" env:"MIN_ROWS" validate:"gte=1"`
	Threshold int    `yaml:"threshold" env:"THRESHOLD" validate:"gte=1"`
	RSIMode   string `yaml:"rsi_mode" env:"RSI_MODE" validate:"oneof=literal below70"`
	TailRows  int    `yaml:"tail_rows" env:"TAIL_ROWS" validate:"gte=1"`
}

type Schedule struct {
	Cron       string `yaml:"cron" env:"CRON_SCHEDULE"`
	RunOnStart bool   `yaml:"run_on_start" env:"RUN_ON_START"`
}

// Load reads config from a YAML file, then applies .env and environment variable
// overrides, then defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.DataSource.StartDate == "" {
		c.DataSource.StartDate = "2023-01-01"
	}
	if c.DataSource.Timeout == 0 {
		c.DataSource.Timeout = 30 * time.Second
	}
	if c.DataSource.RequestsPerSecond == 0 {
		c.DataSource.RequestsPerSecond = 5
	}
	if c.DataSource.Burst == 0 {
		c.DataSource.Burst = 1
	}
	if c.DataSource.BreakerFailures == 0 {
		c.DataSource.BreakerFailures = 10
	}
	if c.DataSource.BreakerCooldown == 0 {
		c.DataSource.BreakerCooldown = 30 * time.Second
	}
	if c.Strategy.TopN == 0 {
		c.Strategy.TopN = 3
	}
	if c.Strategy.MinRows == 0 {
		c.Strategy.MinRows = 200
	}
	if c.Strategy.Threshold == 0 {
		c.Strategy.Threshold = 5
	}
	if c.Strategy.RSIMode == "" {
		c.Strategy.RSIMode = "literal"
	}
	if c.Strategy.TailRows == 0 {
		c.Strategy.TailRows = 5
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Start returns the first day of the fetch window.
func (c *Config) Start() (time.Time, error) {
	t, err := time.Parse(DateLayout, c.DataSource.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("start_date: %w", err)
	}
	return t, nil
}

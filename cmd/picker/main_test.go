package main

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockPicker/internal/config"
)

func TestLoadConfig_Flags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", filepath.Join(t.TempDir(), "none.yaml"),
		"--top", "5",
		"--start", "2022-01-03",
		"--rsi-mode", "below70",
		"--symbols", "AAPL, MSFT,,NVDA",
		"--verbose",
	}))
	f := &flags{}
	f.configPath, _ = cmd.Flags().GetString("config")
	f.top, _ = cmd.Flags().GetInt("top")
	f.start, _ = cmd.Flags().GetString("start")
	f.rsiMode, _ = cmd.Flags().GetString("rsi-mode")
	f.symbols, _ = cmd.Flags().GetString("symbols")
	f.verbose, _ = cmd.Flags().GetBool("verbose")

	cfg, err := loadConfig(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Strategy.TopN)
	assert.Equal(t, "2022-01-03", cfg.DataSource.StartDate)
	assert.Equal(t, "below70", cfg.Strategy.RSIMode)
	assert.Equal(t, []string{"AAPL", "MSFT", "NVDA"}, cfg.Universe.Symbols)
	assert.True(t, cfg.DataSource.Verbose)

	job, err := buildJob(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, job)
}

func TestLoadConfig_InvalidFlag(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", filepath.Join(t.TempDir(), "none.yaml"),
		"--rsi-mode", "strict",
	}))
	f := &flags{}
	f.configPath, _ = cmd.Flags().GetString("config")
	f.rsiMode, _ = cmd.Flags().GetString("rsi-mode")

	_, err := loadConfig(cmd, f)
	assert.Error(t, err)
}

func TestNewFetcher_FreshGuardPerCall(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	cfg.DataSource.PolygonAPIKey = ""

	first := newFetcher(cfg, zerolog.Nop())
	second := newFetcher(cfg, zerolog.Nop())
	assert.NotSame(t, first, second)
	assert.Equal(t, "yahoo", first.Name())
	assert.Equal(t, "closed", second.State())

	cfg.DataSource.PolygonAPIKey = "key"
	assert.Equal(t, "polygon", newFetcher(cfg, zerolog.Nop()).Name())
}

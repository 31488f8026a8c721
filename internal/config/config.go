package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jergrif73/whale-watcher/internal/model"
	"github.com/jergrif73/whale-watcher/internal/portfolio"
	"github.com/jergrif73/whale-watcher/internal/signal"
)

// WatchlistEntry is one configured asset.
type WatchlistEntry struct {
	Ticker            string `yaml:"ticker"`
	Name              string `yaml:"name"`
	Category          string `yaml:"category"`
	ContinuousTrading bool   `yaml:"continuous_trading"`
}

// Config holds all application configuration.
type Config struct {
	Watchlist  []WatchlistEntry    `yaml:"watchlist"`
	Benchmarks []string            `yaml:"benchmarks"`
	Thresholds signal.Thresholds   `yaml:"thresholds"`
	Tax        portfolio.TaxConfig `yaml:"tax"`
	Sizing     struct {
		RiskPerTradePct float64 `yaml:"risk_per_trade_pct"`
		MaxPositionPct  float64 `yaml:"max_position_pct"`
	} `yaml:"sizing"`
	Schedule struct {
		DailyCron  string `yaml:"daily_cron"`
		WeeklyCron string `yaml:"weekly_cron"`
	} `yaml:"schedule"`
	Database struct {
		LedgerPath string `yaml:"ledger_path"`
		AuditPath  string `yaml:"audit_path"`
	} `yaml:"database"`
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Thresholds: signal.DefaultThresholds(),
		Tax:        portfolio.DefaultTaxConfig(),
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LEDGER_PATH"); v != "" {
		cfg.Database.LedgerPath = v
	}
	if v := os.Getenv("AUDIT_PATH"); v != "" {
		cfg.Database.AuditPath = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("CRON_WEEKLY"); v != "" {
		cfg.Schedule.WeeklyCron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}

	// Defaults
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 22 * * 1-5"
	}
	if cfg.Schedule.WeeklyCron == "" {
		cfg.Schedule.WeeklyCron = "0 0 8 * * 6"
	}
	if cfg.Database.LedgerPath == "" {
		cfg.Database.LedgerPath = "data/ledger.db"
	}
	if cfg.Database.AuditPath == "" {
		cfg.Database.AuditPath = "data/audit.db"
	}
	if cfg.Sizing.RiskPerTradePct == 0 {
		cfg.Sizing.RiskPerTradePct = 1
	}
	if cfg.Sizing.MaxPositionPct == 0 {
		cfg.Sizing.MaxPositionPct = 10
	}
	if cfg.Workers == 0 {
		cfg.Workers = 4
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist must not be empty")
	}
	for _, w := range c.Watchlist {
		if w.Ticker == "" {
			return fmt.Errorf("watchlist entry missing ticker")
		}
		switch model.AssetCategory(w.Category) {
		case model.CategoryStock, model.CategoryETF, model.CategoryCrypto:
		default:
			return fmt.Errorf("watchlist %s: unknown category %q", w.Ticker, w.Category)
		}
	}
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	return nil
}

// Assets converts the watchlist into model assets.
func (c *Config) Assets() []model.Asset {
	assets := make([]model.Asset, len(c.Watchlist))
	for i, w := range c.Watchlist {
		assets[i] = model.Asset{
			Ticker:            w.Ticker,
			Name:              w.Name,
			Category:          model.AssetCategory(w.Category),
			ContinuousTrading: w.ContinuousTrading,
		}
	}
	return assets
}

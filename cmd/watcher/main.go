package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/jergrif73/whale-watcher/internal/analyzer"
	"github.com/jergrif73/whale-watcher/internal/config"
	"github.com/jergrif73/whale-watcher/internal/indicator"
	"github.com/jergrif73/whale-watcher/internal/ledger"
	"github.com/jergrif73/whale-watcher/internal/model"
	"github.com/jergrif73/whale-watcher/internal/recorder"
	"github.com/jergrif73/whale-watcher/internal/scheduler"
	sig "github.com/jergrif73/whale-watcher/internal/signal"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("config validation")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}
	logger.Info().Int("assets", len(cfg.Watchlist)).Msg("whale-watcher starting")

	store, err := ledger.Open(cfg.Database.LedgerPath, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open trade ledger")
	}
	defer store.Close()

	var rec recorder.Recorder
	if cfg.Database.AuditPath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.AuditPath, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("init audit recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Development provider: synthetic series per watchlist asset. A market
	// data client satisfying analyzer.PriceProvider slots in here.
	provider := &analyzer.StaticProvider{SeriesByTicker: map[string]*model.PriceSeries{}}
	for _, a := range cfg.Assets() {
		provider.SeriesByTicker[a.Ticker] = &model.PriceSeries{
			Ticker:    a.Ticker,
			Bars:      analyzer.GenerateBars(100, 250, 0.001),
			FetchedAt: time.Now(),
		}
	}
	logger.Info().Str("provider", provider.Name()).Msg("price provider ready")

	engine := sig.NewEngine(cfg.Thresholds)
	indicators := indicator.NewEngine(indicator.DefaultParams())
	a := analyzer.New(indicators, engine, provider, provider, cfg.Workers, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(ctx, a, store, rec, cfg.Assets(), cfg.Benchmarks, cfg.Tax, logger)
	if err := sched.Register(cfg.Schedule.DailyCron, cfg.Schedule.WeeklyCron); err != nil {
		logger.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		logger.Info().Msg("RUN_ON_START enabled, executing evaluation cycle now")
		go sched.RunNow()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info().Msg("shutdown signal received, stopping")
	cancel()
	logger.Info().Msg("whale-watcher stopped")
}

package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jergrif73/whale-watcher/internal/analyzer"
	"github.com/jergrif73/whale-watcher/internal/ledger"
	"github.com/jergrif73/whale-watcher/internal/model"
	"github.com/jergrif73/whale-watcher/internal/portfolio"
	"github.com/jergrif73/whale-watcher/internal/recorder"
	"github.com/jergrif73/whale-watcher/internal/report"
)

// Scheduler drives the evaluation cycles. The engine itself has no trigger
// policy; this is the external collaborator that decides when to run.
type Scheduler struct {
	cron       *cron.Cron
	analyzer   *analyzer.Analyzer
	ledger     *ledger.Store
	recorder   recorder.Recorder
	assets     []model.Asset
	benchmarks []string
	taxCfg     portfolio.TaxConfig
	ctx        context.Context
	log        zerolog.Logger
}

// New creates a Scheduler.
func New(ctx context.Context, a *analyzer.Analyzer, store *ledger.Store, rec recorder.Recorder, assets []model.Asset, benchmarks []string, taxCfg portfolio.TaxConfig, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithSeconds()),
		analyzer:   a,
		ledger:     store,
		recorder:   rec,
		assets:     assets,
		benchmarks: benchmarks,
		taxCfg:     taxCfg,
		ctx:        ctx,
		log:        logger.With().Str("component", "scheduler").Logger(),
	}
}

// Register wires the daily evaluation and weekly summary crons.
func (s *Scheduler) Register(dailyCron, weeklyCron string) error {
	if _, err := s.cron.AddFunc(dailyCron, s.dailyCycle); err != nil {
		return fmt.Errorf("register daily cycle: %w", err)
	}
	if _, err := s.cron.AddFunc(weeklyCron, s.weeklyCycle); err != nil {
		return fmt.Errorf("register weekly cycle: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info().Msg("scheduler stopped")
}

// RunNow executes the daily cycle immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyCycle()
}

func (s *Scheduler) dailyCycle() {
	s.log.Info().Msg("running evaluation cycle")
	start := time.Now()

	trades, err := s.ledger.All()
	if err != nil {
		s.log.Error().Err(err).Msg("load trade log")
		return
	}

	recs, err := s.analyzer.EvaluateAll(s.ctx, s.assets, trades)
	if err != nil {
		s.log.Error().Err(err).Msg("evaluation cycle failed")
		return
	}

	for i := range recs {
		if err := s.recorder.RecordRecommendation(&recs[i]); err != nil {
			s.log.Error().Err(err).Str("ticker", recs[i].Ticker).Msg("record recommendation")
		}
	}

	fmt.Fprintln(os.Stdout, report.FormatRecommendations(recs))
	s.log.Info().Int("assets", len(recs)).Dur("elapsed", time.Since(start)).Msg("evaluation cycle done")
}

func (s *Scheduler) weeklyCycle() {
	s.log.Info().Msg("running weekly summary")

	trades, err := s.ledger.All()
	if err != nil {
		s.log.Error().Err(err).Msg("load trade log")
		return
	}
	recs, err := s.analyzer.EvaluateAll(s.ctx, s.assets, trades)
	if err != nil {
		s.log.Error().Err(err).Msg("weekly evaluation failed")
		return
	}

	// Benchmark returns come from the evaluated benchmark assets themselves.
	var benchmarkReturns []float64
	for _, r := range recs {
		for _, b := range s.benchmarks {
			if r.Ticker == b {
				benchmarkReturns = append(benchmarkReturns, r.Valuation.GainLossPct)
			}
		}
	}

	sum := portfolio.Summarize(recs, trades, benchmarkReturns, s.taxCfg, time.Now())
	if err := s.recorder.RecordSummary(&sum); err != nil {
		s.log.Error().Err(err).Msg("record summary")
	}
	fmt.Fprintln(os.Stdout, report.FormatSummary(&sum))
}

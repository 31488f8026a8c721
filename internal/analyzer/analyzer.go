package analyzer

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jergrif73/whale-watcher/internal/indicator"
	"github.com/jergrif73/whale-watcher/internal/intel"
	"github.com/jergrif73/whale-watcher/internal/model"
	"github.com/jergrif73/whale-watcher/internal/position"
	"github.com/jergrif73/whale-watcher/internal/risk"
	"github.com/jergrif73/whale-watcher/internal/signal"
)

// minSeriesBars is roughly three months of daily bars, the minimum span for
// volume and trend reliability. Shorter series are skipped, not retried.
const minSeriesBars = 60

// PriceProvider supplies the complete bar history for one asset. A provider
// must hand back a complete series or an error, never a partial one.
type PriceProvider interface {
	Series(ctx context.Context, ticker string) (*model.PriceSeries, error)
	Name() string
}

// IntelProvider supplies the qualitative feed items for one asset.
type IntelProvider interface {
	Items(ctx context.Context, ticker string) ([]intel.Item, error)
}

// Analyzer runs the per-asset evaluation pipeline:
// indicators -> valuation -> risk -> signal. Assets are independent and are
// evaluated concurrently; the rule cascade inside one asset is strictly
// ordered.
type Analyzer struct {
	indicators *indicator.Engine
	signals    *signal.Engine
	prices     PriceProvider
	intel      IntelProvider
	workers    int
	now        func() time.Time
	log        zerolog.Logger
}

// New creates an Analyzer. intelProvider may be nil when no qualitative feed
// is wired up.
func New(ind *indicator.Engine, sig *signal.Engine, prices PriceProvider, intelProvider IntelProvider, workers int, logger zerolog.Logger) *Analyzer {
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{
		indicators: ind,
		signals:    sig,
		prices:     prices,
		intel:      intelProvider,
		workers:    workers,
		now:        time.Now,
		log:        logger.With().Str("component", "analyzer").Logger(),
	}
}

// WithClock overrides the evaluation clock, for tests.
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

// Evaluate runs the full pipeline for one asset with fully materialized
// inputs. It never blocks on I/O.
func (a *Analyzer) Evaluate(asset model.Asset, series *model.PriceSeries, pos model.Position, items []intel.Item, now time.Time) model.Recommendation {
	ind := a.indicators.Compute(series)
	val := position.Valuate(pos, series, now)
	score := risk.Score(val, ind)

	outcome := a.signals.Evaluate(signal.Input{
		Valuation:         val,
		Indicators:        ind,
		IsWeekend:         isWeekend(now),
		ContinuousTrading: asset.ContinuousTrading,
	})

	assessment := intel.Scan(items)

	return model.Recommendation{
		Ticker:      asset.Ticker,
		Category:    asset.Category,
		SignalLabel: outcome.Label,
		ColorClass:  outcome.Color,
		Action:      outcome.Action,
		Priority:    outcome.Priority,
		Reasoning:   outcome.Reasoning,
		RiskScore:   score,
		Critical:    assessment.Critical,
		Indicators:  ind,
		Valuation:   val,
		EvaluatedAt: now,
	}
}

// EvaluateAll fetches each asset's series, rebuilds its position from the
// trade log, and evaluates all assets concurrently. Assets with missing or
// short series are skipped. Results are ranked by priority, then risk.
func (a *Analyzer) EvaluateAll(ctx context.Context, assets []model.Asset, trades []model.Trade) ([]model.Recommendation, error) {
	now := a.now()

	var mu sync.Mutex
	var recs []model.Recommendation

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for _, asset := range assets {
		asset := asset
		g.Go(func() error {
			series, err := a.prices.Series(ctx, asset.Ticker)
			if err != nil {
				a.log.Warn().Err(err).Str("ticker", asset.Ticker).Msg("series unavailable, skipping")
				return nil
			}
			if len(series.Bars) < minSeriesBars {
				a.log.Warn().Str("ticker", asset.Ticker).Int("bars", len(series.Bars)).
					Msg("series too short, skipping")
				return nil
			}

			var items []intel.Item
			if a.intel != nil {
				if items, err = a.intel.Items(ctx, asset.Ticker); err != nil {
					a.log.Warn().Err(err).Str("ticker", asset.Ticker).Msg("intel feed unavailable")
					items = nil
				}
			}

			pos := position.Replay(asset.Ticker, trades)
			rec := a.Evaluate(asset, series, pos, items, now)

			mu.Lock()
			recs = append(recs, rec)
			mu.Unlock()

			a.log.Info().Str("ticker", asset.Ticker).Str("signal", rec.SignalLabel).
				Str("action", string(rec.Action)).Int("priority", rec.Priority).
				Int("risk", rec.RiskScore).Msg("asset evaluated")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return recs[i].Priority > recs[j].Priority
		}
		if recs[i].RiskScore != recs[j].RiskScore {
			return recs[i].RiskScore > recs[j].RiskScore
		}
		return recs[i].Ticker < recs[j].Ticker
	})
	return recs, nil
}

func isWeekend(now time.Time) bool {
	wd := now.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

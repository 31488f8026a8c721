package portfolio

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// profitFactorLossless is the sentinel reported when there are wins and no
// losing positions at all.
const profitFactorLossless = 9999.0

// CadenceRegular is the DCA classification for buys averaging 35 days apart
// or less.
const (
	CadenceRegular   = "Regular"
	CadenceIrregular = "Irregular"
)

// DCACadence is the buy-interval summary for one ticker.
type DCACadence struct {
	Ticker          string
	BuyCount        int
	AvgIntervalDays float64
	Classification  string
}

// CategoryPerformance aggregates wins and losses for one asset category.
type CategoryPerformance struct {
	Category     model.AssetCategory
	Wins         int
	Losses       int
	TotalGain    float64
	TotalLoss    float64
	ProfitFactor float64
}

// Summary is the account-level analytics produced after an evaluation cycle.
type Summary struct {
	TotalInvested  float64
	TotalValue     float64
	TotalReturnPct float64
	ByCategory     []CategoryPerformance
	TaxLots        []model.TaxLot
	Cadences       []DCACadence
	BenchmarkAlpha float64
	GeneratedAt    time.Time
}

// Cadence computes the average interval in days between successive BUY
// trades for a ticker. One or zero buys is Irregular by definition.
func Cadence(ticker string, trades []model.Trade) DCACadence {
	var buys []time.Time
	for _, t := range trades {
		if t.Ticker == ticker && t.Action == model.TradeBuy {
			buys = append(buys, t.Timestamp)
		}
	}
	sort.Slice(buys, func(i, j int) bool { return buys[i].Before(buys[j]) })

	c := DCACadence{Ticker: ticker, BuyCount: len(buys), Classification: CadenceIrregular}
	if len(buys) < 2 {
		return c
	}
	var total float64
	for i := 1; i < len(buys); i++ {
		total += buys[i].Sub(buys[i-1]).Hours() / 24
	}
	c.AvgIntervalDays = total / float64(len(buys)-1)
	if c.AvgIntervalDays <= 35 {
		c.Classification = CadenceRegular
	}
	return c
}

// Attribution groups the current recommendations by asset category and
// totals dollar wins against dollar losses.
func Attribution(recs []model.Recommendation) []CategoryPerformance {
	byCat := map[model.AssetCategory]*CategoryPerformance{}
	for _, r := range recs {
		perf, ok := byCat[r.Category]
		if !ok {
			perf = &CategoryPerformance{Category: r.Category}
			byCat[r.Category] = perf
		}
		pl := r.Valuation.CurrentValue - r.Valuation.AmountInvested
		if pl >= 0 {
			perf.Wins++
			perf.TotalGain += pl
		} else {
			perf.Losses++
			perf.TotalLoss += -pl
		}
	}

	out := make([]CategoryPerformance, 0, len(byCat))
	for _, perf := range byCat {
		if perf.TotalLoss > 0 {
			perf.ProfitFactor = perf.TotalGain / perf.TotalLoss
		} else if perf.TotalGain > 0 {
			perf.ProfitFactor = profitFactorLossless
		}
		out = append(out, *perf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// Alpha computes the portfolio's invested-dollar weighted return minus the
// mean of the benchmark returns over the lookback window.
func Alpha(recs []model.Recommendation, benchmarkReturns []float64) float64 {
	var invested, weighted float64
	for _, r := range recs {
		invested += r.Valuation.AmountInvested
		weighted += r.Valuation.AmountInvested * r.Valuation.GainLossPct
	}
	if invested == 0 {
		return 0
	}
	portfolioReturn := weighted / invested
	if len(benchmarkReturns) == 0 {
		return portfolioReturn
	}
	return portfolioReturn - stat.Mean(benchmarkReturns, nil)
}

// Summarize assembles the full account-level summary from one evaluation
// cycle's recommendations plus the raw trade log.
func Summarize(recs []model.Recommendation, trades []model.Trade, benchmarkReturns []float64, taxCfg TaxConfig, now time.Time) Summary {
	s := Summary{GeneratedAt: now}
	for _, r := range recs {
		s.TotalInvested += r.Valuation.AmountInvested
		s.TotalValue += r.Valuation.CurrentValue
	}
	if s.TotalInvested > 0 {
		s.TotalReturnPct = (s.TotalValue - s.TotalInvested) / s.TotalInvested * 100
	}
	s.ByCategory = Attribution(recs)
	s.TaxLots = TaxLots(recs, taxCfg)
	s.BenchmarkAlpha = Alpha(recs, benchmarkReturns)

	seen := map[string]struct{}{}
	for _, t := range trades {
		if _, ok := seen[t.Ticker]; ok {
			continue
		}
		seen[t.Ticker] = struct{}{}
		s.Cadences = append(s.Cadences, Cadence(t.Ticker, trades))
	}
	sort.Slice(s.Cadences, func(i, j int) bool { return s.Cadences[i].Ticker < s.Cadences[j].Ticker })
	return s
}

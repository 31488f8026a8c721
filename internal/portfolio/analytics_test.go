package portfolio

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jergrif73/whale-watcher/internal/model"
)

func buy(ticker string, day int) model.Trade {
	return model.Trade{
		Ticker:    ticker,
		Action:    model.TradeBuy,
		Amount:    decimal.NewFromInt(100),
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day),
	}
}

func rec(ticker string, cat model.AssetCategory, invested, value float64) model.Recommendation {
	gain := 0.0
	if invested > 0 {
		gain = (value - invested) / invested * 100
	}
	return model.Recommendation{
		Ticker:   ticker,
		Category: cat,
		Valuation: model.Valuation{
			AmountInvested: invested,
			CurrentValue:   value,
			GainLossPct:    gain,
			HoldingKnown:   true,
			HoldingDays:    100,
		},
	}
}

func TestCadence_RegularMonthlyBuys(t *testing.T) {
	trades := []model.Trade{buy("VOO", 0), buy("VOO", 30), buy("VOO", 60), buy("VOO", 90)}
	c := Cadence("VOO", trades)
	assert.Equal(t, 4, c.BuyCount)
	assert.InDelta(t, 30, c.AvgIntervalDays, 1e-9)
	assert.Equal(t, CadenceRegular, c.Classification)
}

func TestCadence_SparseBuysAreIrregular(t *testing.T) {
	trades := []model.Trade{buy("NVDA", 0), buy("NVDA", 120)}
	c := Cadence("NVDA", trades)
	assert.Equal(t, CadenceIrregular, c.Classification)
}

func TestCadence_SingleBuyIsIrregular(t *testing.T) {
	c := Cadence("NVDA", []model.Trade{buy("NVDA", 0)})
	assert.Equal(t, CadenceIrregular, c.Classification)
	assert.Zero(t, c.AvgIntervalDays)
}

func TestAttribution_ProfitFactor(t *testing.T) {
	recs := []model.Recommendation{
		rec("NVDA", model.CategoryStock, 1000, 1400),
		rec("AMD", model.CategoryStock, 1000, 800),
		rec("BTC", model.CategoryCrypto, 500, 900),
	}
	perf := Attribution(recs)
	require.Len(t, perf, 2)

	// Sorted by category name: CRYPTO then STOCK.
	crypto, stock := perf[0], perf[1]
	assert.Equal(t, model.CategoryCrypto, crypto.Category)
	assert.Equal(t, 1, crypto.Wins)
	assert.Equal(t, profitFactorLossless, crypto.ProfitFactor)

	assert.Equal(t, 1, stock.Wins)
	assert.Equal(t, 1, stock.Losses)
	assert.InDelta(t, 400, stock.TotalGain, 1e-9)
	assert.InDelta(t, 200, stock.TotalLoss, 1e-9)
	assert.InDelta(t, 2.0, stock.ProfitFactor, 1e-9)
}

func TestAlpha_WeightedReturnVsBenchmark(t *testing.T) {
	recs := []model.Recommendation{
		rec("NVDA", model.CategoryStock, 1000, 1200), // +20%
		rec("AMD", model.CategoryStock, 3000, 3000),  // 0%
	}
	// Weighted return: (1000*20 + 3000*0) / 4000 = 5%.
	alpha := Alpha(recs, []float64{2, 4})
	assert.InDelta(t, 5-3, alpha, 1e-9)
}

func TestAlpha_NoInvestmentIsZero(t *testing.T) {
	assert.Zero(t, Alpha(nil, []float64{5}))
}

func TestTaxLots_Classification(t *testing.T) {
	long := rec("VOO", model.CategoryETF, 1000, 1100)
	long.Valuation.HoldingDays = 400

	almost := rec("NVDA", model.CategoryStock, 1000, 1300)
	almost.Valuation.HoldingDays = 350

	short := rec("AMD", model.CategoryStock, 1000, 1050)
	short.Valuation.HoldingDays = 50

	lots := TaxLots([]model.Recommendation{long, almost, short}, DefaultTaxConfig())
	require.Len(t, lots, 3)

	assert.Equal(t, model.TaxLongTerm, lots[0].Status)
	assert.Empty(t, lots[0].Alert)

	assert.Equal(t, model.TaxAlmostLong, lots[1].Status)
	assert.NotEmpty(t, lots[1].Alert, "profitable lot near long-term gets a heads-up")

	assert.Equal(t, model.TaxShortTerm, lots[2].Status)
	assert.Empty(t, lots[2].Alert, "5%% short-term gain is not material")
}

func TestTaxLots_MaterialShortTermGainAlerts(t *testing.T) {
	r := rec("NVDA", model.CategoryStock, 1000, 1300)
	r.Valuation.HoldingDays = 100
	lots := TaxLots([]model.Recommendation{r}, DefaultTaxConfig())
	require.Len(t, lots, 1)
	assert.NotEmpty(t, lots[0].Alert)
}

func TestTaxLots_SkipsUnknownHoldingPeriods(t *testing.T) {
	r := rec("NVDA", model.CategoryStock, 1000, 1100)
	r.Valuation.HoldingKnown = false
	assert.Empty(t, TaxLots([]model.Recommendation{r}, DefaultTaxConfig()))
}

func TestSummarize(t *testing.T) {
	recs := []model.Recommendation{
		rec("NVDA", model.CategoryStock, 1000, 1200),
		rec("VOO", model.CategoryETF, 2000, 2100),
	}
	trades := []model.Trade{buy("NVDA", 0), buy("NVDA", 30), buy("VOO", 0)}

	s := Summarize(recs, trades, []float64{3}, DefaultTaxConfig(), time.Now())
	assert.InDelta(t, 3000, s.TotalInvested, 1e-9)
	assert.InDelta(t, 3300, s.TotalValue, 1e-9)
	assert.InDelta(t, 10, s.TotalReturnPct, 1e-9)
	assert.Len(t, s.ByCategory, 2)
	assert.Len(t, s.Cadences, 2)
	assert.Len(t, s.TaxLots, 2)
}

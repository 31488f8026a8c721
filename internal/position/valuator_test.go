package position

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jergrif73/whale-watcher/internal/model"
)

func seriesWith(start time.Time, closes ...float64) *model.PriceSeries {
	bars := make([]model.PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = model.PriceBar{
			Date:  start.AddDate(0, 0, i),
			Open:  c,
			High:  c,
			Low:   c,
			Close: c,
		}
	}
	return &model.PriceSeries{Ticker: "TEST", Bars: bars}
}

func TestValuate_ProportionalDollarModel(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	series := seriesWith(start, 100, 105, 110, 120)
	pos := model.Position{Ticker: "TEST", AmountInvested: 1000, FirstBuy: start}
	now := start.AddDate(0, 0, 10)

	val := Valuate(pos, series, now)
	assert.InDelta(t, 100, val.PriceAtPurchase, 1e-9)
	assert.InDelta(t, 1200, val.CurrentValue, 1e-9)
	assert.InDelta(t, 20.0, val.GainLossPct, 1e-9)
	assert.Equal(t, 10, val.HoldingDays)
	assert.True(t, val.HoldingKnown)
}

func TestValuate_PeakAndDrawdown(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	series := seriesWith(start, 100, 150, 128)
	pos := model.Position{Ticker: "TEST", AmountInvested: 1000, FirstBuy: start}

	val := Valuate(pos, series, start.AddDate(0, 0, 5))
	assert.InDelta(t, 150, val.PeakSinceBuy, 1e-9)
	assert.InDelta(t, (128.0-150.0)/150.0*100, val.DrawdownPct, 1e-9)
	assert.LessOrEqual(t, val.DrawdownPct, 0.0)
}

func TestValuate_OpeningBeforeAllBarsUsesEarliestClose(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	series := seriesWith(start, 80, 90, 100)
	pos := model.Position{
		Ticker:         "TEST",
		AmountInvested: 800,
		FirstBuy:       start.AddDate(0, 0, -30),
	}

	val := Valuate(pos, series, start.AddDate(0, 0, 10))
	assert.InDelta(t, 80, val.PriceAtPurchase, 1e-9)
	assert.InDelta(t, 1000, val.CurrentValue, 1e-9)
}

func TestValuate_UnknownDateIsBreakEven(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	series := seriesWith(start, 100, 120)
	pos := model.Position{Ticker: "TEST", AmountInvested: 500}

	val := Valuate(pos, series, start.AddDate(0, 0, 5))
	assert.InDelta(t, 500, val.CurrentValue, 1e-9, "unknown purchase date treats the position as break-even")
	assert.Zero(t, val.GainLossPct)
	assert.False(t, val.HoldingKnown)
}

func TestValuate_ZeroPriceGuards(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	series := seriesWith(start, 0, 0)
	pos := model.Position{Ticker: "TEST", AmountInvested: 500, FirstBuy: start}

	val := Valuate(pos, series, start.AddDate(0, 0, 5))
	assert.InDelta(t, 500, val.CurrentValue, 1e-9, "zero purchase price falls back to invested dollars")
	assert.Zero(t, val.GainLossPct)
}

func TestValuate_EmptySeries(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	pos := model.Position{Ticker: "TEST", AmountInvested: 250, FirstBuy: start}

	val := Valuate(pos, &model.PriceSeries{Ticker: "TEST"}, start.AddDate(0, 0, 1))
	assert.InDelta(t, 250, val.CurrentValue, 1e-9)
}

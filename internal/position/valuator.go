package position

import (
	"time"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// Valuate appraises an open position against its price series. The model is
// unit-free: current value scales invested dollars by the price ratio since
// purchase, never by share counts. Every ratio is guarded so degenerate
// inputs fall back to break-even rather than erroring.
func Valuate(pos model.Position, series *model.PriceSeries, now time.Time) model.Valuation {
	current := series.CurrentPrice()
	val := model.Valuation{
		AmountInvested:  pos.AmountInvested,
		PriceAtPurchase: priceAtPurchase(pos, series, current),
		CurrentValue:    pos.AmountInvested,
		PeakSinceBuy:    current,
	}

	if val.PriceAtPurchase > 0 {
		val.CurrentValue = pos.AmountInvested * (current / val.PriceAtPurchase)
	}
	if pos.AmountInvested > 0 {
		val.GainLossPct = (val.CurrentValue - pos.AmountInvested) / pos.AmountInvested * 100
	}

	if days, ok := pos.HoldingDays(now); ok {
		val.HoldingDays = days
		val.HoldingKnown = true
	}

	if peak := peakSinceBuy(pos, series); peak > 0 {
		val.PeakSinceBuy = peak
	}
	if val.PeakSinceBuy > 0 {
		val.DrawdownPct = (current - val.PeakSinceBuy) / val.PeakSinceBuy * 100
	}

	return val
}

// priceAtPurchase is the close of the first bar on or after the opening
// date. An opening date before all bars uses the earliest close; an unknown
// date falls back to the current price (break-even).
func priceAtPurchase(pos model.Position, series *model.PriceSeries, current float64) float64 {
	opened := pos.OpenedAt()
	if opened.IsZero() {
		return current
	}
	for _, b := range series.Bars {
		if !b.Date.Before(opened) {
			return b.Close
		}
	}
	// Opening date after all available bars.
	return current
}

// peakSinceBuy is the highest high among bars on or after the opening date.
func peakSinceBuy(pos model.Position, series *model.PriceSeries) float64 {
	opened := pos.OpenedAt()
	if opened.IsZero() {
		return 0
	}
	peak := 0.0
	for _, b := range series.Bars {
		if !b.Date.Before(opened) && b.High > peak {
			peak = b.High
		}
	}
	return peak
}

package indicator

import (
	"math"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// neutralRSI is returned when a series is too short to compute RSI.
const neutralRSI = 50.0

// RSI computes the relative strength index of the last bar using a simple
// trailing-window average of gains and losses (not Wilder smoothing).
// Returns 50 when fewer than period+1 bars are available, and 100 when the
// window contains no losses.
func RSI(bars []model.PriceBar, period int) float64 {
	series := RSISeries(bars, period)
	if len(series) == 0 {
		return neutralRSI
	}
	last := series[len(series)-1]
	if math.IsNaN(last) {
		return neutralRSI
	}
	return last
}

// RSISeries computes the per-bar RSI. Bars before the warm-up window are NaN.
func RSISeries(bars []model.PriceBar, period int) []float64 {
	out := make([]float64, len(bars))
	for i := range out {
		out[i] = math.NaN()
	}
	if period <= 0 || len(bars) < period+1 {
		return out
	}

	for i := period; i < len(bars); i++ {
		var gains, losses float64
		for j := i - period + 1; j <= i; j++ {
			change := bars[j].Close - bars[j-1].Close
			if change > 0 {
				gains += change
			} else {
				losses -= change
			}
		}
		avgGain := gains / float64(period)
		avgLoss := losses / float64(period)
		if avgLoss == 0 {
			out[i] = 100.0
			continue
		}
		rs := avgGain / avgLoss
		out[i] = 100.0 - 100.0/(1.0+rs)
	}
	return out
}

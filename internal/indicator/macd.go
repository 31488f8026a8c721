package indicator

import "github.com/jergrif73/whale-watcher/internal/model"

// MACDResult holds the last value of each MACD component.
type MACDResult struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD computes the moving average convergence divergence of the close
// prices: EMA(fast) - EMA(slow), a signal EMA of that line, and their
// difference as the histogram. Returns a zero result when the series is
// shorter than the slow period.
func MACD(bars []model.PriceBar, fast, slow, signal int) MACDResult {
	if len(bars) < slow || fast <= 0 || slow <= 0 || signal <= 0 {
		return MACDResult{}
	}
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	emaFast := EMASeries(closes, fast)
	emaSlow := EMASeries(closes, slow)
	macdLine := make([]float64, len(closes))
	for i := range closes {
		macdLine[i] = emaFast[i] - emaSlow[i]
	}
	signalLine := EMASeries(macdLine, signal)

	last := len(closes) - 1
	return MACDResult{
		MACD:      macdLine[last],
		Signal:    signalLine[last],
		Histogram: macdLine[last] - signalLine[last],
	}
}

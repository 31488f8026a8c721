package indicator

import (
	"math"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// Divergence compares the direction of price against the direction of RSI
// over the endpoints of the lookback window. Price falling while RSI rises
// is BULLISH; price rising while RSI falls is BEARISH. Only the two
// endpoints are compared, not the intervening slope. Returns no divergence
// when either endpoint's RSI is unavailable.
func Divergence(bars []model.PriceBar, rsiSeries []float64, lookback int) model.Divergence {
	if lookback <= 0 || len(bars) <= lookback || len(rsiSeries) != len(bars) {
		return model.DivergenceNone
	}
	end := len(bars) - 1
	start := end - lookback

	rsiStart, rsiEnd := rsiSeries[start], rsiSeries[end]
	if math.IsNaN(rsiStart) || math.IsNaN(rsiEnd) {
		return model.DivergenceNone
	}

	priceDelta := bars[end].Close - bars[start].Close
	rsiDelta := rsiEnd - rsiStart
	switch {
	case priceDelta < 0 && rsiDelta > 0:
		return model.DivergenceBullish
	case priceDelta > 0 && rsiDelta < 0:
		return model.DivergenceBearish
	default:
		return model.DivergenceNone
	}
}

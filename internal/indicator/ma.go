package indicator

import (
	"errors"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// SMA computes the simple moving average of the trailing period.
func SMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// EMASeries computes the exponential moving average at every index,
// seeded with the first price.
func EMASeries(prices []float64, period int) []float64 {
	out := make([]float64, len(prices))
	if len(prices) == 0 || period <= 0 {
		return out
	}
	k := 2.0 / (float64(period) + 1.0)
	out[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		out[i] = prices[i]*k + out[i-1]*(1-k)
	}
	return out
}

// ClassifyTrend derives the trend from the price vs SMA20/SMA50 ordering:
// price above both and SMA20 above SMA50 is UP, the full inverse is DOWN,
// anything else is SIDEWAYS. With fewer than 50 bars the trend is SIDEWAYS.
func ClassifyTrend(series *model.PriceSeries) model.Trend {
	closes := series.Closes()
	sma20, err20 := SMA(closes, 20)
	sma50, err50 := SMA(closes, 50)
	if err20 != nil || err50 != nil {
		return model.TrendSideways
	}
	price := series.CurrentPrice()
	switch {
	case price > sma20 && sma20 > sma50:
		return model.TrendUp
	case price < sma20 && sma20 < sma50:
		return model.TrendDown
	default:
		return model.TrendSideways
	}
}

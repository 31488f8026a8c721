package indicator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// Bands holds the Bollinger Band levels at the most recent bar.
type Bands struct {
	Upper  float64
	Middle float64
	Lower  float64
}

// Bollinger computes the bands over the trailing period: middle is the SMA
// of close, upper/lower are k standard deviations away. Returns zero bands
// when the series is shorter than the period.
func Bollinger(bars []model.PriceBar, period int, k float64) Bands {
	if period <= 0 || len(bars) < period {
		return Bands{}
	}
	window := make([]float64, period)
	for i := 0; i < period; i++ {
		window[i] = bars[len(bars)-period+i].Close
	}
	mid := stat.Mean(window, nil)
	sd := stat.StdDev(window, nil)
	return Bands{
		Upper:  mid + k*sd,
		Middle: mid,
		Lower:  mid - k*sd,
	}
}

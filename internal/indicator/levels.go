package indicator

import (
	"math"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// SupportResistance scans the trailing window ending at the most recent bar
// and returns the lowest low as support and the highest high as resistance.
// Returns zeros for an empty series; a window longer than the series is
// clipped to the available bars.
func SupportResistance(bars []model.PriceBar, window int) (support, resistance float64) {
	if len(bars) == 0 || window <= 0 {
		return 0, 0
	}
	start := len(bars) - window
	if start < 0 {
		start = 0
	}
	support = math.Inf(1)
	resistance = math.Inf(-1)
	for i := start; i < len(bars); i++ {
		if bars[i].Low < support {
			support = bars[i].Low
		}
		if bars[i].High > resistance {
			resistance = bars[i].High
		}
	}
	return support, resistance
}

package indicator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// VolumeProfile is the volume-pattern classification of the recent bars.
type VolumeProfile struct {
	Ratio   float64
	Spike   bool
	Pattern model.VolumePattern
}

// VolumePattern compares the last bar's volume against the mean of the
// trailing period (excluding the last bar) and classifies the last `recent`
// bars by summing volume on up-days vs down-days. Up-volume above 1.5x
// down-volume is ACCUMULATION, the inverse is DISTRIBUTION. A ratio at or
// above spikeRatio marks institutional-scale volume.
func VolumePattern(bars []model.PriceBar, period, recent int, spikeRatio float64) VolumeProfile {
	out := VolumeProfile{Ratio: 1.0, Pattern: model.VolumeNeutral}
	if len(bars) < period+1 || period <= 0 || recent <= 0 {
		return out
	}

	trailing := make([]float64, period)
	for i := 0; i < period; i++ {
		trailing[i] = bars[len(bars)-1-period+i].Volume
	}
	avg := stat.Mean(trailing, nil)
	if avg > 0 {
		out.Ratio = bars[len(bars)-1].Volume / avg
	}
	out.Spike = spikeRatio > 0 && out.Ratio >= spikeRatio

	if len(bars) < recent {
		recent = len(bars)
	}
	var upVol, downVol float64
	for i := len(bars) - recent; i < len(bars); i++ {
		if bars[i].Close > bars[i].Open {
			upVol += bars[i].Volume
		} else if bars[i].Close < bars[i].Open {
			downVol += bars[i].Volume
		}
	}
	switch {
	case upVol > downVol*1.5:
		out.Pattern = model.VolumeAccumulation
	case downVol > upVol*1.5:
		out.Pattern = model.VolumeDistribution
	}
	return out
}

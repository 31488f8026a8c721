package indicator

import (
	"math"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// Params fixes the window sizes used by the engine. Zero values are replaced
// by the defaults via DefaultParams.
type Params struct {
	RSIPeriod          int
	MACDFast           int
	MACDSlow           int
	MACDSignal         int
	BollingerPeriod    int
	BollingerK         float64
	SRWindow           int
	VolumePeriod       int
	VolumeRecent       int
	VolumeSpikeRatio   float64
	DivergenceLookback int
}

// DefaultParams returns the standard indicator windows.
func DefaultParams() Params {
	return Params{
		RSIPeriod:          14,
		MACDFast:           12,
		MACDSlow:           26,
		MACDSignal:         9,
		BollingerPeriod:    20,
		BollingerK:         2.0,
		SRWindow:           20,
		VolumePeriod:       10,
		VolumeRecent:       5,
		VolumeSpikeRatio:   1.8,
		DivergenceLookback: 14,
	}
}

// Engine computes the full indicator set for a price series. It is stateless
// and safe for concurrent use.
type Engine struct {
	params Params
}

// NewEngine creates an Engine with the given params.
func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// Compute derives every indicator from the series. A series too short for a
// given window yields that indicator's neutral sentinel rather than an
// error; callers must tolerate partial availability.
func (e *Engine) Compute(series *model.PriceSeries) model.IndicatorSet {
	p := e.params
	bars := series.Bars
	price := series.CurrentPrice()

	set := model.IndicatorSet{CurrentPrice: price}

	rsiSeries := RSISeries(bars, p.RSIPeriod)
	set.RSI = neutralRSI
	if n := len(rsiSeries); n > 0 && !math.IsNaN(rsiSeries[n-1]) {
		set.RSI = rsiSeries[n-1]
	}

	macd := MACD(bars, p.MACDFast, p.MACDSlow, p.MACDSignal)
	set.MACD = macd.MACD
	set.MACDSignal = macd.Signal
	set.MACDHist = macd.Histogram

	bands := Bollinger(bars, p.BollingerPeriod, p.BollingerK)
	set.BBUpper = bands.Upper
	set.BBMiddle = bands.Middle
	set.BBLower = bands.Lower

	closes := series.Closes()
	if sma, err := SMA(closes, 20); err == nil {
		set.SMA20 = sma
	}
	if sma, err := SMA(closes, 50); err == nil {
		set.SMA50 = sma
	}
	set.Trend = ClassifyTrend(series)

	support, resistance := SupportResistance(bars, p.SRWindow)
	if !math.IsInf(support, 1) {
		set.Support = support
	}
	if !math.IsInf(resistance, -1) {
		set.Resistance = resistance
	}

	vol := VolumePattern(bars, p.VolumePeriod, p.VolumeRecent, p.VolumeSpikeRatio)
	set.VolumeRatio = vol.Ratio
	set.VolumeSpike = vol.Spike
	set.VolumePattern = vol.Pattern

	set.Divergence = Divergence(bars, rsiSeries, p.DivergenceLookback)

	return set
}

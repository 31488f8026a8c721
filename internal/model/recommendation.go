package model

import "time"

// SignalAction is the concrete action a recommendation carries.
type SignalAction string

const (
	ActionNone         SignalAction = ""
	ActionSellAll      SignalAction = "SELL_ALL"
	ActionSellMost     SignalAction = "SELL_MOST"
	ActionSellHalf     SignalAction = "SELL_HALF"
	ActionSellQuarter  SignalAction = "SELL_QUARTER"
	ActionConsiderTrim SignalAction = "CONSIDER_TRIM"
	ActionBuyMore      SignalAction = "BUY_MORE"
	ActionHold         SignalAction = "HOLD"
	ActionHoldStrong   SignalAction = "HOLD_STRONG"
	ActionWatchClosely SignalAction = "WATCH_CLOSELY"
	ActionMonitor      SignalAction = "MONITOR"
	ActionEvaluate     SignalAction = "EVALUATE"
)

// Trend is the SMA-alignment classification of the recent price action.
type Trend string

const (
	TrendUp       Trend = "UP"
	TrendDown     Trend = "DOWN"
	TrendSideways Trend = "SIDEWAYS"
)

// VolumePattern classifies recent volume-weighted buying vs selling pressure.
type VolumePattern string

const (
	VolumeAccumulation VolumePattern = "ACCUMULATION"
	VolumeDistribution VolumePattern = "DISTRIBUTION"
	VolumeNeutral      VolumePattern = "NEUTRAL"
)

// Divergence is the price/RSI endpoint comparison over a lookback window.
type Divergence string

const (
	DivergenceNone    Divergence = ""
	DivergenceBullish Divergence = "BULLISH"
	DivergenceBearish Divergence = "BEARISH"
)

// IndicatorSet holds every computed technical indicator for one asset.
type IndicatorSet struct {
	CurrentPrice  float64
	RSI           float64
	MACD          float64
	MACDSignal    float64
	MACDHist      float64
	BBUpper       float64
	BBMiddle      float64
	BBLower       float64
	SMA20         float64
	SMA50         float64
	Support       float64
	Resistance    float64
	Trend         Trend
	VolumeRatio   float64
	VolumeSpike   bool
	VolumePattern VolumePattern
	Divergence    Divergence
}

// Valuation is the dollar-based position appraisal for one asset.
type Valuation struct {
	AmountInvested  float64
	PriceAtPurchase float64
	CurrentValue    float64
	GainLossPct     float64
	HoldingDays     int
	HoldingKnown    bool
	PeakSinceBuy    float64
	DrawdownPct     float64
}

// Recommendation is the per-asset output of a full evaluation cycle. It is
// recomputed fresh every cycle and persisted only as an audit trail.
type Recommendation struct {
	Ticker      string
	Category    AssetCategory
	SignalLabel string
	ColorClass  string
	Action      SignalAction
	Priority    int
	Reasoning   []string
	RiskScore   int
	Critical    bool
	Indicators  IndicatorSet
	Valuation   Valuation
	EvaluatedAt time.Time
}

// TaxLotStatus is the holding-period tax classification of an open position.
type TaxLotStatus string

const (
	TaxShortTerm  TaxLotStatus = "SHORT_TERM"
	TaxAlmostLong TaxLotStatus = "ALMOST_LONG"
	TaxLongTerm   TaxLotStatus = "LONG_TERM"
)

// TaxLot is the derived holding-period view of one open position.
type TaxLot struct {
	Ticker      string
	HoldingDays int
	Status      TaxLotStatus
	Alert       string
}

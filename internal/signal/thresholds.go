package signal

import "fmt"

// Thresholds is the immutable decision configuration injected into the
// engine at construction. Stop-loss, trailing and warning levels are
// positive percentages; the engine applies them to losses.
type Thresholds struct {
	ProfitTier1 float64 `yaml:"profit_tier1"`
	ProfitTier2 float64 `yaml:"profit_tier2"`
	ProfitTier3 float64 `yaml:"profit_tier3"`
	ProfitTier4 float64 `yaml:"profit_tier4"`

	SoftStopLossPct float64 `yaml:"soft_stop_loss_pct"`
	HardStopLossPct float64 `yaml:"hard_stop_loss_pct"`
	TrailingStopPct float64 `yaml:"trailing_stop_pct"`
	WarningLossPct  float64 `yaml:"warning_loss_pct"`

	RSIOversold   float64 `yaml:"rsi_oversold"`
	RSIOverbought float64 `yaml:"rsi_overbought"`
	RSIExtreme    float64 `yaml:"rsi_extreme"`

	VolumeSpikeRatio float64 `yaml:"volume_spike_ratio"`

	AddOnDipPct       float64 `yaml:"add_on_dip_pct"`
	AddOnDipRSI       float64 `yaml:"add_on_dip_rsi"`
	BreakoutProximity float64 `yaml:"breakout_proximity"`
	MinHoldingDaysAdd int     `yaml:"min_holding_days_add"`

	SettlingDays int `yaml:"settling_days"`
}

// DefaultThresholds returns the stock decision configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ProfitTier1:       20,
		ProfitTier2:       40,
		ProfitTier3:       60,
		ProfitTier4:       100,
		SoftStopLossPct:   8,
		HardStopLossPct:   15,
		TrailingStopPct:   12,
		WarningLossPct:    5,
		RSIOversold:       30,
		RSIOverbought:     70,
		RSIExtreme:        80,
		VolumeSpikeRatio:  1.8,
		AddOnDipPct:       7,
		AddOnDipRSI:       35,
		BreakoutProximity: 0.995,
		MinHoldingDaysAdd: 30,
		SettlingDays:      3,
	}
}

// Validate checks ordering constraints between the levels.
func (t Thresholds) Validate() error {
	if !(t.ProfitTier1 < t.ProfitTier2 && t.ProfitTier2 < t.ProfitTier3 && t.ProfitTier3 < t.ProfitTier4) {
		return fmt.Errorf("profit tiers must be strictly increasing: %.1f %.1f %.1f %.1f",
			t.ProfitTier1, t.ProfitTier2, t.ProfitTier3, t.ProfitTier4)
	}
	if t.SoftStopLossPct >= t.HardStopLossPct {
		return fmt.Errorf("soft stop (%.1f) must be below hard stop (%.1f)", t.SoftStopLossPct, t.HardStopLossPct)
	}
	if !(t.RSIOversold < t.RSIOverbought && t.RSIOverbought < t.RSIExtreme) {
		return fmt.Errorf("rsi bands must be strictly increasing: %.0f %.0f %.0f",
			t.RSIOversold, t.RSIOverbought, t.RSIExtreme)
	}
	if t.SettlingDays < 0 {
		return fmt.Errorf("settling_days must not be negative")
	}
	return nil
}

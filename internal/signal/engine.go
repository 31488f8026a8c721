package signal

import (
	"fmt"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// Input is everything the engine needs to decide on one asset.
type Input struct {
	Valuation  model.Valuation
	Indicators model.IndicatorSet
	// IsWeekend suppresses evaluation for assets that do not trade
	// continuously.
	IsWeekend         bool
	ContinuousTrading bool
}

// Outcome is the decision of exactly one rule.
type Outcome struct {
	Label     string
	Color     string
	Action    model.SignalAction
	Priority  int
	Reasoning []string
}

// rule pairs a guard with its outcome. Rules are evaluated strictly in
// order and the first truthy guard wins; guards must stay cheap and free of
// side effects.
type rule struct {
	name    string
	guard   func(in Input) bool
	outcome func(in Input) Outcome
}

// Engine runs the priority-ordered rule cascade. It holds only immutable
// configuration and is safe for concurrent use.
type Engine struct {
	th    Thresholds
	rules []rule
}

// NewEngine builds the cascade for the given thresholds.
func NewEngine(th Thresholds) *Engine {
	e := &Engine{th: th}
	e.rules = e.buildRules()
	return e
}

// Evaluate runs the cascade top to bottom and returns the first matching
// outcome. The final rule matches unconditionally, so exactly one rule
// fires per call.
func (e *Engine) Evaluate(in Input) Outcome {
	for _, r := range e.rules {
		if r.guard(in) {
			return r.outcome(in)
		}
	}
	// Unreachable: the cascade ends with a catch-all.
	return Outcome{Label: "HOLD", Color: "hold", Action: model.ActionHold}
}

// Rules exposes the rule names in evaluation order, for audit output.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.name
	}
	return names
}

func (e *Engine) settling(in Input) bool {
	return in.Valuation.HoldingKnown && in.Valuation.HoldingDays <= e.th.SettlingDays
}

func (e *Engine) canAdd(in Input) bool {
	return in.Valuation.HoldingKnown && in.Valuation.HoldingDays >= e.th.MinHoldingDaysAdd
}

func (e *Engine) buildRules() []rule {
	th := e.th
	return []rule{
		{
			name: "weekend",
			guard: func(in Input) bool {
				return in.IsWeekend && !in.ContinuousTrading
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "WEEKEND", Color: "muted", Action: model.ActionNone, Priority: 0,
					Reasoning: []string{"Market closed for the weekend"},
				}
			},
		},
		{
			name:  "settling",
			guard: e.settling,
			outcome: func(in Input) Outcome {
				gain := in.Valuation.GainLossPct
				switch {
				case gain >= th.ProfitTier1:
					return Outcome{
						Label: "NEW POSITION RUNNING", Color: "buy", Action: model.ActionHold, Priority: 0,
						Reasoning: []string{
							fmt.Sprintf("Up %.1f%% inside the %d-day settling window", gain, th.SettlingDays),
							"Let the position settle before acting",
						},
					}
				case gain <= -th.HardStopLossPct:
					return Outcome{
						Label: "NEW POSITION UNDER STRESS", Color: "warning", Action: model.ActionWatchClosely, Priority: 0,
						Reasoning: []string{
							fmt.Sprintf("Down %.1f%% inside the %d-day settling window", gain, th.SettlingDays),
							"Stop-loss rules are muted during settling",
						},
					}
				default:
					return Outcome{
						Label: "SETTLING", Color: "muted", Action: model.ActionMonitor, Priority: 0,
						Reasoning: []string{fmt.Sprintf("Position is %d days old, inside the settling window", in.Valuation.HoldingDays)},
					}
				}
			},
		},
		{
			name: "hard_stop_loss",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct <= -th.HardStopLossPct
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "STOP LOSS", Color: "critical", Action: model.ActionSellAll, Priority: 100,
					Reasoning: []string{
						fmt.Sprintf("Loss %.1f%% breached the hard stop at -%.0f%%", in.Valuation.GainLossPct, th.HardStopLossPct),
						"Exit the full position to cap the damage",
					},
				}
			},
		},
		{
			name: "trailing_stop",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct > 0 && in.Valuation.DrawdownPct <= -th.TrailingStopPct
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "TRAILING STOP", Color: "sell", Action: model.ActionSellHalf, Priority: 90,
					Reasoning: []string{
						fmt.Sprintf("Price fell %.1f%% from the post-entry peak of %.2f", -in.Valuation.DrawdownPct, in.Valuation.PeakSinceBuy),
						fmt.Sprintf("Still up %.1f%% overall, protect the remaining gain", in.Valuation.GainLossPct),
					},
				}
			},
		},
		{
			name: "extreme_profit",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct >= th.ProfitTier4
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "EXTREME PROFIT", Color: "sell", Action: model.ActionSellMost, Priority: 85,
					Reasoning: []string{
						fmt.Sprintf("Gain %.1f%% is beyond the top profit tier (%.0f%%)", in.Valuation.GainLossPct, th.ProfitTier4),
						"Lock in the bulk of an outsized move",
					},
				}
			},
		},
		{
			name: "overbought_profit",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct > 0 && in.Indicators.RSI >= th.RSIExtreme
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "OVERBOUGHT", Color: "sell", Action: model.ActionSellQuarter, Priority: 80,
					Reasoning: []string{
						fmt.Sprintf("RSI %.0f is in the extreme zone (>%.0f) while profitable", in.Indicators.RSI, th.RSIExtreme),
						"Trim into strength before the pullback",
					},
				}
			},
		},
		{
			name: "profit_tier3",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct >= th.ProfitTier3
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "TAKE PROFIT", Color: "sell", Action: model.ActionSellQuarter, Priority: 70,
					Reasoning: []string{
						fmt.Sprintf("Gain %.1f%% cleared the third profit tier (%.0f%%)", in.Valuation.GainLossPct, th.ProfitTier3),
					},
				}
			},
		},
		{
			name: "soft_stop_loss",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct <= -th.SoftStopLossPct
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "STOP WARNING", Color: "warning", Action: model.ActionSellHalf, Priority: 75,
					Reasoning: []string{
						fmt.Sprintf("Loss %.1f%% breached the soft stop at -%.0f%%", in.Valuation.GainLossPct, th.SoftStopLossPct),
						"Reduce exposure before the hard stop is forced",
					},
				}
			},
		},
		{
			name: "profit_tier2",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct >= th.ProfitTier2
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "TRIM ZONE", Color: "sell", Action: model.ActionConsiderTrim, Priority: 60,
					Reasoning: []string{
						fmt.Sprintf("Gain %.1f%% cleared the second profit tier (%.0f%%)", in.Valuation.GainLossPct, th.ProfitTier2),
					},
				}
			},
		},
		{
			name: "tier1_overbought",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct >= th.ProfitTier1 && in.Indicators.RSI >= th.RSIOverbought
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "PROFIT + OVERBOUGHT", Color: "sell", Action: model.ActionConsiderTrim, Priority: 50,
					Reasoning: []string{
						fmt.Sprintf("Gain %.1f%% with RSI %.0f above %.0f", in.Valuation.GainLossPct, in.Indicators.RSI, th.RSIOverbought),
					},
				}
			},
		},
		{
			name: "bearish_divergence",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct > 0 && in.Indicators.Divergence == model.DivergenceBearish
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "BEARISH DIVERGENCE", Color: "watch", Action: model.ActionWatchClosely, Priority: 45,
					Reasoning: []string{
						"Price is making highs the RSI is not confirming",
						fmt.Sprintf("Gain %.1f%% could be topping out", in.Valuation.GainLossPct),
					},
				}
			},
		},
		{
			name: "distribution",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct > 0 && in.Indicators.VolumePattern == model.VolumeDistribution
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "DISTRIBUTION", Color: "watch", Action: model.ActionWatchClosely, Priority: 40,
					Reasoning: []string{
						"Down-day volume is dominating the recent sessions",
						"Institutions may be unloading into the bid",
					},
				}
			},
		},
		{
			name: "warning_loss",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct <= -th.WarningLossPct
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "LOSS WATCH", Color: "warning", Action: model.ActionMonitor, Priority: 30,
					Reasoning: []string{
						fmt.Sprintf("Loss %.1f%% is inside the warning zone (-%.0f%% to -%.0f%%)",
							in.Valuation.GainLossPct, th.WarningLossPct, th.SoftStopLossPct),
					},
				}
			},
		},
		{
			name: "add_on_dip",
			guard: func(in Input) bool {
				return e.canAdd(in) &&
					in.Valuation.DrawdownPct <= -th.AddOnDipPct &&
					in.Indicators.RSI <= th.AddOnDipRSI
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "DIP BUY WATCH", Color: "buy", Action: model.ActionBuyMore, Priority: 55,
					Reasoning: []string{
						fmt.Sprintf("Pullback %.1f%% from the peak with RSI %.0f", -in.Valuation.DrawdownPct, in.Indicators.RSI),
						fmt.Sprintf("Held %d days, eligible to add", in.Valuation.HoldingDays),
					},
				}
			},
		},
		{
			name: "bullish_divergence",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct < 0 && in.Indicators.Divergence == model.DivergenceBullish
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "BULLISH DIVERGENCE", Color: "buy", Action: model.ActionHoldStrong, Priority: 35,
					Reasoning: []string{
						"RSI is strengthening while price makes lows",
						"Selling pressure looks exhausted, hold through the dip",
					},
				}
			},
		},
		{
			name: "add_on_breakout",
			guard: func(in Input) bool {
				return e.canAdd(in) &&
					in.Indicators.Resistance > 0 &&
					in.Indicators.CurrentPrice >= in.Indicators.Resistance*th.BreakoutProximity &&
					in.Indicators.VolumeSpike
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "WHALE ALERT", Color: "buy", Action: model.ActionBuyMore, Priority: 50,
					Reasoning: []string{
						fmt.Sprintf("Price %.2f is pressing the recent high %.2f on %.1fx volume",
							in.Indicators.CurrentPrice, in.Indicators.Resistance, in.Indicators.VolumeRatio),
						"Breakout on institutional-scale volume",
					},
				}
			},
		},
		{
			name: "accumulation",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct >= 0 && in.Indicators.VolumePattern == model.VolumeAccumulation
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "ACCUMULATION", Color: "hold", Action: model.ActionHoldStrong, Priority: 20,
					Reasoning: []string{"Up-day volume is dominating, buyers are absorbing supply"},
				}
			},
		},
		{
			name: "tier1_hold",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct >= th.ProfitTier1
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "PROFIT HOLD", Color: "hold", Action: model.ActionHold, Priority: 15,
					Reasoning: []string{
						fmt.Sprintf("Gain %.1f%% at the first profit tier, momentum intact", in.Valuation.GainLossPct),
					},
				}
			},
		},
		{
			name: "profitable_hold",
			guard: func(in Input) bool {
				return in.Valuation.GainLossPct > 0
			},
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "HOLD", Color: "hold", Action: model.ActionHold, Priority: 10,
					Reasoning: []string{fmt.Sprintf("Up %.1f%%, nothing actionable", in.Valuation.GainLossPct)},
				}
			},
		},
		{
			name:  "loss_hold",
			guard: func(in Input) bool { return true },
			outcome: func(in Input) Outcome {
				return Outcome{
					Label: "HOLD", Color: "hold", Action: model.ActionHold, Priority: 10,
					Reasoning: []string{fmt.Sprintf("Down %.1f%%, still above every exit level", in.Valuation.GainLossPct)},
				}
			},
		},
	}
}

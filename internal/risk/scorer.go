package risk

import "github.com/jergrif73/whale-watcher/internal/model"

// Score computes the composite hold-risk score for one asset: base 50 with
// additive adjustments from P/L, RSI, trend, volume pattern, drawdown from
// peak, and divergence, clamped to [0,100]. Higher means riskier to keep
// holding.
func Score(val model.Valuation, ind model.IndicatorSet) int {
	score := 50.0

	switch {
	case val.GainLossPct < -10:
		score += 15
	case val.GainLossPct < -5:
		score += 8
	case val.GainLossPct > 20:
		score -= 10
	case val.GainLossPct > 10:
		score -= 5
	}

	switch {
	case ind.RSI > 80:
		score += 15
	case ind.RSI > 70:
		score += 8
	case ind.RSI < 30:
		score -= 5
	}

	switch ind.Trend {
	case model.TrendDown:
		score += 10
	case model.TrendUp:
		score -= 10
	}

	switch ind.VolumePattern {
	case model.VolumeDistribution:
		score += 12
	case model.VolumeAccumulation:
		score -= 8
	}

	switch {
	case val.DrawdownPct < -15:
		score += 15
	case val.DrawdownPct < -10:
		score += 8
	}

	switch ind.Divergence {
	case model.DivergenceBearish:
		score += 10
	case model.DivergenceBullish:
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score)
}

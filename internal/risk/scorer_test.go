package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jergrif73/whale-watcher/internal/model"
)

func TestScore_NeutralInputsStayAtBase(t *testing.T) {
	score := Score(model.Valuation{}, model.IndicatorSet{RSI: 50, Trend: model.TrendSideways, VolumePattern: model.VolumeNeutral})
	assert.Equal(t, 50, score)
}

func TestScore_Adjustments(t *testing.T) {
	tests := []struct {
		name string
		val  model.Valuation
		ind  model.IndicatorSet
		want int
	}{
		{
			name: "deep loss adds 15",
			val:  model.Valuation{GainLossPct: -12},
			ind:  model.IndicatorSet{RSI: 50, Trend: model.TrendSideways, VolumePattern: model.VolumeNeutral},
			want: 65,
		},
		{
			name: "moderate loss adds 8",
			val:  model.Valuation{GainLossPct: -6},
			ind:  model.IndicatorSet{RSI: 50, Trend: model.TrendSideways, VolumePattern: model.VolumeNeutral},
			want: 58,
		},
		{
			name: "big gain subtracts 10",
			val:  model.Valuation{GainLossPct: 25},
			ind:  model.IndicatorSet{RSI: 50, Trend: model.TrendSideways, VolumePattern: model.VolumeNeutral},
			want: 40,
		},
		{
			name: "extreme rsi adds 15",
			val:  model.Valuation{},
			ind:  model.IndicatorSet{RSI: 85, Trend: model.TrendSideways, VolumePattern: model.VolumeNeutral},
			want: 65,
		},
		{
			name: "oversold rsi subtracts 5",
			val:  model.Valuation{},
			ind:  model.IndicatorSet{RSI: 25, Trend: model.TrendSideways, VolumePattern: model.VolumeNeutral},
			want: 45,
		},
		{
			name: "downtrend with distribution",
			val:  model.Valuation{},
			ind:  model.IndicatorSet{RSI: 50, Trend: model.TrendDown, VolumePattern: model.VolumeDistribution},
			want: 72,
		},
		{
			name: "uptrend with accumulation",
			val:  model.Valuation{},
			ind:  model.IndicatorSet{RSI: 50, Trend: model.TrendUp, VolumePattern: model.VolumeAccumulation},
			want: 32,
		},
		{
			name: "deep drawdown adds 15",
			val:  model.Valuation{DrawdownPct: -18},
			ind:  model.IndicatorSet{RSI: 50, Trend: model.TrendSideways, VolumePattern: model.VolumeNeutral},
			want: 65,
		},
		{
			name: "bearish divergence adds 10",
			val:  model.Valuation{},
			ind:  model.IndicatorSet{RSI: 50, Trend: model.TrendSideways, VolumePattern: model.VolumeNeutral, Divergence: model.DivergenceBearish},
			want: 60,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.val, tt.ind))
		})
	}
}

func TestScore_ClampedToRange(t *testing.T) {
	worst := Score(
		model.Valuation{GainLossPct: -50, DrawdownPct: -60},
		model.IndicatorSet{RSI: 95, Trend: model.TrendDown, VolumePattern: model.VolumeDistribution, Divergence: model.DivergenceBearish},
	)
	assert.Equal(t, 100, worst)

	best := Score(
		model.Valuation{GainLossPct: 50},
		model.IndicatorSet{RSI: 20, Trend: model.TrendUp, VolumePattern: model.VolumeAccumulation, Divergence: model.DivergenceBullish},
	)
	assert.GreaterOrEqual(t, best, 0)
	assert.Less(t, best, 50)
}

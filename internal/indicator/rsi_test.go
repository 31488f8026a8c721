package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jergrif73/whale-watcher/internal/model"
)

func barsFromCloses(closes ...float64) []model.PriceBar {
	bars := make([]model.PriceBar, len(closes))
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.PriceBar{
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func TestRSI_AllGainsIsExactly100(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi := RSI(barsFromCloses(closes...), 14)
	assert.Equal(t, 100.0, rsi, "zero average loss must yield RSI=100, not NaN")
}

func TestRSI_AllLossesNearZero(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	rsi := RSI(barsFromCloses(closes...), 14)
	assert.InDelta(t, 0.0, rsi, 1e-9)
}

func TestRSI_InsufficientDataReturnsNeutral(t *testing.T) {
	rsi := RSI(barsFromCloses(100, 101, 102), 14)
	assert.Equal(t, 50.0, rsi)
}

func TestRSI_AlwaysWithinBounds(t *testing.T) {
	closes := []float64{
		100, 103, 99, 107, 95, 110, 92, 115, 90, 120,
		88, 125, 85, 130, 84, 133, 82, 140, 80, 145,
	}
	series := RSISeries(barsFromCloses(closes...), 14)
	for i, v := range series {
		if math.IsNaN(v) {
			assert.Less(t, i, 14, "NaN only allowed during warm-up")
			continue
		}
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestRSISeries_WarmupIsNaN(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i%3)
	}
	series := RSISeries(barsFromCloses(closes...), 14)
	require.Len(t, series, 20)
	for i := 0; i < 14; i++ {
		assert.True(t, math.IsNaN(series[i]), "bar %d should be undefined", i)
	}
	for i := 14; i < 20; i++ {
		assert.False(t, math.IsNaN(series[i]), "bar %d should be defined", i)
	}
}

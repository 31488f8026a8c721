package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize_RiskBased(t *testing.T) {
	res, err := Size(SizingInput{
		PortfolioValue:  100000,
		RiskPerTradePct: 1,
		MaxPositionPct:  10,
		EntryPrice:      100,
		StopPrice:       92,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1000, res.RiskDollars, 1e-9)
	assert.InDelta(t, 8, res.RiskPerUnitPct, 1e-9)
	assert.InDelta(t, 12500, res.RiskBasedSize, 1e-9)
	// 12500 exceeds the 10% cap of 10000.
	assert.InDelta(t, 10000, res.Recommended, 1e-9)
}

func TestSize_UncappedWhenTightStop(t *testing.T) {
	res, err := Size(SizingInput{
		PortfolioValue:  100000,
		RiskPerTradePct: 0.5,
		MaxPositionPct:  10,
		EntryPrice:      100,
		StopPrice:       90,
	})
	require.NoError(t, err)
	assert.InDelta(t, 5000, res.Recommended, 1e-9)
}

func TestSize_RejectsDegenerateInputs(t *testing.T) {
	_, err := Size(SizingInput{PortfolioValue: 0, EntryPrice: 100, StopPrice: 90})
	assert.Error(t, err)

	_, err = Size(SizingInput{PortfolioValue: 1000, EntryPrice: 100, StopPrice: 100})
	assert.Error(t, err)

	_, err = Size(SizingInput{PortfolioValue: 1000, EntryPrice: 0, StopPrice: 90})
	assert.Error(t, err)
}

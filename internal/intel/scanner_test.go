package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_InsiderPurchaseForcesCritical(t *testing.T) {
	a := Scan([]Item{
		{Ticker: "NVDA", Text: "Form 4 filed: Insider Purchase by director, 10,000 shares"},
	})
	assert.True(t, a.Critical)
}

func TestScan_KeywordCounts(t *testing.T) {
	a := Scan([]Item{
		{Ticker: "AMD", Text: "Analyst upgrade after company beats on revenue"},
		{Ticker: "AMD", Text: "Chipmaker faces lawsuit over patent claims"},
	})
	assert.Equal(t, 2, a.Bullish)
	assert.Equal(t, 1, a.Bearish)
	assert.False(t, a.Critical)
}

func TestScan_EmptyFeed(t *testing.T) {
	a := Scan(nil)
	assert.Zero(t, a.Bullish)
	assert.Zero(t, a.Bearish)
	assert.False(t, a.Critical)
}

func TestScanByTicker(t *testing.T) {
	out := ScanByTicker([]Item{
		{Ticker: "NVDA", Text: "insider buy reported"},
		{Ticker: "AMD", Text: "downgrade to neutral"},
	})
	require.Len(t, out, 2)
	assert.True(t, out["NVDA"].Critical)
	assert.Equal(t, 1, out["AMD"].Bearish)
	assert.False(t, out["AMD"].Critical)
}

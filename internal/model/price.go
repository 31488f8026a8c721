package model

import "time"

// AssetCategory groups watchlist entries for reporting and attribution.
type AssetCategory string

const (
	CategoryStock  AssetCategory = "STOCK"
	CategoryETF    AssetCategory = "ETF"
	CategoryCrypto AssetCategory = "CRYPTO"
)

// Asset describes one watchlist entry.
type Asset struct {
	Ticker   string
	Name     string
	Category AssetCategory
	// ContinuousTrading is true for assets that trade around the clock
	// (crypto); weekend handling only applies when it is false.
	ContinuousTrading bool
}

// PriceBar represents a single daily candlestick bar.
type PriceBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the chronological bar history for one asset.
type PriceSeries struct {
	Ticker    string
	Bars      []PriceBar
	FetchedAt time.Time
}

// CurrentPrice returns the most recent close, or 0 for an empty series.
func (s *PriceSeries) CurrentPrice() float64 {
	if len(s.Bars) == 0 {
		return 0
	}
	return s.Bars[len(s.Bars)-1].Close
}

// Closes extracts the close prices in bar order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/jergrif73/whale-watcher/internal/intel"
	"github.com/jergrif73/whale-watcher/internal/model"
)

// StaticProvider serves pre-materialized series and intel items, for
// development and tests.
type StaticProvider struct {
	SeriesByTicker map[string]*model.PriceSeries
	ItemsByTicker  map[string][]intel.Item
}

func (p *StaticProvider) Name() string { return "static" }

func (p *StaticProvider) Series(_ context.Context, ticker string) (*model.PriceSeries, error) {
	s, ok := p.SeriesByTicker[ticker]
	if !ok {
		return nil, fmt.Errorf("no series for %s", ticker)
	}
	return s, nil
}

func (p *StaticProvider) Items(_ context.Context, ticker string) ([]intel.Item, error) {
	return p.ItemsByTicker[ticker], nil
}

// GenerateBars builds a synthetic drifting series ending today, one bar per
// day, for development use.
func GenerateBars(basePrice float64, count int, driftPerBar float64) []model.PriceBar {
	bars := make([]model.PriceBar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*driftPerBar)
		bars[i] = model.PriceBar{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

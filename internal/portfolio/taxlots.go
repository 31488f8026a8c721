package portfolio

import (
	"fmt"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// TaxConfig sets the holding-period boundaries for tax-lot aging.
type TaxConfig struct {
	LongTermDays       int     `yaml:"long_term_days"`
	AlmostLongBuffer   int     `yaml:"almost_long_buffer"`
	MaterialityGainPct float64 `yaml:"materiality_gain_pct"`
}

// DefaultTaxConfig matches US long-term capital-gains treatment.
func DefaultTaxConfig() TaxConfig {
	return TaxConfig{
		LongTermDays:       365,
		AlmostLongBuffer:   30,
		MaterialityGainPct: 20,
	}
}

// TaxLots classifies each open position by holding period. An alert is
// attached only when the lot is inside the almost-long buffer while
// profitable (wait for the cheaper rate), or when a short-term gain is
// already material.
func TaxLots(recs []model.Recommendation, cfg TaxConfig) []model.TaxLot {
	var lots []model.TaxLot
	for _, r := range recs {
		if !r.Valuation.HoldingKnown || r.Valuation.AmountInvested <= 0 {
			continue
		}
		days := r.Valuation.HoldingDays
		lot := model.TaxLot{Ticker: r.Ticker, HoldingDays: days}

		switch {
		case days >= cfg.LongTermDays:
			lot.Status = model.TaxLongTerm
		case days >= cfg.LongTermDays-cfg.AlmostLongBuffer:
			lot.Status = model.TaxAlmostLong
			if r.Valuation.GainLossPct > 0 {
				lot.Alert = fmt.Sprintf("%d days to long-term treatment, currently up %.1f%%",
					cfg.LongTermDays-days, r.Valuation.GainLossPct)
			}
		default:
			lot.Status = model.TaxShortTerm
			if r.Valuation.GainLossPct >= cfg.MaterialityGainPct {
				lot.Alert = fmt.Sprintf("Short-term gain of %.1f%% would be taxed at the higher rate",
					r.Valuation.GainLossPct)
			}
		}
		lots = append(lots, lot)
	}
	return lots
}

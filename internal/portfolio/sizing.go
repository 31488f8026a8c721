package portfolio

import "errors"

// SizingInput describes one candidate entry for position sizing.
type SizingInput struct {
	PortfolioValue  float64
	RiskPerTradePct float64
	MaxPositionPct  float64
	EntryPrice      float64
	StopPrice       float64
}

// SizingResult is the recommended dollar allocation for the entry.
type SizingResult struct {
	RiskDollars    float64
	RiskPerUnitPct float64
	RiskBasedSize  float64
	MaxPositionCap float64
	Recommended    float64
}

// Size computes the dollar position size capped at both the risk budget and
// the maximum single-position share of the portfolio. The stop must sit
// below the entry.
func Size(in SizingInput) (SizingResult, error) {
	if in.PortfolioValue <= 0 {
		return SizingResult{}, errors.New("portfolio value must be positive")
	}
	if in.EntryPrice <= 0 || in.StopPrice <= 0 {
		return SizingResult{}, errors.New("entry and stop prices must be positive")
	}
	if in.StopPrice >= in.EntryPrice {
		return SizingResult{}, errors.New("stop price must be below entry price")
	}

	res := SizingResult{
		RiskDollars:    in.PortfolioValue * in.RiskPerTradePct / 100,
		RiskPerUnitPct: (in.EntryPrice - in.StopPrice) / in.EntryPrice * 100,
		MaxPositionCap: in.PortfolioValue * in.MaxPositionPct / 100,
	}
	res.RiskBasedSize = res.RiskDollars / (res.RiskPerUnitPct / 100)
	res.Recommended = res.RiskBasedSize
	if res.Recommended > res.MaxPositionCap {
		res.Recommended = res.MaxPositionCap
	}
	return res, nil
}

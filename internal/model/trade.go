package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeAction is the side of a ledger entry.
type TradeAction string

const (
	TradeBuy  TradeAction = "BUY"
	TradeSell TradeAction = "SELL"
)

// Trade is one append-only ledger entry. Amounts are dollars invested or
// withdrawn, never share counts.
type Trade struct {
	ID        string          `json:"id"`
	Ticker    string          `json:"ticker"`
	Action    TradeAction     `json:"action"`
	Amount    decimal.Decimal `json:"amount_invested"`
	Timestamp time.Time       `json:"timestamp"`
	Notes     string          `json:"notes,omitempty"`
}

// Position is the derived state of one ticker, rebuilt by replaying its
// trades in timestamp order. It is never stored.
type Position struct {
	Ticker         string
	AmountInvested float64
	FirstBuy       time.Time
	LastBuy        time.Time
	BuyCount       int
}

// Open reports whether any invested dollars remain.
func (p *Position) Open() bool {
	return p.AmountInvested > 0
}

// OpenedAt returns the holding-period anchor, or zero time when unknown.
func (p *Position) OpenedAt() time.Time {
	return p.FirstBuy
}

// HoldingDays returns whole days held as of now, and false when the opening
// date is unknown.
func (p *Position) HoldingDays(now time.Time) (int, bool) {
	if p.FirstBuy.IsZero() {
		return 0, false
	}
	return int(now.Sub(p.FirstBuy).Hours() / 24), true
}

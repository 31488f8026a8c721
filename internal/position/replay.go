package position

import (
	"sort"
	"time"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// Replay rebuilds the open position for one ticker from its trades in
// timestamp order. A SELL reduces invested dollars; when invested dollars
// reach zero the position closes and the holding-period clock resets, so a
// later BUY starts fresh. Invested dollars never go negative.
func Replay(ticker string, trades []model.Trade) model.Position {
	ordered := make([]model.Trade, 0, len(trades))
	for _, t := range trades {
		if t.Ticker == ticker {
			ordered = append(ordered, t)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	pos := model.Position{Ticker: ticker}
	for _, t := range ordered {
		amount := t.Amount.InexactFloat64()
		switch t.Action {
		case model.TradeBuy:
			if pos.AmountInvested == 0 {
				pos.FirstBuy = t.Timestamp
			}
			pos.AmountInvested += amount
			pos.LastBuy = t.Timestamp
			pos.BuyCount++
		case model.TradeSell:
			pos.AmountInvested -= amount
			if pos.AmountInvested <= 0 {
				pos.AmountInvested = 0
				pos.FirstBuy = time.Time{}
				pos.LastBuy = time.Time{}
				pos.BuyCount = 0
			}
		}
	}
	return pos
}

// ReplayAll rebuilds positions for every ticker present in the trade log and
// returns only the open ones.
func ReplayAll(trades []model.Trade) map[string]model.Position {
	tickers := map[string]struct{}{}
	for _, t := range trades {
		tickers[t.Ticker] = struct{}{}
	}
	open := make(map[string]model.Position, len(tickers))
	for ticker := range tickers {
		pos := Replay(ticker, trades)
		if pos.Open() {
			open[ticker] = pos
		}
	}
	return open
}

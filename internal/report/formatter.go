package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jergrif73/whale-watcher/internal/model"
	"github.com/jergrif73/whale-watcher/internal/portfolio"
)

// FormatRecommendations renders the ranked recommendation table as plain
// text, one asset per block. Collaborators that need HTML or email render
// from the Recommendation values directly.
func FormatRecommendations(recs []model.Recommendation) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("WHALE WATCHER | %s\n", time.Now().Format("2006-01-02")))
	b.WriteString(strings.Repeat("─", 48) + "\n")

	if len(recs) == 0 {
		b.WriteString("No assets evaluated.\n")
		return b.String()
	}

	for _, r := range recs {
		marker := " "
		if r.Critical {
			marker = "!"
		}
		b.WriteString(fmt.Sprintf("%s %-6s [%s] %s", marker, r.Ticker, r.Category, r.SignalLabel))
		if r.Action != model.ActionNone {
			b.WriteString(fmt.Sprintf(" → %s", r.Action))
		}
		b.WriteString(fmt.Sprintf(" (priority %d, risk %d)\n", r.Priority, r.RiskScore))

		b.WriteString(fmt.Sprintf("    price %.2f | RSI %.0f | trend %s | vol %.1fx %s\n",
			r.Indicators.CurrentPrice, r.Indicators.RSI, r.Indicators.Trend,
			r.Indicators.VolumeRatio, r.Indicators.VolumePattern))
		if r.Valuation.AmountInvested > 0 {
			b.WriteString(fmt.Sprintf("    invested $%.0f → $%.0f (%+.1f%%), drawdown %.1f%%\n",
				r.Valuation.AmountInvested, r.Valuation.CurrentValue,
				r.Valuation.GainLossPct, r.Valuation.DrawdownPct))
		}
		for _, reason := range r.Reasoning {
			b.WriteString(fmt.Sprintf("    • %s\n", reason))
		}
	}
	return b.String()
}

// FormatSummary renders the account-level analytics as plain text.
func FormatSummary(s *portfolio.Summary) string {
	var b strings.Builder

	b.WriteString("PORTFOLIO SUMMARY\n")
	b.WriteString(strings.Repeat("─", 48) + "\n")
	b.WriteString(fmt.Sprintf("Invested $%.0f → $%.0f (%+.1f%%) | alpha %+.2f\n",
		s.TotalInvested, s.TotalValue, s.TotalReturnPct, s.BenchmarkAlpha))

	for _, c := range s.ByCategory {
		b.WriteString(fmt.Sprintf("  %-6s %dW/%dL  +$%.0f / -$%.0f  PF %.2f\n",
			c.Category, c.Wins, c.Losses, c.TotalGain, c.TotalLoss, c.ProfitFactor))
	}

	for _, cad := range s.Cadences {
		b.WriteString(fmt.Sprintf("  DCA %-6s %d buys, every %.0f days (%s)\n",
			cad.Ticker, cad.BuyCount, cad.AvgIntervalDays, cad.Classification))
	}

	for _, lot := range s.TaxLots {
		b.WriteString(fmt.Sprintf("  TAX %-6s %d days, %s", lot.Ticker, lot.HoldingDays, lot.Status))
		if lot.Alert != "" {
			b.WriteString(" — " + lot.Alert)
		}
		b.WriteString("\n")
	}
	return b.String()
}

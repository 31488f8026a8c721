package intel

import "strings"

// Item is one free-text record from the qualitative feed: a news headline or
// an insider-transaction line. The feed itself is fetched elsewhere.
type Item struct {
	Ticker string
	Text   string
}

// Assessment is the keyword scan result for one ticker.
type Assessment struct {
	Bullish  int
	Bearish  int
	Critical bool
}

// criticalPhrases force the critical flag; an insider buying with their own
// money outranks any headline sentiment.
var criticalPhrases = []string{
	"insider purchase",
	"insider buy",
	"director purchase",
	"ceo purchase",
}

var bullishKeywords = []string{
	"upgrade", "beats", "record revenue", "buyback", "partnership",
	"approval", "contract win", "raises guidance",
}

var bearishKeywords = []string{
	"downgrade", "misses", "lawsuit", "investigation", "recall",
	"bankruptcy", "cuts guidance", "insider sale",
}

// Scan counts bullish and bearish keyword hits over the items for one ticker
// and raises the critical flag when an insider-purchase record is present.
// Matching is case-insensitive substring search.
func Scan(items []Item) Assessment {
	var a Assessment
	for _, it := range items {
		text := strings.ToLower(it.Text)
		for _, p := range criticalPhrases {
			if strings.Contains(text, p) {
				a.Critical = true
				break
			}
		}
		for _, k := range bullishKeywords {
			if strings.Contains(text, k) {
				a.Bullish++
			}
		}
		for _, k := range bearishKeywords {
			if strings.Contains(text, k) {
				a.Bearish++
			}
		}
	}
	return a
}

// ScanByTicker groups items by ticker and scans each group.
func ScanByTicker(items []Item) map[string]Assessment {
	grouped := map[string][]Item{}
	for _, it := range items {
		grouped[it.Ticker] = append(grouped[it.Ticker], it)
	}
	out := make(map[string]Assessment, len(grouped))
	for ticker, group := range grouped {
		out[ticker] = Scan(group)
	}
	return out
}

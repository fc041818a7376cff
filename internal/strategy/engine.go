package strategy

import (
	"fmt"
	"sort"

	"StockPicker/internal/model"
)

// RSIMode selects how the RSI term of the score is counted.
type RSIMode string

const (
	// RSIModeLiteral counts RSI values > 0 over the last 70 rows, so almost every
	// symbol gets 70 on this term.
	RSIModeLiteral RSIMode = "literal"
	// RSIModeBelow70 counts RSI values < 70 over the last Threshold rows.
	RSIModeBelow70 RSIMode = "below70"
)

// LiteralRSIWindow is the row count the literal RSI counter looks at.
const LiteralRSIWindow = 70

// ParseRSIMode validates a mode name.
func ParseRSIMode(s string) (RSIMode, error) {
	switch RSIMode(s) {
	case RSIModeLiteral, RSIModeBelow70:
		return RSIMode(s), nil
	case "":
		return RSIModeLiteral, nil
	default:
		return "", fmt.Errorf("unknown rsi mode %q", s)
	}
}

// Rules parameterises Score.
type Rules struct {
	Threshold int
	RSIMode   RSIMode
}

// DefaultRules returns the default scoring: threshold 5, literal RSI counter.
func DefaultRules() Rules {
	return Rules{Threshold: DefaultThreshold, RSIMode: RSIModeLiteral}
}

// Score computes the counter terms for one analysed symbol.
func Score(a *model.Analysis, rules Rules) model.ScoreBreakdown {
	th := rules.Threshold
	if th <= 0 {
		th = DefaultThreshold
	}
	adj := a.Series.AdjCloses()

	s := model.ScoreBreakdown{
		MACDPositive: CountRecentPositive(a.MACD, th),
		MACDNegative: CountRecentNegative(a.MACD, th),
		AboveBBLow:   CountRecentPositive(diff(adj, a.BBLow), th),
		AboveMA50:    CountRecentPositive(diff(adj, a.MA50), th),
		AboveMA200:   CountRecentPositive(diff(adj, a.MA200), th),
		StochBelow80: CountRecentPositive(minus(80, a.Stoch), th),
	}
	switch rules.RSIMode {
	case RSIModeBelow70:
		s.RSI = CountRecentBelow(a.RSI, 70, th)
	default:
		s.RSI = CountRecentPositive(a.RSI, LiteralRSIWindow)
	}

	s.Total = s.MACDPositive - s.MACDNegative + s.RSI +
		s.AboveBBLow + s.AboveMA50 + s.AboveMA200 + s.StochBelow80
	return s
}

// Rank orders qualifying symbols by score descending, then symbol ascending, and
// keeps the first n.
func Rank(scores map[string]int, n int) []model.Ranked {
	ranked := make([]model.Ranked, 0, len(scores))
	for sym, sc := range scores {
		if sc > 0 {
			ranked = append(ranked, model.Ranked{Symbol: sym, Score: sc})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Symbol < ranked[j].Symbol
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

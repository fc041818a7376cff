package notifier

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"StockPicker/internal/model"
)

// NoResults is printed when nothing qualified.
const NoResults = "No top stocks found."

var columns = []string{"Date", "Adj Close", "macd", "rsi", "bb_high", "bb_low", "ma_50", "ma_200", "stoch_oscillator"}

// FormatReport renders the ranked symbols with their last rows of indicator data.
func FormatReport(res *model.Result, rows int) string {
	if res == nil || len(res.Top) == 0 {
		return NoResults + "\n"
	}

	var b strings.Builder
	b.WriteString("Top Stocks and their Technical Analysis:\n")
	for _, r := range res.Top {
		b.WriteString(fmt.Sprintf("\nSymbol: %s, Score: %d\n", r.Symbol, r.Score))
		a, ok := res.Analyses[r.Symbol]
		if !ok {
			continue
		}
		b.WriteString(FormatRows(a.Tail(rows)))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatRows renders analysis rows as a borderless table.
func FormatRows(rows []model.AnalysisRow) string {
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			r.Time.Format("2006-01-02"),
			currency(r.AdjClose),
			fixed(r.MACD),
			fixed(r.RSI),
			currency(r.BBHigh),
			currency(r.BBLow),
			currency(r.MA50),
			currency(r.MA200),
			fixed(r.Stoch),
		})
	}

	cell := lipgloss.NewStyle().PaddingRight(1).Align(lipgloss.Right)
	first := lipgloss.NewStyle().PaddingRight(1)
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers(columns...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return first
			}
			return cell
		})
	return t.String()
}

// currency renders v as dollars with two decimals.
func currency(v float64) string {
	return "$" + fixed(v)
}

// fixed renders v with two decimals, rounding the exact binary value half to even.
// Non-finite values use nan/inf.
func fixed(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

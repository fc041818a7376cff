package model

// ScoreBreakdown holds the counter terms that make up a symbol's score.
type ScoreBreakdown struct {
	MACDPositive int
	MACDNegative int
	RSI          int
	AboveBBLow   int
	AboveMA50    int
	AboveMA200   int
	StochBelow80 int
	Total        int
}

// Qualifies reports whether the score is high enough to be ranked.
func (s ScoreBreakdown) Qualifies() bool { return s.Total > 0 }

// Ranked is a qualifying symbol with its score.
type Ranked struct {
	Symbol string
	Score  int
}

// SkipReason classifies why a symbol was excluded from a run.
type SkipReason string

const (
	SkipNoData       SkipReason = "NO_DATA"
	SkipInsufficient SkipReason = "INSUFFICIENT_DATA"
	SkipError        SkipReason = "ERROR"
)

// Skip records a symbol excluded from a run.
type Skip struct {
	Symbol string
	Reason SkipReason
	Err    error
}

// Result is the output of one picker run.
type Result struct {
	RunID    string
	Top      []Ranked
	Analyses map[string]*Analysis
	Scores   map[string]ScoreBreakdown
	Skipped  []Skip
}

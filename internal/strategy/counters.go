package strategy

// DefaultThreshold is how many of the most recent days each counter looks at.
const DefaultThreshold = 5

// CountRecentPositive counts how many of the last threshold values are > 0.
// NaN never counts.
func CountRecentPositive(series []float64, threshold int) int {
	n := 0
	for _, v := range tail(series, threshold) {
		if v > 0 {
			n++
		}
	}
	return n
}

// CountRecentNegative counts how many of the last threshold values are < 0.
func CountRecentNegative(series []float64, threshold int) int {
	n := 0
	for _, v := range tail(series, threshold) {
		if v < 0 {
			n++
		}
	}
	return n
}

// CountRecentBelow counts how many of the last threshold values are < limit.
func CountRecentBelow(series []float64, limit float64, threshold int) int {
	n := 0
	for _, v := range tail(series, threshold) {
		if v < limit {
			n++
		}
	}
	return n
}

func tail(series []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if len(series) <= n {
		return series
	}
	return series[len(series)-n:]
}

// diff returns a - b element-wise.
func diff(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// minus returns c - s element-wise.
func minus(c float64, s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = c - v
	}
	return out
}

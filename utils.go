package lox

import "strconv"

// formatNumber renders a Lox number the way print and the ast printer
// both want it: no trailing ".0" on whole values, otherwise the shortest
// decimal that round-trips.
func formatNumber(v float64) string {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if n := len(text); n >= 2 && text[n-2:] == ".0" {
		return text[:n-2]
	}
	return text
}

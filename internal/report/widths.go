package report

import (
	"golang.org/x/text/width"
)

// DisplayWidth returns the terminal column width of s, widening East Asian
// "wide" and "fullwidth" runes to 2 columns as golang.org/x/text/width
// classifies them, and defaulting every other rune (including combining
// marks that x/text decides are "narrow" or "neutral") to 1.
func DisplayWidth(s string) int {
	total := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			total += 2
		default:
			total++
		}
	}
	return total
}

// Truncate shortens s to at most cols display columns, appending "..." when
// it had to cut, so terminal rendering never wraps a label across lines.
func Truncate(s string, cols int) string {
	if DisplayWidth(s) <= cols {
		return s
	}
	const ellipsis = "..."
	budget := cols - DisplayWidth(ellipsis)
	if budget <= 0 {
		return ellipsis
	}
	w := 0
	runes := []rune(s)
	cut := len(runes)
	for i, r := range runes {
		rw := 1
		if k := width.LookupRune(r).Kind(); k == width.EastAsianWide || k == width.EastAsianFullwidth {
			rw = 2
		}
		if w+rw > budget {
			cut = i
			break
		}
		w += rw
	}
	return string(runes[:cut]) + ellipsis
}

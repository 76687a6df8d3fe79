package report

import (
	"fmt"
	"strings"

	"github.com/netform-dev/netform/internal/diffengine"
)

// maxStatsCellWidth bounds any Stats cell before column widths are
// measured, so a future field holding free-form text can never blow out
// the table's layout.
const maxStatsCellWidth = 40

// statsTableRows builds the `## Stats` table rows, header first, one row
// per edit kind.
func statsTableRows(stats diffengine.Stats) [][]string {
	return [][]string{
		{"Kind", "Edits", "Lines"},
		{"Insert", fmt.Sprintf("%d", stats.InsertCount), fmt.Sprintf("%d", stats.InsertedLines)},
		{"Delete", fmt.Sprintf("%d", stats.DeleteCount), fmt.Sprintf("%d", stats.DeletedLines)},
		{"Replace", fmt.Sprintf("%d", stats.ReplaceCount), fmt.Sprintf("%d -> %d", stats.ReplacedOldLines, stats.ReplacedNewLines)},
	}
}

// renderStatsTable renders rows as a GitHub-flavored Markdown pipe table,
// padding every column to its widest cell's display width so the raw
// Markdown source stays aligned even when a cell holds wide runes.
func renderStatsTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	cols := len(rows[0])
	width := make([]int, cols)
	for _, row := range rows {
		for c, cell := range row {
			cell = Truncate(cell, maxStatsCellWidth)
			if w := DisplayWidth(cell); w > width[c] {
				width[c] = w
			}
		}
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		sb.WriteByte('|')
		for c, cell := range row {
			cell = Truncate(cell, maxStatsCellWidth)
			sb.WriteByte(' ')
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", width[c]-DisplayWidth(cell)))
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}

	writeRow(rows[0])

	sb.WriteByte('|')
	for _, w := range width {
		sb.WriteByte(' ')
		sb.WriteString(strings.Repeat("-", w))
		sb.WriteString(" |")
	}
	sb.WriteByte('\n')

	for _, row := range rows[1:] {
		writeRow(row)
	}

	return sb.String()
}

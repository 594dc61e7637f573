// Package report renders calculator results as text.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// alignColumns pads every cell to its column's display width and joins
// cells with a single space. Trailing padding is dropped.
func alignColumns(rows [][]string) []string {
	widths := columnWidths(rows)
	if len(widths) == 0 {
		return nil
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell)
			if pad := widths[i] - displayWidth(cell); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}

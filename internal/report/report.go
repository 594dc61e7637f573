package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/numcalc/internal/calc"
	"github.com/verte-zerg/numcalc/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C3E50")).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Render prints the result title, its two-decimal value, and the aligned
// detail rows. useColor enables terminal styling.
func Render(w io.Writer, res model.Result, cat calc.Catalog, useColor bool) error {
	title := res.Title
	value := calc.FormatValue(res.Value)
	if useColor {
		title = titleStyle.Render(title)
		value = valueStyle.Render(value)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, value); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	for _, line := range DetailLines(cat.DetailRows(res), useColor) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// DetailLines aligns detail rows into "Label: value" lines.
func DetailLines(rows []calc.DetailRow, useColor bool) []string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{row.Label + ":", row.Value}
	}
	lines := alignColumns(cells)
	if !useColor {
		return lines
	}
	styled := make([]string, len(lines))
	for i, line := range lines {
		label := cells[i][0]
		styled[i] = labelStyle.Render(label) + line[len(label):]
	}
	return styled
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/numcalc/internal/calc"
	"github.com/verte-zerg/numcalc/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4FACFE")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)
	subtitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6F4FF"))
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4FACFE")).Bold(true)
	optionStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	primaryButton   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#4FACFE")).Padding(0, 2).Bold(true)
	secondaryButton = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#6C757D")).Padding(0, 2).Bold(true)
	resultStyle     = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#A8EDEA"))
	resultTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	resultValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")).Bold(true)
	detailsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	instructionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8C8C8C")).
				Padding(0, 1).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("#4FACFE"))
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#FF4D4F")).
			Padding(1, 2)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.alert != "" {
		return m.renderAlert()
	}
	width := m.contentWidth()
	sections := []string{
		m.renderHeader(width),
		m.renderInput(),
		m.renderOperations(),
		m.renderButtons(),
	}
	if res, ok := m.form.Result(); ok {
		sections = append(sections, m.renderResult(res, width))
	}
	sections = append(sections, m.renderInstructions(width), m.help.View(m.keys))
	body := strings.Join(sections, "\n\n")
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

func (m *Model) renderHeader(width int) string {
	content := m.catalog.Header + "\n" + subtitleStyle.Render(m.catalog.Subtitle)
	return headerStyle.Width(width).Render(content)
}

func (m *Model) renderInput() string {
	lines := []string{
		labelStyle.Render(m.catalog.InputLabel),
		hintStyle.Render(m.catalog.InputHint),
		m.input.View(),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderOperations() string {
	lines := []string{labelStyle.Render(m.catalog.OperationPrompt)}
	for _, op := range model.Operations() {
		lines = append(lines, m.renderOption(op))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderOption(op model.Operation) string {
	label := fmt.Sprintf("%s %s", calc.OperationIcon(op), m.catalog.OperationLabel(op))
	if op == m.form.Operation() {
		return selectedStyle.Render("(•) " + label)
	}
	return optionStyle.Render("( ) " + label)
}

func (m *Model) renderButtons() string {
	calculate := primaryButton.Render(m.catalog.CalculateButton + " (enter)")
	reset := secondaryButton.Render(m.catalog.ResetButton + " (ctrl+r)")
	return lipgloss.JoinHorizontal(lipgloss.Top, calculate, "  ", reset)
}

func (m *Model) renderResult(res model.Result, width int) string {
	content := strings.Join([]string{
		resultTitleStyle.Render(res.Title),
		resultValueStyle.Render(calc.FormatValue(res.Value)),
		detailsStyle.Render(res.Details),
	}, "\n")
	return resultStyle.Width(width).Render(content)
}

func (m *Model) renderInstructions(width int) string {
	lines := []string{labelStyle.Render(m.catalog.InstructionsTitle)}
	for i, step := range m.catalog.Instructions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
	}
	return instructionStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderAlert() string {
	content := strings.Join([]string{
		errorStyle.Render(m.catalog.ErrorTitle),
		m.alert,
		hintStyle.Render("enter: OK"),
	}, "\n\n")
	modal := modalStyle.Render(content)
	if m.width == 0 || m.height == 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

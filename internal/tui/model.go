// Package tui provides the Bubble Tea calculator form.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/numcalc/internal/calc"
	"github.com/verte-zerg/numcalc/internal/calculator"
	"github.com/verte-zerg/numcalc/internal/generator"
)

const (
	inputHeight     = 3
	minSampleCount  = calc.MinNumbers
	maxSampleCount  = 10
	defaultWidth    = 60
	minContentWidth = 24
	maxContentWidth = 80
)

// Model implements the Bubble Tea calculator UI.
type Model struct {
	form    *calculator.Form
	catalog calc.Catalog
	gen     *generator.Generator
	logger  zerolog.Logger

	input textarea.Model
	keys  keyMap
	help  help.Model

	// alert holds the message of a failed calculation until dismissed.
	alert string

	width  int
	height int
}

// NewModel constructs a calculator TUI model around form.
func NewModel(form *calculator.Form, gen *generator.Generator, logger zerolog.Logger) *Model {
	m := &Model{
		form:    form,
		catalog: form.Catalog(),
		gen:     gen,
		logger:  logger,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.input = newInput(m.catalog.Placeholder)
	m.input.SetValue(form.Input())
	m.input.Focus()
	return m
}

func newInput(placeholder string) textarea.Model {
	input := textarea.New()
	input.Placeholder = placeholder
	input.ShowLineNumbers = false
	input.Prompt = ""
	input.CharLimit = 0
	input.SetHeight(inputHeight)
	input.SetWidth(defaultWidth)
	input.KeyMap.InsertNewline.SetEnabled(false)
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.SetWidth(m.contentWidth())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.alert != "" {
			if key.Matches(msg, m.keys.Dismiss) {
				m.alert = ""
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Calculate):
			m.calculate()
			return m, nil
		case key.Matches(msg, m.keys.NextOp), key.Matches(msg, m.keys.PrevOp):
			m.form.SetOperation(m.form.Operation().Next())
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.reset()
			return m, nil
		case key.Matches(msg, m.keys.Sample):
			m.fillSample()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.form.SetInput(m.input.Value())
	return m, cmd
}

func (m *Model) calculate() {
	m.form.SetInput(m.input.Value())
	res, err := m.form.Calculate()
	if err != nil {
		m.alert = m.catalog.Message(err)
		m.logger.Debug().Err(err).Msg("calculation rejected")
		return
	}
	m.logger.Debug().
		Str("operation", res.Operation.String()).
		Int("count", res.Count()).
		Float64("value", res.Value).
		Msg("calculated")
}

func (m *Model) reset() {
	m.form.Reset()
	m.input.Reset()
	m.alert = ""
	m.logger.Debug().Msg("form reset")
}

func (m *Model) fillSample() {
	text := m.gen.Text(m.gen.Between(minSampleCount, maxSampleCount))
	m.input.SetValue(text)
	m.form.SetInput(text)
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	w := int(float64(m.width) * 0.70)
	if w < minContentWidth {
		w = min(minContentWidth, m.width)
	}
	if w > maxContentWidth {
		w = maxContentWidth
	}
	return w
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/numcalc/internal/calc"
	"github.com/verte-zerg/numcalc/internal/calculator"
	"github.com/verte-zerg/numcalc/internal/generator"
	"github.com/verte-zerg/numcalc/internal/model"
)

func newTestModel(cat calc.Catalog) *Model {
	return NewModel(calculator.New(cat), generator.NewWithSeed(1), zerolog.Nop())
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, text string) {
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestTypingSyncsForm(t *testing.T) {
	m := newTestModel(calc.English)
	typeText(m, "10,20")
	assert.Equal(t, "10,20", m.input.Value())
	assert.Equal(t, "10,20", m.form.Input())
}

func TestEnterCalculatesAverage(t *testing.T) {
	m := newTestModel(calc.English)
	typeText(m, "10,20,30,40,50")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Empty(t, m.alert)
	res, ok := m.form.Result()
	require.True(t, ok)
	assert.Equal(t, 30.0, res.Value)

	view := m.View()
	assert.Contains(t, view, "30.00")
	assert.Contains(t, view, "Total: 150")
}

func TestEmptyInputShowsAlert(t *testing.T) {
	m := newTestModel(calc.English)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, calc.English.EmptyInput, m.alert)
	assert.Contains(t, m.View(), calc.English.EmptyInput)
	_, ok := m.form.Result()
	assert.False(t, ok)
}

func TestAlertBlocksInputUntilDismissed(t *testing.T) {
	m := newTestModel(calc.Indonesian)
	typeText(m, "1,2,3")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "❌ Minimal harus memasukkan 5 angka! Anda baru memasukkan 3 angka.", m.alert)

	typeText(m, "4")
	press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.NotEmpty(t, m.alert)
	assert.Equal(t, "1,2,3", m.input.Value())

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.alert)
	assert.Equal(t, "1,2,3", m.input.Value())
	assert.Equal(t, "1,2,3", m.form.Input())
}

func TestEscDismissesAlertWithoutQuitting(t *testing.T) {
	m := newTestModel(calc.English)
	typeText(m, "abc")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, calc.English.NoValidNumbers, m.alert)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Empty(t, m.alert)
}

func TestFailedCalculationDropsPreviousResult(t *testing.T) {
	m := newTestModel(calc.English)
	typeText(m, "1 2 3 4 5")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	_, ok := m.form.Result()
	require.True(t, ok)

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotEmpty(t, m.alert)
	_, ok = m.form.Result()
	assert.False(t, ok)
}

func TestTabTogglesOperation(t *testing.T) {
	m := newTestModel(calc.English)
	assert.Contains(t, m.View(), "(•) 📊 Compute average")

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.OperationMaximum, m.form.Operation())
	assert.Contains(t, m.View(), "(•) 🔝 Find largest value")

	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, model.OperationAverage, m.form.Operation())
}

func TestMaximumResult(t *testing.T) {
	m := newTestModel(calc.English)
	typeText(m, "3 9 1 4 2")
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	res, ok := m.form.Result()
	require.True(t, ok)
	assert.Equal(t, 9.0, res.Value)
	assert.NotContains(t, m.View(), "Total:")
}

func TestResetClearsEverything(t *testing.T) {
	m := newTestModel(calc.English)
	typeText(m, "1 2 3 4 5")
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, "", m.form.Input())
	assert.Equal(t, model.OperationAverage, m.form.Operation())
	_, ok := m.form.Result()
	assert.False(t, ok)
}

func TestSampleFillsValidInput(t *testing.T) {
	m := newTestModel(calc.English)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlG})

	value := m.input.Value()
	assert.Equal(t, value, m.form.Input())
	count := len(calc.Parse(value))
	assert.GreaterOrEqual(t, count, calc.MinNumbers)
	assert.LessOrEqual(t, count, maxSampleCount)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.alert)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(calc.English)
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotEmpty(t, m.alert)
	cmd = press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsCatalogText(t *testing.T) {
	m := newTestModel(calc.Indonesian)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	for _, want := range []string{"Kalkulator Angka", "Pisahkan dengan koma atau spasi", "Petunjuk Penggunaan"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestContentWidth(t *testing.T) {
	m := newTestModel(calc.English)
	assert.Equal(t, defaultWidth, m.contentWidth())
	m.width = 100
	assert.Equal(t, 70, m.contentWidth())
	m.width = 300
	assert.Equal(t, maxContentWidth, m.contentWidth())
	m.width = 20
	assert.Equal(t, 20, m.contentWidth())
	m.width = 30
	assert.Equal(t, minContentWidth, m.contentWidth())
}

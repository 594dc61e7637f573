package calc

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/verte-zerg/numcalc/internal/model"
)

// Catalog holds every user-facing string for one language.
type Catalog struct {
	Lang string
	Name string

	Header      string
	Subtitle    string
	InputLabel  string
	InputHint   string
	Placeholder string

	OperationPrompt string
	AverageLabel    string
	MaximumLabel    string
	AverageTitle    string
	MaximumTitle    string

	CalculateButton string
	ResetButton     string

	NumbersLabel string
	CountLabel   string
	TotalLabel   string

	ErrorTitle     string
	EmptyInput     string
	NoValidNumbers string
	// TooFew takes the parsed count as its only verb.
	TooFew string

	InstructionsTitle string
	Instructions      []string
}

// English is the default catalog.
var English = Catalog{
	Lang:              "en",
	Name:              "English",
	Header:            "🧮 Number Calculator",
	Subtitle:          "Compute the average and the largest value with ease",
	InputLabel:        fmt.Sprintf("Enter numbers (at least %d)", MinNumbers),
	InputHint:         "Separate with commas or spaces",
	Placeholder:       "Example: 10, 20, 30, 40, 50",
	OperationPrompt:   "Choose operation:",
	AverageLabel:      "Compute average",
	MaximumLabel:      "Find largest value",
	AverageTitle:      "📊 Average:",
	MaximumTitle:      "🔝 Largest value:",
	CalculateButton:   "✨ Calculate",
	ResetButton:       "🔄 Reset",
	NumbersLabel:      "Numbers entered",
	CountLabel:        "Count",
	TotalLabel:        "Total",
	ErrorTitle:        "Error",
	EmptyInput:        "❌ Please enter some numbers first!",
	NoValidNumbers:    "❌ Invalid number format! Make sure you use valid numbers.",
	TooFew:            fmt.Sprintf("❌ At least %d numbers are required! You have entered only %%d.", MinNumbers),
	InstructionsTitle: "📋 How to use:",
	Instructions: []string{
		fmt.Sprintf("Enter at least %d numbers in the input field", MinNumbers),
		"Separate numbers with a comma (,) or a space",
		"Choose the operation (average or largest value)",
		"Press Calculate to see the result",
		"Use Reset to clear all data",
	},
}

// Indonesian is the Bahasa Indonesia catalog.
var Indonesian = Catalog{
	Lang:              "id",
	Name:              "Bahasa Indonesia",
	Header:            "🧮 Kalkulator Angka",
	Subtitle:          "Hitung rata-rata dan nilai terbesar dengan mudah",
	InputLabel:        fmt.Sprintf("Masukkan Angka (minimal %d angka)", MinNumbers),
	InputHint:         "Pisahkan dengan koma atau spasi",
	Placeholder:       "Contoh: 10, 20, 30, 40, 50",
	OperationPrompt:   "Pilih Operasi:",
	AverageLabel:      "Hitung Rata-rata",
	MaximumLabel:      "Cari Nilai Terbesar",
	AverageTitle:      "📊 Rata-rata:",
	MaximumTitle:      "🔝 Nilai Terbesar:",
	CalculateButton:   "✨ Hitung",
	ResetButton:       "🔄 Reset",
	NumbersLabel:      "Angka yang dimasukkan",
	CountLabel:        "Jumlah angka",
	TotalLabel:        "Total",
	ErrorTitle:        "Error",
	EmptyInput:        "❌ Silakan masukkan angka terlebih dahulu!",
	NoValidNumbers:    "❌ Format angka tidak valid! Pastikan menggunakan angka yang benar.",
	TooFew:            fmt.Sprintf("❌ Minimal harus memasukkan %d angka! Anda baru memasukkan %%d angka.", MinNumbers),
	InstructionsTitle: "📋 Petunjuk Penggunaan:",
	Instructions: []string{
		fmt.Sprintf("Masukkan minimal %d angka di kolom input", MinNumbers),
		"Pisahkan angka dengan koma (,) atau spasi",
		"Pilih operasi yang diinginkan (rata-rata atau nilai terbesar)",
		"Klik tombol \"Hitung\" untuk melihat hasil",
		"Gunakan tombol \"Reset\" untuk menghapus semua data",
	},
}

var catalogs = map[string]Catalog{
	English.Lang:    English,
	Indonesian.Lang: Indonesian,
}

// CatalogFor returns the catalog for a language code.
func CatalogFor(lang string) (Catalog, bool) {
	cat, ok := catalogs[strings.ToLower(strings.TrimSpace(lang))]
	return cat, ok
}

// Languages lists the available catalog codes, sorted.
func Languages() []string {
	langs := make([]string, 0, len(catalogs))
	for lang := range catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// OperationIcon returns the glyph shown next to an operation.
func OperationIcon(op model.Operation) string {
	if op == model.OperationMaximum {
		return "🔝"
	}
	return "📊"
}

// OperationLabel returns the selector label for op.
func (c Catalog) OperationLabel(op model.Operation) string {
	if op == model.OperationMaximum {
		return c.MaximumLabel
	}
	return c.AverageLabel
}

// Title returns the result heading for op.
func (c Catalog) Title(op model.Operation) string {
	if op == model.OperationMaximum {
		return c.MaximumTitle
	}
	return c.AverageTitle
}

// Message turns an error from Compute into text for the user.
func (c Catalog) Message(err error) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}
	switch verr.Kind {
	case OutcomeEmptyInput:
		return c.EmptyInput
	case OutcomeNoValidNumbers:
		return c.NoValidNumbers
	case OutcomeTooFew:
		return fmt.Sprintf(c.TooFew, verr.Count)
	default:
		return verr.Error()
	}
}

// DetailRow is one labelled line of a result's details.
type DetailRow struct {
	Label string
	Value string
}

// DetailRows lists the input numbers, their count, and for averages the sum.
func (c Catalog) DetailRows(res model.Result) []DetailRow {
	rows := []DetailRow{
		{Label: c.NumbersLabel, Value: FormatList(res.Numbers)},
		{Label: c.CountLabel, Value: fmt.Sprintf("%d", res.Count())},
	}
	if res.Operation == model.OperationAverage {
		rows = append(rows, DetailRow{Label: c.TotalLabel, Value: FormatNumber(res.Sum)})
	}
	return rows
}

func (c Catalog) details(res model.Result) string {
	rows := c.DetailRows(res)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.Label + ": " + row.Value
	}
	return strings.Join(lines, "\n")
}

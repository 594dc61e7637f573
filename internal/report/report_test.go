package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/numcalc/internal/calc"
	"github.com/verte-zerg/numcalc/internal/model"
)

func TestAlignColumns(t *testing.T) {
	rows := [][]string{
		{"Numbers:", "1, 2, 3"},
		{"Count:", "3"},
		{"Total:", "6", "extra"},
	}
	lines := alignColumns(rows)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Numbers: 1, 2, 3" {
		t.Fatalf("unexpected line: %q", lines[0])
	}
	if lines[1] != "Count:   3" {
		t.Fatalf("unexpected line: %q", lines[1])
	}
	if lines[2] != "Total:   6       extra" {
		t.Fatalf("unexpected line: %q", lines[2])
	}
	if alignColumns(nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}

func TestAlignColumnsWideRunes(t *testing.T) {
	lines := alignColumns([][]string{{"数字:", "1"}, {"ab:", "2"}})
	if lines[0] != "数字: 1" {
		t.Fatalf("unexpected line: %q", lines[0])
	}
	if lines[1] != "ab:   2" {
		t.Fatalf("expected padding by display width, got %q", lines[1])
	}
}

func TestRenderAverage(t *testing.T) {
	res := calc.Aggregate([]float64{10, 20, 30, 40, 50}, model.OperationAverage)
	var buf bytes.Buffer
	if err := Render(&buf, res, calc.English, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := strings.Join([]string{
		"📊 Average:",
		"30.00",
		"",
		"Numbers entered: 10, 20, 30, 40, 50",
		"Count:           5",
		"Total:           150",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRenderMaximumIndonesian(t *testing.T) {
	res := calc.Indonesian.Aggregate([]float64{3, 9, 1, 4, 2}, model.OperationMaximum)
	var buf bytes.Buffer
	if err := Render(&buf, res, calc.Indonesian, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "🔝 Nilai Terbesar:\n9.00\n") {
		t.Fatalf("unexpected heading: %q", out)
	}
	if strings.Contains(out, "Total") {
		t.Fatalf("maximum report must not include total: %q", out)
	}
}

func TestDetailLinesColorKeepsText(t *testing.T) {
	rows := []calc.DetailRow{{Label: "Count", Value: "5"}}
	lines := DetailLines(rows, true)
	if len(lines) != 1 || !strings.Contains(lines[0], "Count:") || !strings.HasSuffix(lines[0], " 5") {
		t.Fatalf("unexpected styled line: %q", lines)
	}
}

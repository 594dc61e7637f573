package model

import "testing"

func TestParseOperation(t *testing.T) {
	cases := map[string]Operation{
		"average": OperationAverage,
		" AVG ":   OperationAverage,
		"mean":    OperationAverage,
		"Maximum": OperationMaximum,
		"max":     OperationMaximum,
	}
	for in, want := range cases {
		got, err := ParseOperation(in)
		if err != nil {
			t.Fatalf("ParseOperation(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseOperation(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseOperation("median"); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
}

func TestOperationDefaultsAndCycle(t *testing.T) {
	var op Operation
	if op != OperationAverage {
		t.Fatalf("expected zero value to be average, got %v", op)
	}
	if op.Next() != OperationMaximum || op.Next().Next() != OperationAverage {
		t.Fatalf("expected Next to cycle between the two operations")
	}
	if OperationMaximum.String() != "maximum" {
		t.Fatalf("unexpected name: %s", OperationMaximum)
	}
}

// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// Operation selects the aggregate computed over a number list.
type Operation int

const (
	// OperationAverage computes the arithmetic mean. It is the default.
	OperationAverage Operation = iota
	// OperationMaximum finds the greatest value.
	OperationMaximum
)

// Operations lists every operation in display order.
func Operations() []Operation {
	return []Operation{OperationAverage, OperationMaximum}
}

// String returns the canonical lower-case name of the operation.
func (o Operation) String() string {
	switch o {
	case OperationAverage:
		return "average"
	case OperationMaximum:
		return "maximum"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// Next cycles to the other operation.
func (o Operation) Next() Operation {
	if o == OperationAverage {
		return OperationMaximum
	}
	return OperationAverage
}

// ParseOperation maps a user supplied name to an Operation.
func ParseOperation(name string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "average", "avg", "mean":
		return OperationAverage, nil
	case "maximum", "max":
		return OperationMaximum, nil
	default:
		return OperationAverage, fmt.Errorf("unknown operation %q (expected average or maximum)", name)
	}
}

// Result is the outcome of a successful computation.
type Result struct {
	Operation Operation
	Title     string
	Value     float64
	Details   string
	Numbers   []float64
	Sum       float64
}

// Count returns how many numbers went into the result.
func (r Result) Count() int {
	return len(r.Numbers)
}

// Config defines interactive form settings.
type Config struct {
	Lang      string
	AltScreen bool
	LogLevel  string
	LogFile   string
}

package calc

import (
	"errors"
	"fmt"
	"strings"
)

// MinNumbers is the fewest parsed numbers a computation accepts.
const MinNumbers = 5

// OutcomeKind classifies a validation outcome.
type OutcomeKind int

const (
	// OutcomeOK means the list can be aggregated.
	OutcomeOK OutcomeKind = iota
	// OutcomeEmptyInput means the raw text was empty or whitespace only.
	OutcomeEmptyInput
	// OutcomeNoValidNumbers means no token parsed to a number.
	OutcomeNoValidNumbers
	// OutcomeTooFew means fewer than MinNumbers numbers were parsed.
	OutcomeTooFew
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeEmptyInput:
		return "empty input"
	case OutcomeNoValidNumbers:
		return "no valid numbers"
	case OutcomeTooFew:
		return "too few numbers"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the result of validating raw input and its parsed numbers.
// Count is the number of parsed values.
type Outcome struct {
	Kind  OutcomeKind
	Count int
}

// OK reports whether aggregation may proceed.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeOK
}

// Err converts a failed outcome into a *ValidationError. It returns nil for OK.
func (o Outcome) Err() error {
	if o.OK() {
		return nil
	}
	return &ValidationError{Kind: o.Kind, Count: o.Count}
}

// Sentinel errors matched by ValidationError through errors.Is.
var (
	ErrEmptyInput     = errors.New("empty input")
	ErrNoValidNumbers = errors.New("no valid numbers")
	ErrTooFew         = errors.New("too few numbers")
)

// ValidationError reports why raw input cannot be aggregated.
type ValidationError struct {
	Kind  OutcomeKind
	Count int
}

func (e *ValidationError) Error() string {
	if e.Kind == OutcomeTooFew {
		return fmt.Sprintf("too few numbers: got %d, need at least %d", e.Count, MinNumbers)
	}
	return e.Kind.String()
}

// Is matches the sentinel error for the failure kind.
func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case OutcomeEmptyInput:
		return target == ErrEmptyInput
	case OutcomeNoValidNumbers:
		return target == ErrNoValidNumbers
	case OutcomeTooFew:
		return target == ErrTooFew
	default:
		return false
	}
}

// Validate checks raw input and its parsed numbers. The empty-input check
// runs first, then the no-numbers check, then the minimum count.
func Validate(raw string, parsed []float64) Outcome {
	if isBlank(raw) {
		return Outcome{Kind: OutcomeEmptyInput}
	}
	count := len(parsed)
	switch {
	case count == 0:
		return Outcome{Kind: OutcomeNoValidNumbers}
	case count < MinNumbers:
		return Outcome{Kind: OutcomeTooFew, Count: count}
	default:
		return Outcome{Kind: OutcomeOK, Count: count}
	}
}

func isBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

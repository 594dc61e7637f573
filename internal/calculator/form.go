// Package calculator holds the state of a single number-calculator form.
package calculator

import (
	"slices"

	"github.com/verte-zerg/numcalc/internal/calc"
	"github.com/verte-zerg/numcalc/internal/model"
)

// Form owns the raw input, the selected operation, and at most one live
// result. It is not safe for concurrent use; callers serialise actions.
type Form struct {
	catalog calc.Catalog

	input     string
	operation model.Operation

	result    model.Result
	hasResult bool
}

// New returns an empty form with the average operation selected.
func New(cat calc.Catalog) *Form {
	return &Form{catalog: cat}
}

// Catalog returns the message catalog used for results.
func (f *Form) Catalog() calc.Catalog {
	return f.catalog
}

// SetInput replaces the raw input text.
func (f *Form) SetInput(raw string) {
	f.input = raw
}

// Input returns the raw input text.
func (f *Form) Input() string {
	return f.input
}

// SetOperation selects the operation used by the next Calculate.
func (f *Form) SetOperation(op model.Operation) {
	f.operation = op
}

// Operation returns the selected operation.
func (f *Form) Operation() model.Operation {
	return f.operation
}

// Result returns a copy of the live result, if any.
func (f *Form) Result() (model.Result, bool) {
	if !f.hasResult {
		return model.Result{}, false
	}
	return snapshot(f.result), true
}

// Calculate computes the selected operation over the current input. The
// previous result is discarded first, so a failed attempt leaves none. The
// input is never modified.
func (f *Form) Calculate() (model.Result, error) {
	f.clearResult()
	res, err := f.catalog.Compute(f.input, f.operation)
	if err != nil {
		return model.Result{}, err
	}
	f.result = res
	f.hasResult = true
	return snapshot(res), nil
}

// Reset clears the input and result and selects the average operation.
func (f *Form) Reset() {
	f.input = ""
	f.operation = model.OperationAverage
	f.clearResult()
}

func (f *Form) clearResult() {
	f.result = model.Result{}
	f.hasResult = false
}

// snapshot detaches the number list so callers cannot edit the live result.
func snapshot(res model.Result) model.Result {
	res.Numbers = slices.Clone(res.Numbers)
	return res
}

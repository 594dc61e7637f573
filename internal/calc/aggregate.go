package calc

import "github.com/verte-zerg/numcalc/internal/model"

// Aggregate computes op over numbers using the English catalog.
func Aggregate(numbers []float64, op model.Operation) model.Result {
	return English.Aggregate(numbers, op)
}

// Compute parses, validates, and aggregates raw using the English catalog.
func Compute(raw string, op model.Operation) (model.Result, error) {
	return English.Compute(raw, op)
}

// Aggregate computes op over numbers. It does not validate the count; an
// empty list yields a zero value.
func (c Catalog) Aggregate(numbers []float64, op model.Operation) model.Result {
	nums := make([]float64, len(numbers))
	copy(nums, numbers)

	total := sum(nums)
	res := model.Result{
		Operation: op,
		Title:     c.Title(op),
		Numbers:   nums,
		Sum:       total,
	}
	switch op {
	case model.OperationMaximum:
		res.Value = maxOf(nums)
	default:
		res.Operation = model.OperationAverage
		if len(nums) > 0 {
			res.Value = total / float64(len(nums))
		}
	}
	res.Details = c.details(res)
	return res
}

// Compute rejects blank input before parsing, then parses, validates, and
// aggregates. Failures are returned as *ValidationError.
func (c Catalog) Compute(raw string, op model.Operation) (model.Result, error) {
	if isBlank(raw) {
		return model.Result{}, Outcome{Kind: OutcomeEmptyInput}.Err()
	}
	nums := Parse(raw)
	outcome := Validate(raw, nums)
	if err := outcome.Err(); err != nil {
		return model.Result{}, err
	}
	return c.Aggregate(nums, op), nil
}

func sum(nums []float64) float64 {
	total := 0.0
	for _, v := range nums {
		total += v
	}
	return total
}

func maxOf(nums []float64) float64 {
	if len(nums) == 0 {
		return 0
	}
	m := nums[0]
	for _, v := range nums[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

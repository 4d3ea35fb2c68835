package check

import (
	"fmt"

	"github.com/leapstack-labs/leapcheck/pkg/table"
)

func init() {
	Register(CheckDef{
		Kind:        AccuracyRange,
		Name:        "accuracy range",
		Description: "Fails when any numeric value falls outside [min_value, max_value], or when non-numeric values are present.",
		Fields:      []string{"column", "min_value", "max_value"},
	})
}

// CheckAccuracyRange flags non-missing cells outside the inclusive range
// [min, max]. Non-numeric cells are violations too, counted separately from
// out-of-range values. Inverted bounds are a configuration error, not a
// data failure.
func CheckAccuracyRange(tbl *table.Table, column string, min, max float64, opts Options) (Result, error) {
	if min > max {
		return Result{}, fmt.Errorf("%w: min_value %v, max_value %v", ErrInvertedBounds, min, max)
	}
	col, ok := tbl.Column(column)
	if !ok {
		return Result{}, fmt.Errorf("column %q: %w", column, ErrColumnNotFound)
	}

	var violations []int
	validNumeric, nonNumeric, inRange := 0, 0, 0
	for i, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		f, numeric := v.AsFloat()
		if !numeric {
			nonNumeric++
			violations = append(violations, i)
			continue
		}
		validNumeric++
		if f >= min && f <= max {
			inRange++
		} else {
			violations = append(violations, i)
		}
	}
	outOfRange := validNumeric - inRange

	details := &Details{
		TotalRows:        col.Len(),
		ValidNumericRows: validNumeric,
		NonNumericRows:   nonNumeric,
		InRangeCount:     inRange,
		OutOfRangeCount:  outOfRange,
		ViolationRows:    sampleRows(violations, opts.maxSamples()),
	}

	msg := fmt.Sprintf("%d of %d numeric values within range [%v, %v].", inRange, validNumeric, min, max)
	if outOfRange > 0 {
		msg += fmt.Sprintf(" %d values out of range.", outOfRange)
	}
	if nonNumeric > 0 {
		msg += fmt.Sprintf(" %d values were non-numeric.", nonNumeric)
	}

	status := StatusPass
	if outOfRange > 0 || nonNumeric > 0 {
		status = StatusFail
	}

	return Result{
		Kind:    AccuracyRange,
		Columns: []string{column},
		Status:  status,
		Message: msg,
		Details: details,
	}, nil
}

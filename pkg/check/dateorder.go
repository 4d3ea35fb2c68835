package check

import (
	"fmt"
	"strings"
	"time"

	"github.com/leapstack-labs/leapcheck/pkg/table"
)

func init() {
	Register(CheckDef{
		Kind:        DateOrder,
		Name:        "date order",
		Description: "Fails when column_a's date is after column_b's date in any row.",
		Fields:      []string{"column_a", "column_b"},
	})
}

// CheckDateOrder parses both columns as dates and flags rows where
// date(column_a) > date(column_b). Rows where either cell is missing or
// unparseable are excluded from the pass/fail tally but reported in the
// unevaluable count, never silently treated as a pass.
func CheckDateOrder(tbl *table.Table, columnA, columnB string, opts Options) (Result, error) {
	colA, okA := tbl.Column(columnA)
	colB, okB := tbl.Column(columnB)
	if !okA || !okB {
		var missing []string
		if !okA {
			missing = append(missing, columnA)
		}
		if !okB {
			missing = append(missing, columnB)
		}
		return Result{}, fmt.Errorf("column(s) %s: %w", strings.Join(missing, ", "), ErrColumnNotFound)
	}

	layout := opts.dateFormat()
	var violations []int
	validPairs, unevaluable, satisfied := 0, 0, 0
	for i := 0; i < colA.Len(); i++ {
		a, okA := parseCellDate(colA.Values[i], layout)
		b, okB := parseCellDate(colB.Values[i], layout)
		if !okA || !okB {
			unevaluable++
			continue
		}
		validPairs++
		if a.After(b) {
			violations = append(violations, i)
		} else {
			satisfied++
		}
	}
	violated := validPairs - satisfied

	details := &Details{
		TotalRows:       colA.Len(),
		ValidPairs:      validPairs,
		UnevaluableRows: unevaluable,
		OrderSatisfied:  satisfied,
		OrderViolated:   violated,
		ViolationRows:   sampleRows(violations, opts.maxSamples()),
	}

	var msg string
	switch {
	case violated > 0:
		msg = fmt.Sprintf("%d of %d valid date pairs violate the order condition (%s > %s).", violated, validPairs, columnA, columnB)
	case validPairs > 0:
		msg = fmt.Sprintf("All %d valid date pairs satisfy the order condition.", validPairs)
	default:
		msg = "No valid date pairs to compare."
	}
	if unevaluable > 0 {
		msg += fmt.Sprintf(" %d rows could not be evaluated.", unevaluable)
	}

	status := StatusPass
	if violated > 0 {
		status = StatusFail
	}

	return Result{
		Kind:    DateOrder,
		Columns: []string{columnA, columnB},
		Status:  status,
		Message: msg,
		Details: details,
	}, nil
}

// parseCellDate parses a cell as a date using the shared convention.
// Missing cells and non-text representations do not parse.
func parseCellDate(v table.Value, layout string) (time.Time, bool) {
	if v.IsMissing() {
		return time.Time{}, false
	}
	t, err := time.Parse(layout, v.Text())
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

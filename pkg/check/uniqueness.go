package check

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/leapcheck/pkg/table"
)

func init() {
	Register(CheckDef{
		Kind:        Uniqueness,
		Name:        "uniqueness",
		Description: "Fails when any value appears more than once in the column.",
		Fields:      []string{"column"},
	})
}

// CheckUniqueness groups column values by equality and fails when any value
// occurs more than once. Missing values are ignored for duplicate detection:
// "no value" carries no duplicate information. Numeric cells compare by
// numeric value, so an integer 1 and a float 1.0 count as duplicates; other
// kinds compare by exact text within the same kind.
func CheckUniqueness(tbl *table.Table, column string, opts Options) (Result, error) {
	col, ok := tbl.Column(column)
	if !ok {
		return Result{}, fmt.Errorf("column %q: %w", column, ErrColumnNotFound)
	}

	rowsByKey := make(map[string][]int)
	textByKey := make(map[string]string)
	var order []string
	for i, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		key := duplicateKey(v)
		if _, seen := rowsByKey[key]; !seen {
			order = append(order, key)
			textByKey[key] = v.Text()
		}
		rowsByKey[key] = append(rowsByKey[key], i)
	}

	duplicateCount := 0
	var dups []DuplicateValue
	for _, key := range order {
		rows := rowsByKey[key]
		if len(rows) < 2 {
			continue
		}
		duplicateCount += len(rows) - 1
		if len(dups) < opts.maxSamples() {
			dups = append(dups, DuplicateValue{Value: textByKey[key], Rows: rows})
		}
	}

	details := &Details{
		TotalRows:       col.Len(),
		DuplicateCount:  duplicateCount,
		DuplicateValues: dups,
	}

	if duplicateCount == 0 {
		return Result{
			Kind:    Uniqueness,
			Columns: []string{column},
			Status:  StatusPass,
			Message: "No duplicate values found.",
			Details: details,
		}, nil
	}

	return Result{
		Kind:    Uniqueness,
		Columns: []string{column},
		Status:  StatusFail,
		Message: fmt.Sprintf("Found %d duplicate values.", duplicateCount),
		Details: details,
	}, nil
}

// duplicateKey returns the grouping key for duplicate detection.
func duplicateKey(v table.Value) string {
	if f, ok := v.AsFloat(); ok {
		return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
	}
	if v.Kind() == table.KindBool {
		return "b:" + v.Text()
	}
	return "s:" + v.Text()
}

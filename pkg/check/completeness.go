package check

import (
	"fmt"

	"github.com/leapstack-labs/leapcheck/pkg/table"
)

func init() {
	Register(CheckDef{
		Kind:        Completeness,
		Name:        "completeness",
		Description: "Fails when the column contains any missing values.",
		Fields:      []string{"column"},
	})
}

// CheckCompleteness counts missing-marker cells in the column. Any missing
// value is a data failure.
func CheckCompleteness(tbl *table.Table, column string, opts Options) (Result, error) {
	col, ok := tbl.Column(column)
	if !ok {
		return Result{}, fmt.Errorf("column %q: %w", column, ErrColumnNotFound)
	}

	var missingRows []int
	for i, v := range col.Values {
		if v.IsMissing() {
			missingRows = append(missingRows, i)
		}
	}

	details := &Details{
		TotalRows:     col.Len(),
		MissingCount:  len(missingRows),
		ViolationRows: sampleRows(missingRows, opts.maxSamples()),
	}

	if len(missingRows) == 0 {
		return Result{
			Kind:    Completeness,
			Columns: []string{column},
			Status:  StatusPass,
			Message: "No missing values found.",
			Details: details,
		}, nil
	}

	return Result{
		Kind:    Completeness,
		Columns: []string{column},
		Status:  StatusFail,
		Message: fmt.Sprintf("Found %d missing values.", len(missingRows)),
		Details: details,
	}, nil
}

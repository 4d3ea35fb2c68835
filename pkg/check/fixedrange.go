package check

import (
	"fmt"
	"time"

	"github.com/leapstack-labs/leapcheck/pkg/table"
)

func init() {
	Register(CheckDef{
		Kind:        FixedDateRange,
		Name:        "fixed date range",
		Description: "Fails when any date falls outside [start_date, end_date]; missing or unparseable cells count as violations.",
		Fields:      []string{"column", "start_date", "end_date"},
	})
}

// CheckFixedDateRange flags dates outside the inclusive range
// [start, end]. A cell that is missing or does not parse as a date is a
// violation as well: the absence of a valid date cannot be "in range".
// Unparseable or inverted bounds are configuration errors.
func CheckFixedDateRange(tbl *table.Table, column, startDate, endDate string, opts Options) (Result, error) {
	layout := opts.dateFormat()
	start, err := time.Parse(layout, startDate)
	if err != nil {
		return Result{}, fmt.Errorf("%w: start_date %q does not match layout %s", ErrInvalidDateBound, startDate, layout)
	}
	end, err := time.Parse(layout, endDate)
	if err != nil {
		return Result{}, fmt.Errorf("%w: end_date %q does not match layout %s", ErrInvalidDateBound, endDate, layout)
	}
	if start.After(end) {
		return Result{}, fmt.Errorf("%w: start_date %s, end_date %s", ErrInvertedBounds, startDate, endDate)
	}
	col, ok := tbl.Column(column)
	if !ok {
		return Result{}, fmt.Errorf("column %q: %w", column, ErrColumnNotFound)
	}

	var violations []int
	parseable, unparseable, missing, inRange := 0, 0, 0, 0
	for i, v := range col.Values {
		if v.IsMissing() {
			missing++
			violations = append(violations, i)
			continue
		}
		d, ok := parseCellDate(v, layout)
		if !ok {
			unparseable++
			violations = append(violations, i)
			continue
		}
		parseable++
		if !d.Before(start) && !d.After(end) {
			inRange++
		} else {
			violations = append(violations, i)
		}
	}
	outOfRange := parseable - inRange

	details := &Details{
		TotalRows:        col.Len(),
		ParseableDates:   parseable,
		UnparseableDates: unparseable,
		MissingCount:     missing,
		InRangeCount:     inRange,
		OutOfRangeCount:  outOfRange,
		ViolationRows:    sampleRows(violations, opts.maxSamples()),
	}

	msg := fmt.Sprintf("%d of %d parseable dates within range [%s, %s].", inRange, parseable, startDate, endDate)
	if outOfRange > 0 {
		msg += fmt.Sprintf(" %d dates out of range.", outOfRange)
	}
	if unparseable > 0 {
		msg += fmt.Sprintf(" %d values could not be parsed as dates.", unparseable)
	}
	if missing > 0 {
		msg += fmt.Sprintf(" %d values were missing.", missing)
	}

	status := StatusPass
	if len(violations) > 0 {
		status = StatusFail
	}

	return Result{
		Kind:    FixedDateRange,
		Columns: []string{column},
		Status:  status,
		Message: msg,
		Details: details,
	}, nil
}

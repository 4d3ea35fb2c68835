package check

import (
	"fmt"
	"regexp"

	"github.com/leapstack-labs/leapcheck/pkg/table"
)

func init() {
	Register(CheckDef{
		Kind:        RegexMatch,
		Name:        "regex match",
		Description: "Fails when any non-missing value does not fully match the pattern.",
		Fields:      []string{"column", "pattern"},
	})
}

// CheckRegexMatch compiles the pattern once and flags every non-missing cell
// whose full text does not match it. An uncompilable pattern is an engine
// error, not a data failure.
func CheckRegexMatch(tbl *table.Table, column, pattern string, opts Options) (Result, error) {
	col, ok := tbl.Column(column)
	if !ok {
		return Result{}, fmt.Errorf("column %q: %w", column, ErrColumnNotFound)
	}

	// Anchor so the whole value must match, not just a prefix.
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return Result{}, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}

	var violations []int
	applicable, matched := 0, 0
	for i, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		applicable++
		if re.MatchString(v.Text()) {
			matched++
		} else {
			violations = append(violations, i)
		}
	}
	nonMatched := applicable - matched

	details := &Details{
		TotalRows:      col.Len(),
		ApplicableRows: applicable,
		MatchedCount:   matched,
		NonMatched:     nonMatched,
		ViolationRows:  sampleRows(violations, opts.maxSamples()),
	}

	msg := fmt.Sprintf("%d of %d applicable values matched the pattern.", matched, applicable)
	status := StatusPass
	if nonMatched > 0 {
		status = StatusFail
		msg += fmt.Sprintf(" %d did not match.", nonMatched)
	}
	if applicable == 0 {
		msg = "No applicable values to check against the pattern."
	}

	return Result{
		Kind:    RegexMatch,
		Columns: []string{column},
		Status:  status,
		Message: msg,
		Details: details,
	}, nil
}

package check

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapcheck/pkg/table"
)

func init() {
	Register(CheckDef{
		Kind:        DataType,
		Name:        "data type",
		Description: "Fails when any non-missing value does not conform to the expected type.",
		Fields:      []string{"column", "expected_type"},
	})
}

// NormalizeTypeTag maps an expected-type tag to a cell kind. The enumeration
// is closed: integer, float, string and boolean, plus the engine-native
// aliases (int64, float64, object, bool) used by legacy rule files.
func NormalizeTypeTag(tag string) (table.Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "integer", "int", "int64":
		return table.KindInt, true
	case "float", "double", "number", "float64":
		return table.KindFloat, true
	case "string", "str", "text", "object":
		return table.KindString, true
	case "boolean", "bool":
		return table.KindBool, true
	default:
		return table.KindMissing, false
	}
}

// CheckDataType validates every non-missing cell against the expected type.
// Coercion is strict against the loaded representation: text that happens to
// look numeric was already typed at load time, so a KindString cell never
// satisfies a numeric expectation. Integer cells satisfy a float expectation.
func CheckDataType(tbl *table.Table, column, expectedType string, opts Options) (Result, error) {
	expected, ok := NormalizeTypeTag(expectedType)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownType, expectedType)
	}
	col, ok := tbl.Column(column)
	if !ok {
		return Result{}, fmt.Errorf("column %q: %w", column, ErrColumnNotFound)
	}

	var violations []int
	for i, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		if !conformsTo(v.Kind(), expected) {
			violations = append(violations, i)
		}
	}

	details := &Details{
		TotalRows:     col.Len(),
		ExpectedType:  expected.String(),
		ActualType:    col.Type().String(),
		ViolationRows: sampleRows(violations, opts.maxSamples()),
	}

	if len(violations) == 0 {
		return Result{
			Kind:    DataType,
			Columns: []string{column},
			Status:  StatusPass,
			Message: fmt.Sprintf("All values match expected type %s.", expected),
			Details: details,
		}, nil
	}

	return Result{
		Kind:    DataType,
		Columns: []string{column},
		Status:  StatusFail,
		Message: fmt.Sprintf("Found %d values not matching expected type %s (observed %s).", len(violations), expected, col.Type()),
		Details: details,
	}, nil
}

// conformsTo reports whether a cell kind satisfies an expected kind.
// Integers widen to float; nothing else converts implicitly.
func conformsTo(actual, expected table.Kind) bool {
	if actual == expected {
		return true
	}
	return expected == table.KindFloat && actual == table.KindInt
}

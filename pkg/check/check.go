// Package check implements the data-quality check library: one pure
// evaluation function per rule kind, each reading only the columns it needs
// and returning an immutable Result. Engine-level problems (absent column,
// inverted bounds, uncompilable pattern) are returned as errors so the
// assessment engine can record them without aborting the run.
package check

import "strings"

// Kind identifies a rule kind. The set of kinds is closed; adding one means
// adding a check function, its registry entry, and a dispatch entry in the
// assessment engine.
type Kind string

// Rule kinds, named after the rule_type tags used in rule specification files.
const (
	Completeness   Kind = "completeness"
	Uniqueness     Kind = "uniqueness"
	DataType       Kind = "data_type"
	AccuracyRange  Kind = "accuracy_range_check"
	DateOrder      Kind = "consistency_date_order_check"
	RegexMatch     Kind = "validity_regex_match_check"
	FixedDateRange Kind = "timeliness_fixed_range_check"
)

// Status is the outcome of evaluating one rule against one table.
type Status int

// Check outcomes. A Fail is a data violation; an Error means the rule itself
// could not be evaluated.
const (
	StatusPass Status = iota
	StatusFail
	StatusError
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "passed"
	case StatusFail:
		return "failed"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseStatus converts a string to a Status value.
// Returns the status and true if valid, or StatusError and false if invalid.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(s) {
	case "passed", "pass":
		return StatusPass, true
	case "failed", "fail":
		return StatusFail, true
	case "error":
		return StatusError, true
	default:
		return StatusError, false
	}
}

// Options carries the run-wide settings shared by all checks.
type Options struct {
	// DateFormat is the shared date-parsing convention, as a Go reference
	// layout. Used by the date-order and fixed-range checks.
	DateFormat string

	// MaxSamples caps the number of offending row indices or values
	// reported in Details. Zero or negative means the default.
	MaxSamples int
}

// Default option values.
const (
	DefaultDateFormat = "2006-01-02"
	DefaultMaxSamples = 10
)

// DefaultOptions returns the default check options.
func DefaultOptions() Options {
	return Options{DateFormat: DefaultDateFormat, MaxSamples: DefaultMaxSamples}
}

func (o Options) dateFormat() string {
	if o.DateFormat == "" {
		return DefaultDateFormat
	}
	return o.DateFormat
}

func (o Options) maxSamples() int {
	if o.MaxSamples <= 0 {
		return DefaultMaxSamples
	}
	return o.MaxSamples
}

// Result is the outcome of one check invocation. Immutable once produced.
type Result struct {
	Kind    Kind     `json:"rule_type"`
	Columns []string `json:"columns"`
	Status  Status   `json:"-"`
	Message string   `json:"message"`
	Details *Details `json:"details,omitempty"`
}

// StatusString is the serialized form of Status, kept alongside the enum so
// JSON reports stay readable.
func (r Result) StatusString() string { return r.Status.String() }

// DuplicateValue records one duplicated value and the rows it appears in.
type DuplicateValue struct {
	Value string `json:"value"`
	Rows  []int  `json:"rows"`
}

// Details carries per-check counters. Only the fields relevant to the
// producing check are set; the rest stay at their zero values and are
// omitted from JSON output.
type Details struct {
	TotalRows int `json:"total_rows"`

	// Completeness
	MissingCount int `json:"missing_count,omitempty"`

	// Uniqueness
	DuplicateCount  int              `json:"duplicate_count,omitempty"`
	DuplicateValues []DuplicateValue `json:"duplicate_values,omitempty"`

	// Data type
	ExpectedType string `json:"expected_type,omitempty"`
	ActualType   string `json:"actual_type,omitempty"`

	// Range
	ValidNumericRows int `json:"valid_numeric_rows,omitempty"`
	NonNumericRows   int `json:"non_numeric_rows,omitempty"`

	// Date order
	ValidPairs      int `json:"valid_date_pairs_count,omitempty"`
	UnevaluableRows int `json:"unevaluable_rows_count,omitempty"`
	OrderSatisfied  int `json:"order_satisfied_count,omitempty"`
	OrderViolated   int `json:"order_violated_count,omitempty"`

	// Regex
	ApplicableRows int `json:"applicable_rows_count,omitempty"`
	MatchedCount   int `json:"matched_count,omitempty"`
	NonMatched     int `json:"non_matched_count,omitempty"`

	// Fixed date range
	ParseableDates   int `json:"parseable_dates_count,omitempty"`
	UnparseableDates int `json:"unparseable_dates_count,omitempty"`

	// Shared by range-style checks
	InRangeCount    int `json:"in_range_count,omitempty"`
	OutOfRangeCount int `json:"out_of_range_count,omitempty"`

	// ViolationRows is a capped sample of offending row indices (0-based).
	ViolationRows []int `json:"violation_rows,omitempty"`
}

// sampleRows caps a row-index slice at n entries.
func sampleRows(rows []int, n int) []int {
	if len(rows) <= n {
		return rows
	}
	return rows[:n]
}

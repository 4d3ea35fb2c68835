// Package rules parses declarative rule specifications into immutable Rule
// values. Validation happens here, at parse time: a rule that reaches the
// assessment engine always has its required fields present and well-typed.
package rules

import (
	"fmt"

	"github.com/leapstack-labs/leapcheck/pkg/check"
)

// Rule is one declared data-quality check: a kind tag plus only the fields
// that kind needs. Rules are constructed at startup and never mutated.
type Rule struct {
	Kind check.Kind `yaml:"type" json:"type"`

	Column  string `yaml:"column,omitempty" json:"column,omitempty"`
	ColumnA string `yaml:"column_a,omitempty" json:"column_a,omitempty"`
	ColumnB string `yaml:"column_b,omitempty" json:"column_b,omitempty"`

	ExpectedType string `yaml:"expected_type,omitempty" json:"expected_type,omitempty"`

	MinValue *float64 `yaml:"min_value,omitempty" json:"min_value,omitempty"`
	MaxValue *float64 `yaml:"max_value,omitempty" json:"max_value,omitempty"`

	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	StartDate string `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   string `yaml:"end_date,omitempty" json:"end_date,omitempty"`
}

// Columns returns the column names the rule references, in declaration order.
func (r Rule) Columns() []string {
	if r.Kind == check.DateOrder {
		return []string{r.ColumnA, r.ColumnB}
	}
	return []string{r.Column}
}

// Validate checks that the rule's kind is registered and its required fields
// are present. Value-level configuration problems (inverted bounds, bad
// patterns) are left to the checks, which report them as engine errors.
func (r Rule) Validate() error {
	if r.Kind == "" {
		return fmt.Errorf("missing rule type")
	}
	if _, ok := check.Lookup(r.Kind); !ok {
		return fmt.Errorf("unknown rule type %q", r.Kind)
	}

	switch r.Kind {
	case check.Completeness, check.Uniqueness:
		return r.require(r.Column != "", "column")
	case check.DataType:
		if err := r.require(r.Column != "", "column"); err != nil {
			return err
		}
		return r.require(r.ExpectedType != "", "expected_type")
	case check.AccuracyRange:
		if err := r.require(r.Column != "", "column"); err != nil {
			return err
		}
		if err := r.require(r.MinValue != nil, "min_value"); err != nil {
			return err
		}
		return r.require(r.MaxValue != nil, "max_value")
	case check.DateOrder:
		if err := r.require(r.ColumnA != "", "column_a"); err != nil {
			return err
		}
		return r.require(r.ColumnB != "", "column_b")
	case check.RegexMatch:
		if err := r.require(r.Column != "", "column"); err != nil {
			return err
		}
		return r.require(r.Pattern != "", "pattern")
	case check.FixedDateRange:
		if err := r.require(r.Column != "", "column"); err != nil {
			return err
		}
		if err := r.require(r.StartDate != "", "start_date"); err != nil {
			return err
		}
		return r.require(r.EndDate != "", "end_date")
	}
	return nil
}

func (r Rule) require(ok bool, field string) error {
	if !ok {
		return fmt.Errorf("%s rule is missing %q", r.Kind, field)
	}
	return nil
}

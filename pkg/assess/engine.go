// Package assess runs a declared rule list against a loaded table and
// aggregates per-rule outcomes into a report. The engine never short-circuits:
// every rule runs and every outcome is recorded, even when individual rules
// are misconfigured.
package assess

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/leapstack-labs/leapcheck/pkg/check"
	"github.com/leapstack-labs/leapcheck/pkg/rules"
	"github.com/leapstack-labs/leapcheck/pkg/table"
)

// Config holds engine construction options.
type Config struct {
	// Options are the run-wide check settings (date layout, sample cap).
	Options check.Options

	// Logger receives per-rule debug events. Nil disables logging.
	Logger *slog.Logger
}

// Engine evaluates rules against a single read-only table.
type Engine struct {
	tbl    *table.Table
	opts   check.Options
	logger *slog.Logger
}

// New creates an engine bound to the table.
func New(tbl *table.Table, cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts := cfg.Options
	if opts.DateFormat == "" {
		opts.DateFormat = check.DefaultDateFormat
	}
	if opts.MaxSamples <= 0 {
		opts.MaxSamples = check.DefaultMaxSamples
	}
	return &Engine{tbl: tbl, opts: opts, logger: logger}
}

// checkFunc adapts one rule kind's check to the uniform dispatch shape.
type checkFunc func(e *Engine, r rules.Rule) (check.Result, error)

// dispatch is the closed kind-to-function mapping. Adding a rule kind means
// adding one check function and one entry here; nothing else in the engine
// changes.
var dispatch = map[check.Kind]checkFunc{
	check.Completeness: func(e *Engine, r rules.Rule) (check.Result, error) {
		return check.CheckCompleteness(e.tbl, r.Column, e.opts)
	},
	check.Uniqueness: func(e *Engine, r rules.Rule) (check.Result, error) {
		return check.CheckUniqueness(e.tbl, r.Column, e.opts)
	},
	check.DataType: func(e *Engine, r rules.Rule) (check.Result, error) {
		return check.CheckDataType(e.tbl, r.Column, r.ExpectedType, e.opts)
	},
	check.AccuracyRange: func(e *Engine, r rules.Rule) (check.Result, error) {
		return check.CheckAccuracyRange(e.tbl, r.Column, *r.MinValue, *r.MaxValue, e.opts)
	},
	check.DateOrder: func(e *Engine, r rules.Rule) (check.Result, error) {
		return check.CheckDateOrder(e.tbl, r.ColumnA, r.ColumnB, e.opts)
	},
	check.RegexMatch: func(e *Engine, r rules.Rule) (check.Result, error) {
		return check.CheckRegexMatch(e.tbl, r.Column, r.Pattern, e.opts)
	},
	check.FixedDateRange: func(e *Engine, r rules.Rule) (check.Result, error) {
		return check.CheckFixedDateRange(e.tbl, r.Column, r.StartDate, r.EndDate, e.opts)
	},
}

// Run evaluates every rule in declaration order and returns the finalized
// report. Engine-level problems surfaced by a check become results with
// StatusError; the run itself always completes.
func (e *Engine) Run(ruleList []rules.Rule) *Report {
	report := newReport(len(ruleList))

	for i, r := range ruleList {
		res := e.evaluate(r)
		report.append(res)
		e.logger.Debug("rule evaluated",
			"index", i,
			"kind", string(r.Kind),
			"status", res.Status.String(),
		)
	}

	report.finalize()
	return report
}

// evaluate dispatches one rule and converts check errors to error results.
func (e *Engine) evaluate(r rules.Rule) check.Result {
	fn, ok := dispatch[r.Kind]
	if !ok {
		// Unknown kinds are rejected at parse time; this guards direct
		// engine callers.
		return errorResult(r, fmt.Errorf("unknown rule type %q", r.Kind))
	}

	res, err := fn(e, r)
	if err != nil {
		return errorResult(r, err)
	}
	return res
}

func errorResult(r rules.Rule, err error) check.Result {
	return check.Result{
		Kind:    r.Kind,
		Columns: r.Columns(),
		Status:  check.StatusError,
		Message: err.Error(),
	}
}

package assess

import "github.com/leapstack-labs/leapcheck/pkg/check"

// Summary holds the derived outcome counts for one run.
type Summary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
}

// Report is the ordered collection of check results for one run plus the
// summary counts. It is built by a single engine invocation and immutable
// afterwards; there is no persistence or caching across runs.
type Report struct {
	Results []check.Result `json:"results"`
	Summary Summary        `json:"summary"`

	finalized bool
}

func newReport(capacity int) *Report {
	return &Report{Results: make([]check.Result, 0, capacity)}
}

// append records one result during a run. The report must not be finalized.
func (r *Report) append(res check.Result) {
	if r.finalized {
		panic("assess: append to finalized report")
	}
	r.Results = append(r.Results, res)
}

// finalize computes the summary counts once, after all rules have run.
func (r *Report) finalize() {
	s := Summary{Total: len(r.Results)}
	for _, res := range r.Results {
		switch res.Status {
		case check.StatusPass:
			s.Passed++
		case check.StatusFail:
			s.Failed++
		case check.StatusError:
			s.Errored++
		}
	}
	r.Summary = s
	r.finalized = true
}

// Ok reports whether every declared rule passed. A false value is a normal
// data-quality outcome, not a program error.
func (r *Report) Ok() bool {
	return r.Summary.Failed == 0 && r.Summary.Errored == 0
}

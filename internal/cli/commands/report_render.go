package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/leapcheck/internal/cli/output"
	"github.com/leapstack-labs/leapcheck/pkg/assess"
	"github.com/leapstack-labs/leapcheck/pkg/check"
)

// AssessOutput is the JSON payload for an assessment run.
type AssessOutput struct {
	Summary assess.Summary  `json:"summary"`
	Results []ResultPayload `json:"results"`
}

// ResultPayload is one check result in JSON output.
type ResultPayload struct {
	RuleType string         `json:"rule_type"`
	Columns  []string       `json:"columns"`
	Status   string         `json:"status"`
	Message  string         `json:"message"`
	Details  *check.Details `json:"details,omitempty"`
}

func newAssessOutput(report *assess.Report) AssessOutput {
	out := AssessOutput{Summary: report.Summary}
	for _, res := range report.Results {
		out.Results = append(out.Results, ResultPayload{
			RuleType: string(res.Kind),
			Columns:  res.Columns,
			Status:   res.Status.String(),
			Message:  res.Message,
			Details:  res.Details,
		})
	}
	return out
}

// renderReport writes the report in text or markdown form.
func renderReport(r *output.Renderer, report *assess.Report) {
	r.Println(r.Styles().Header.Render("Data Quality Report"))
	r.Println("")

	if report.Summary.Total == 0 {
		r.Println("No rules declared; nothing to assess.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.AppendHeader(table.Row{"#", "RULE", "COLUMNS", "STATUS", "MESSAGE"})
	for i, res := range report.Results {
		t.AppendRow(table.Row{
			i + 1,
			string(res.Kind),
			strings.Join(res.Columns, ", "),
			statusCell(r, res.Status),
			res.Message,
		})
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.SetStyle(table.StyleLight)
		t.Render()
	}
	r.Println("")

	renderViolationDetails(r, report)

	summary := report.Summary
	parts := []string{fmt.Sprintf("%d passed", summary.Passed)}
	if summary.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", summary.Failed))
	}
	if summary.Errored > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", summary.Errored))
	}
	r.Printf("Summary: %s (%d rules)\n", strings.Join(parts, ", "), summary.Total)
}

// renderViolationDetails prints the sampled offending rows for rules that
// did not pass.
func renderViolationDetails(r *output.Renderer, report *assess.Report) {
	printed := false
	for i, res := range report.Results {
		if res.Status == check.StatusPass || res.Details == nil {
			continue
		}
		d := res.Details
		if len(d.ViolationRows) == 0 && len(d.DuplicateValues) == 0 {
			continue
		}
		if !printed {
			r.Println(r.Styles().Bold.Render("Violations:"))
			printed = true
		}
		for _, dup := range d.DuplicateValues {
			r.Printf("  rule %d: value %q at rows %s\n", i+1, dup.Value, formatRows(dup.Rows))
		}
		if len(d.DuplicateValues) == 0 && len(d.ViolationRows) > 0 {
			r.Printf("  rule %d: offending rows %s\n", i+1, formatRows(d.ViolationRows))
		}
	}
	if printed {
		r.Println("")
	}
}

func formatRows(rows []int) string {
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = fmt.Sprintf("%d", row)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func statusCell(r *output.Renderer, status check.Status) string {
	switch status {
	case check.StatusPass:
		return r.Styles().Success.Render("passed")
	case check.StatusFail:
		return r.Styles().Error.Render("failed")
	case check.StatusError:
		return r.Styles().Warning.Render("error")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}

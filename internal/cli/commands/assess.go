package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcheck/internal/cli/output"
	"github.com/leapstack-labs/leapcheck/pkg/assess"
	"github.com/leapstack-labs/leapcheck/pkg/check"
	"github.com/leapstack-labs/leapcheck/pkg/rules"
	"github.com/leapstack-labs/leapcheck/pkg/table"
)

// AssessOptions holds options for the assess command.
type AssessOptions struct {
	Out    string // Optional report file path
	Format string // Output format override: text, markdown, json
}

// NewAssessCommand creates the assess command.
func NewAssessCommand() *cobra.Command {
	opts := &AssessOptions{}
	cmd := &cobra.Command{
		Use:   "assess <data_file> <rules_file>",
		Short: "Run data-quality rules against a CSV dataset",
		Long: `Load a CSV dataset and evaluate every rule declared in the rules file.

The rules file is a YAML or JSON list of rule objects, each with a "type"
tag plus the fields that kind needs. All rules run regardless of earlier
outcomes, so the report always reflects every declared rule. A failing
rule is a normal outcome and exits zero; only a dataset that cannot be
loaded or a rules file that cannot be parsed aborts the run.`,
		Example: `  # Assess a dataset and print the report
  leapcheck assess data.csv rules.yaml

  # Save the text report to a file
  leapcheck assess data.csv rules.yaml -o report.txt

  # Machine-readable output
  leapcheck assess data.csv rules.json --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssess(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write the text report to a file instead of stdout")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

func runAssess(cmd *cobra.Command, dataPath, rulesPath string, opts *AssessOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	tbl, err := table.LoadCSV(dataPath)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("dataset loaded",
		"path", dataPath,
		"columns", len(tbl.Columns()),
		"rows", tbl.RowCount(),
	)

	ruleList, err := rules.ParseFile(rulesPath)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("rules parsed", "path", rulesPath, "count", len(ruleList))

	eng := assess.New(tbl, assess.Config{
		Options: check.Options{
			DateFormat: cfg.DateFormat,
			MaxSamples: cfg.MaxSamples,
		},
		Logger: cmdCtx.Logger,
	})
	report := eng.Run(ruleList)

	if opts.Out != "" {
		var buf bytes.Buffer
		fileRenderer := output.NewRendererWithTTY(&buf, cmd.ErrOrStderr(), false, output.ModeText)
		renderReport(fileRenderer, report)
		if err := os.WriteFile(opts.Out, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", opts.Out, err)
		}
		r.Success(fmt.Sprintf("Report saved to %s", opts.Out))
		return nil
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(newAssessOutput(report))
	}
	renderReport(r, report)
	return nil
}

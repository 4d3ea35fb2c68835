package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcheck/internal/cli/output"
	"github.com/leapstack-labs/leapcheck/pkg/check"
)

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the available rule kinds",
		Long: `List every rule kind the assessment engine knows, with the fields
each kind requires in the rules file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(check.All())
			}

			t := table.NewWriter()
			t.SetOutputMirror(r.Out())
			t.AppendHeader(table.Row{"TYPE", "FIELDS", "DESCRIPTION"})
			for _, def := range check.All() {
				t.AppendRow(table.Row{
					string(def.Kind),
					strings.Join(def.Fields, ", "),
					def.Description,
				})
			}
			if r.EffectiveMode() == output.ModeMarkdown {
				t.RenderMarkdown()
			} else {
				t.SetStyle(table.StyleLight)
				t.Render()
			}
			return nil
		},
	}
}

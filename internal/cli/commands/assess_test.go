package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcheck/internal/cli"
	"github.com/leapstack-labs/leapcheck/internal/cli/commands"
	"github.com/leapstack-labs/leapcheck/internal/cli/testutil"
)

// chdir switches to dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// runCLI executes the root command with args and returns stdout and the error.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAssessCommand_Report(t *testing.T) {
	dataPath, rulesPath := testutil.SetupTestProject(t)

	out, err := runCLI(t, "assess", dataPath, rulesPath)
	require.NoError(t, err, "rule failures must not abort the command")

	testutil.AssertContains(t, out, "Data Quality Report")
	testutil.AssertContains(t, out, "completeness")
	testutil.AssertContains(t, out, "uniqueness")
	testutil.AssertContains(t, out, "accuracy_range_check")
	testutil.AssertContains(t, out, "Summary:")
	testutil.AssertContains(t, out, "3 rules")
	testutil.AssertNoANSI(t, out)
}

func TestAssessCommand_JSONFormat(t *testing.T) {
	dataPath, rulesPath := testutil.SetupTestProject(t)

	out, err := runCLI(t, "assess", dataPath, rulesPath, "--format", "json")
	require.NoError(t, err)

	var payload commands.AssessOutput
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	assert.Equal(t, 3, payload.Summary.Total)
	require.Len(t, payload.Results, 3)
	assert.Equal(t, "completeness", payload.Results[0].RuleType)
	assert.Equal(t, "failed", payload.Results[0].Status, "name column has a missing value")
	assert.Equal(t, "passed", payload.Results[1].Status, "ids are unique")
}

func TestAssessCommand_WritesReportFile(t *testing.T) {
	dataPath, rulesPath := testutil.SetupTestProject(t)
	reportPath := filepath.Join(t.TempDir(), "report.txt")

	out, err := runCLI(t, "assess", dataPath, rulesPath, "-o", reportPath)
	require.NoError(t, err)
	testutil.AssertContains(t, out, "Report saved to "+reportPath)

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	testutil.AssertContains(t, string(content), "Data Quality Report")
	testutil.AssertContains(t, string(content), "Summary:")
	testutil.AssertNoANSI(t, string(content))
}

func TestAssessCommand_EmptyRuleList(t *testing.T) {
	dataPath, _ := testutil.SetupTestProject(t)
	rulesPath := testutil.WriteTestFile(t, "rules.yaml", "[]\n")

	out, err := runCLI(t, "assess", dataPath, rulesPath)
	require.NoError(t, err)
	testutil.AssertContains(t, out, "No rules declared; nothing to assess.")
}

func TestAssessCommand_MissingDataFileIsFatal(t *testing.T) {
	_, rulesPath := testutil.SetupTestProject(t)

	_, err := runCLI(t, "assess", filepath.Join(t.TempDir(), "nope.csv"), rulesPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open file")
}

func TestAssessCommand_MalformedRulesFileIsFatal(t *testing.T) {
	dataPath, _ := testutil.SetupTestProject(t)
	rulesPath := testutil.WriteTestFile(t, "rules.yaml", "- type: uniqueness\n")

	_, err := runCLI(t, "assess", dataPath, rulesPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule 1")
}

func TestAssessCommand_MisconfiguredRuleIsNotFatal(t *testing.T) {
	dataPath, _ := testutil.SetupTestProject(t)
	rulesPath := testutil.WriteTestFile(t, "rules.yaml",
		"- type: validity_regex_match_check\n  column: name\n  pattern: '[unclosed'\n")

	out, err := runCLI(t, "assess", dataPath, rulesPath, "--format", "json")
	require.NoError(t, err, "engine errors are reported, not fatal")

	var payload commands.AssessOutput
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, 1, payload.Summary.Errored)
	assert.Equal(t, "error", payload.Results[0].Status)
}

func TestAssessCommand_RequiresTwoArgs(t *testing.T) {
	_, err := runCLI(t, "assess", "only-one.csv")
	require.Error(t, err)
}

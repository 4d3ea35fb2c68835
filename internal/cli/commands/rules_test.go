package commands_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcheck/internal/cli"
	"github.com/leapstack-labs/leapcheck/internal/cli/testutil"
	"github.com/leapstack-labs/leapcheck/pkg/check"
)

func TestRulesCommand_ListsAllKinds(t *testing.T) {
	out, err := runCLI(t, "rules")
	require.NoError(t, err)

	for _, def := range check.All() {
		testutil.AssertContains(t, out, string(def.Kind))
	}
	testutil.AssertNoANSI(t, out)
}

func TestRulesCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "rules", "--output", "json")
	require.NoError(t, err)

	var defs []check.CheckDef
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	assert.Len(t, defs, check.Count())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	testutil.AssertContains(t, out.String(), "LeapCheck v")
}

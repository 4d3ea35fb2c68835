package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcheck/internal/cli/output"
)

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want output.OutputMode
	}{
		{in: "text", want: output.ModeText},
		{in: "markdown", want: output.ModeMarkdown},
		{in: "json", want: output.ModeJSON},
		{in: "auto", want: output.ModeAuto},
		{in: "", want: output.ModeAuto},
		{in: "bogus", want: output.ModeAuto},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, output.Mode(tt.in), "Mode(%q)", tt.in)
	}
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  output.OutputMode
		isTTY bool
		want  output.OutputMode
	}{
		{name: "auto on tty is text", mode: output.ModeAuto, isTTY: true, want: output.ModeText},
		{name: "auto piped is markdown", mode: output.ModeAuto, isTTY: false, want: output.ModeMarkdown},
		{name: "explicit text piped stays text", mode: output.ModeText, isTTY: false, want: output.ModeText},
		{name: "explicit json on tty stays json", mode: output.ModeJSON, isTTY: true, want: output.ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := output.NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRenderer_Writers(t *testing.T) {
	var out, errOut bytes.Buffer
	r := output.NewRendererWithTTY(&out, &errOut, false, output.ModeText)

	r.Println("hello")
	r.Printf("count: %d\n", 3)
	r.Errorf("boom: %s\n", "bad")

	assert.Equal(t, "hello\ncount: 3\n", out.String())
	assert.Equal(t, "boom: bad\n", errOut.String())
}

func TestRenderer_NonTTYOutputHasNoANSI(t *testing.T) {
	for _, mode := range []output.OutputMode{output.ModeMarkdown, output.ModeJSON, output.ModeText} {
		var out bytes.Buffer
		r := output.NewRendererWithTTY(&out, &bytes.Buffer{}, false, mode)
		r.Success("done")
		assert.NotContains(t, out.String(), "\x1b[", "mode %s", mode)
	}
}

func TestRenderer_JSON(t *testing.T) {
	var out bytes.Buffer
	r := output.NewRendererWithTTY(&out, &bytes.Buffer{}, false, output.ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"total": 2}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 2, decoded["total"])
	assert.Contains(t, out.String(), "  \"total\"", "expected indented output")
}

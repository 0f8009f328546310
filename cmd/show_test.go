package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mouse-blink/modus/internal/adapter"
	"github.com/mouse-blink/modus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// runWithRealWorkflow executes the root command with the production wiring,
// stdin replaced by input, and returns stdout and stderr.
func runWithRealWorkflow(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	useMockWorkflow(t)
	workflow = nil

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootCmd_ProgressionsFlag(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd := newTestRootCmd()

	mockWorkflow.EXPECT().Show(mock.Anything, mock.MatchedBy(func(args domain.ShowArgs) bool {
		return args.Progressions && args.Inversions
	})).Return(nil)

	cmd.SetArgs([]string{"-r", "C", "-s", "Dorian", "--progressions"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_ReferenceOutput(t *testing.T) {
	stdout, _, err := runWithRealWorkflow(t, "", "-r", "C", "-s", "Ionian (Major)")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "\nScale Notes for C Ionian (Major): C, D, E, F, G, A, B\nDescription: "), stdout)
	assert.Contains(t, stdout, "\nWhole/Half Tone Pattern: W-W-H-W-W-W-H\n\nChord Scale:\nCMaj7 / IMaj7:\n  C-E-G-B (Root)\n  E-G-B-C (1st Inv)\n")
	assert.Contains(t, stdout, "Bm7b5 / vii°m7b5:\n  B-D-F-A (Root)\n")
	assert.NotContains(t, stdout, "Common Progressions")
}

func TestRootCmd_ProgressionsOutput(t *testing.T) {
	stdout, _, err := runWithRealWorkflow(t, "", "-r", "A", "-s", "Aeolian (Natural Minor)", "-p")
	require.NoError(t, err)

	assert.Contains(t, stdout, "\nCommon Progressions:\n")
	assert.Contains(t, stdout, "Andalusian Cadence: DMaj7 - Cm7 - Bm7 - AMaj7\n")
}

func TestRootCmd_ExtendedOnPentatonicExplainsSkip(t *testing.T) {
	stdout, _, err := runWithRealWorkflow(t, "", "-r", "C", "-s", "Pentatonic Major", "-e")
	require.NoError(t, err)

	assert.Contains(t, stdout, "C, D, E, G, A")
	assert.Contains(t, stdout, "\nExtended Harmony:\n  (extended harmony needs a seven-note scale")
}

func TestRootCmd_NoTerminalSuggestsFlags(t *testing.T) {
	_, stderr, err := runWithRealWorkflow(t, "")
	require.ErrorIs(t, err, adapter.ErrNoSelection)

	assert.Contains(t, err.Error(), "choose root note")
	assert.Contains(t, err.Error(), "pass --root and --scale")
	assert.NotContains(t, stderr, "\x1b[", "no terminal control sequences without a terminal")
}

func TestRootCmd_RootFlagOnlyStillNeedsScale(t *testing.T) {
	_, _, err := runWithRealWorkflow(t, "", "-r", "C")
	require.ErrorIs(t, err, adapter.ErrNoSelection)

	assert.Contains(t, err.Error(), "choose scale type")
}

func TestRootCmd_InvalidRootEndToEnd(t *testing.T) {
	_, _, err := runWithRealWorkflow(t, "", "-r", "H", "-s", "Ionian (Major)")
	require.ErrorIs(t, err, domain.ErrInvalidRoot)

	assert.Contains(t, err.Error(), `"H"`)
}

func TestRootCmd_JSONEndToEnd(t *testing.T) {
	stdout, _, err := runWithRealWorkflow(t, "", "-r", "A", "-s", "Pentatonic Minor", "-f", "json")
	require.NoError(t, err)

	assert.Contains(t, stdout, `"scale_name": "Pentatonic Minor"`)
	assert.Contains(t, stdout, `"harmony_note": "chord scale not available for 5-note scales"`)
}

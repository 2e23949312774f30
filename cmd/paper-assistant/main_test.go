// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-assistant/pkg/types"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "paper-assistant dev\n", out)
}

func TestPromptsCommand(t *testing.T) {
	out, _, err := execute(t, "prompts", "post")
	require.NoError(t, err)
	assert.Contains(t, out, "# post\n")
	assert.Contains(t, out, "<analysis>")
	assert.NotContains(t, out, "# analysis")

	out, _, err = execute(t, "prompts")
	require.NoError(t, err)
	assert.Contains(t, out, "# analysis\n")
	assert.Contains(t, out, "<paper text>")
	assert.Contains(t, out, "# post\n")
}

func TestPromptsCommand_UnknownName(t *testing.T) {
	_, _, err := execute(t, "prompts", "summary")
	assert.Error(t, err)
}

func TestRunCommand_InvalidURL(t *testing.T) {
	chdir(t)
	out, errOut, err := execute(t, "run", "--no-color", "not-a-url")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errReported))
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error: invalid input")
	assert.Contains(t, errOut, "Please make sure the URL is accessible and points to a valid PDF file.")
}

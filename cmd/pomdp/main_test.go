package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pomdp version")
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--config", "../../testdata/voicemail.yaml", "--no-stdin", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "[1] ask value=3.4600")
	assert.Contains(t, out, "[4] doSave value=5.1400")
	assert.Contains(t, out, `pomdp_actions_selected_total{action="ask"} 3`)
}

func TestRunCommand_MissingEnv(t *testing.T) {
	_, err := execute(t, "run", "--config", "")
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", "../../testdata/voicemail.pomdp", "../../testdata/voicemail.policy")
	require.NoError(t, err)
	assert.Contains(t, out, "model is valid")

	_, err = execute(t, "validate", "../../testdata/voicemail.pomdp")
	assert.Error(t, err)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDocument = `version: "1.0.0"
name: onboarding
settings:
  class_name: OnboardingTexts
nodes:
  - id: "1:1"
    name: headline
    characters: "Say \"Hi\"\nNow $5"
    text_align_horizontal: JUSTIFIED
    text_case: UPPER
  - id: "1:2"
    name: body
    characters: plain
  - id: "2:1"
    name: card
    type: COMPONENT
  - id: "2:2"
    name: card instance
    type: INSTANCE
`

func writeSampleDocument(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "design.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))
	return path
}

// executeCommand runs the root command and returns stdout and stderr separately.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

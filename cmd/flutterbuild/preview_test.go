package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreviewStaticOutput(t *testing.T) {
	t.Parallel()

	docPath := writeSampleDocument(t, t.TempDir())

	out, _, err := executeCommand(t, "preview", "-c", docPath, "--static")
	require.NoError(t, err)
	require.Contains(t, out, "onboarding")
	require.Contains(t, out, "headline (1:1)")
	require.Contains(t, out, "Text nodes (2)")
}

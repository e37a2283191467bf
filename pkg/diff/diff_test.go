package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiffIdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("line1\nline2\nline3\n")
	require.Empty(t, GenerateUnifiedDiff(content, content, "expected", "actual"))
}

func TestGenerateUnifiedDiffSingleLineChange(t *testing.T) {
	t.Parallel()

	expected := []byte("line1\nline2\nline3\n")
	actual := []byte("line1\nmodified\nline3\n")

	result := GenerateUnifiedDiff(expected, actual, "texts.dart", "generated")

	require.True(t, strings.HasPrefix(result, "--- texts.dart\n+++ generated\n@@ -1,3 +1,3 @@\n"))
	require.Contains(t, result, "\n line1\n")
	require.Contains(t, result, "\n-line2\n")
	require.Contains(t, result, "\n+modified\n")
	require.Contains(t, result, "\n line3\n")
}

func TestGenerateUnifiedDiffAddedLines(t *testing.T) {
	t.Parallel()

	result := GenerateUnifiedDiff([]byte("a\n"), []byte("a\nb\nc\n"), "old", "new")

	require.Contains(t, result, "@@ -1,1 +1,3 @@")
	require.Contains(t, result, "\n+b\n+c\n")
	require.NotContains(t, result, "\n-a")
}

func TestGenerateUnifiedDiffFromEmpty(t *testing.T) {
	t.Parallel()

	result := GenerateUnifiedDiff(nil, []byte("new\n"), "old", "new")
	require.Contains(t, result, "@@ -1,0 +1,1 @@")
	require.Contains(t, result, "\n+new\n")
}

func TestGenerateUnifiedDiffTruncatesLargeOutput(t *testing.T) {
	t.Parallel()

	var actual strings.Builder
	for i := 0; i <= maxDiffLines; i++ {
		fmt.Fprintf(&actual, "line %d\n", i)
	}

	result := GenerateUnifiedDiff(nil, []byte(actual.String()), "old", "new")
	require.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	require.Len(t, strings.Split(strings.TrimSuffix(result, "\n"), "\n"), maxDiffLines+1)
}

package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// GenerateUnifiedDiff compares expected and actual content line by line and
// renders the result in unified diff format with a single hunk.
// Returns empty string if content is identical.
// Truncates diffs exceeding 10,000 lines with a truncation marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	dmp := diffmatchpatch.New()

	expectedStr := string(expected)
	actualStr := string(actual)

	// Diff whole lines so every change is reported as full removed/added lines.
	expectedChars, actualChars, lineArray := dmp.DiffLinesToChars(expectedStr, actualStr)
	diffs := dmp.DiffMain(expectedChars, actualChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(expectedStr), countLines(actualStr))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(text string) int {
	return len(splitLines(text))
}

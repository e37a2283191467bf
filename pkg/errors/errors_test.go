package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("design.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "design.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "design.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("design.yaml", 0, stdErrors.New("empty"))
	require.Equal(t, "parse error: design.yaml: empty", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("nodes[1].characters", "is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "nodes[1].characters", validationErr.Field)
	require.Contains(t, err.Error(), "is required")
}

func TestPreconditionErrorNamesOperation(t *testing.T) {
	t.Parallel()

	err := NewPreconditionError("make text", "node is nil")

	var preErr *PreconditionError
	require.ErrorAs(t, err, &preErr)
	require.Equal(t, "make text", preErr.Operation)
	require.Equal(t, "precondition violated in make text: node is nil", err.Error())
}

func TestTranslationErrorIncludesNodeContext(t *testing.T) {
	t.Parallel()

	underlying := NewPreconditionError("make text", "node is nil")
	err := NewTranslationError("1:2", underlying)

	var translationErr *TranslationError
	require.ErrorAs(t, err, &translationErr)
	require.Equal(t, "1:2", translationErr.NodeID)
	require.True(t, stdErrors.Is(err, underlying))

	var preErr *PreconditionError
	require.ErrorAs(t, err, &preErr)
}

func TestDriftErrorCarriesDiff(t *testing.T) {
	t.Parallel()

	err := NewDriftError("lib/texts.dart", "-a\n+b\n")

	var driftErr *DriftError
	require.ErrorAs(t, err, &driftErr)
	require.Equal(t, "-a\n+b\n", driftErr.Diff)
	require.Contains(t, err.Error(), "lib/texts.dart")
}

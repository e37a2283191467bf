package codegen

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/flutterbuild/internal/config"
	"github.com/alexisbeaulieu97/flutterbuild/internal/design"
	"github.com/alexisbeaulieu97/flutterbuild/internal/flutter"
	fberrors "github.com/alexisbeaulieu97/flutterbuild/pkg/errors"
)

func strPtr(s string) *string { return &s }

func sampleDocument() *config.Document {
	return &config.Document{
		Version: "1.0.0",
		Name:    "sample",
		Settings: config.Settings{
			ClassName: "SampleTexts",
			Parallel:  2,
		},
		Nodes: []config.Node{
			{ID: "1:1", Name: "headline", Characters: strPtr("Say \"Hi\"\nNow $5"), TextAlignHorizontal: "JUSTIFIED", TextCase: "UPPER"},
			{ID: "1:2", Name: "frame", Type: "FRAME"},
			{ID: "1:3", Name: "body", Characters: strPtr("plain")},
			{ID: "1:4", Name: "caption", Characters: strPtr("it's"), TextAlignHorizontal: "CENTER"},
		},
	}
}

type failingMaker struct {
	failOn string
	calls  atomic.Int32
}

func (f *failingMaker) MakeText(node *design.TextNode) (*flutter.Text, error) {
	f.calls.Add(1)
	if node.ID == f.failOn {
		return nil, errors.New("boom")
	}
	return &flutter.Text{Content: node.Characters}, nil
}

func TestGenerateKeepsDocumentOrder(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil)
	result, err := svc.Generate(context.Background(), sampleDocument())
	require.NoError(t, err)

	require.Len(t, result.Entries, 3)
	require.Equal(t, []string{"1:1", "1:3", "1:4"}, []string{result.Entries[0].NodeID, result.Entries[1].NodeID, result.Entries[2].NodeID})
	require.Equal(t, `Text("SAY \"HI\"\nNOW \$5", textAlign: TextAlign.justify)`, result.Entries[0].Expression)
	require.Equal(t, `Text("plain")`, result.Entries[1].Expression)
	require.Equal(t, `Text("it\'s", textAlign: TextAlign.center)`, result.Entries[2].Expression)

	require.Len(t, result.Skipped, 1)
	require.Equal(t, "1:2", result.Skipped[0].ID)

	src := result.Source()
	require.True(t, strings.HasPrefix(src, flutter.GeneratedHeader))
	require.Contains(t, src, "class SampleTexts extends StatelessWidget {")
	require.Less(t, strings.Index(src, "SAY"), strings.Index(src, "plain"))
}

func TestGenerateWrapsTranslationFailures(t *testing.T) {
	t.Parallel()

	fm := &failingMaker{failOn: "1:3"}
	_, err := NewService(fm, nil).Generate(context.Background(), sampleDocument())

	var translationErr *fberrors.TranslationError
	require.ErrorAs(t, err, &translationErr)
	require.Equal(t, "1:3", translationErr.NodeID)
}

func TestGenerateHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fm := &failingMaker{}
	_, err := NewService(fm, nil).Generate(ctx, sampleDocument())
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, fm.calls.Load())
}

func TestGenerateRejectsNilDocument(t *testing.T) {
	t.Parallel()

	_, err := NewService(nil, nil).Generate(context.Background(), nil)

	var preErr *fberrors.PreconditionError
	require.ErrorAs(t, err, &preErr)
}

func TestResultSourceUsesIndent(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()
	doc.Settings.Indent = 4
	result, err := NewService(nil, nil).Generate(context.Background(), doc)
	require.NoError(t, err)
	require.Contains(t, result.Source(), "\n    const SampleTexts({super.key});")

	var nilResult *Result
	require.Empty(t, nilResult.Source())
}

// Package codegen turns a parsed design document into a Dart source file.
package codegen

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/flutterbuild/internal/config"
	"github.com/alexisbeaulieu97/flutterbuild/internal/design"
	"github.com/alexisbeaulieu97/flutterbuild/internal/flutter"
	"github.com/alexisbeaulieu97/flutterbuild/internal/logger"
	"github.com/alexisbeaulieu97/flutterbuild/internal/maker"
	fberrors "github.com/alexisbeaulieu97/flutterbuild/pkg/errors"
)

const (
	defaultParallel = 4
	defaultIndent   = 2
)

// TextMaker converts a single text node into a widget.
type TextMaker interface {
	MakeText(node *design.TextNode) (*flutter.Text, error)
}

// Entry is one generated widget together with the node it came from.
type Entry struct {
	NodeID     string
	NodeName   string
	Widget     *flutter.Text
	Expression string
}

// Result is the outcome of generating a document.
type Result struct {
	File    flutter.File
	Entries []Entry
	Skipped []design.SceneNode
	Indent  int
}

// Source renders the Dart file.
func (r *Result) Source() string {
	if r == nil {
		return ""
	}
	return r.File.Render(r.Indent)
}

// Service coordinates translation of every text node in a document.
type Service struct {
	maker  TextMaker
	logger *logger.Logger
}

// NewService constructs a codegen service. A nil maker selects the default translator.
func NewService(m TextMaker, log *logger.Logger) *Service {
	if m == nil {
		m = maker.NewTranslator(log)
	}
	return &Service{maker: m, logger: log}
}

// Generate translates the document's text nodes in document order. Nodes are
// translated concurrently, bounded by settings.parallel.
func (s *Service) Generate(ctx context.Context, doc *config.Document) (*Result, error) {
	if doc == nil {
		return nil, fberrors.NewPreconditionError("generate", "document is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var texts []design.SceneNode
	result := &Result{
		File:   flutter.File{ClassName: doc.Settings.ClassName},
		Indent: doc.Settings.Indent,
	}
	if result.Indent <= 0 {
		result.Indent = defaultIndent
	}

	for _, node := range doc.SceneNodes() {
		if !node.IsText() {
			s.logger.WithFields(map[string]any{"node": node.ID, "type": string(node.Type)}).Debug("skipping non-text node")
			result.Skipped = append(result.Skipped, node)
			continue
		}
		texts = append(texts, node)
	}

	parallel := doc.Settings.Parallel
	if parallel <= 0 {
		parallel = defaultParallel
	}
	pool := make(chan struct{}, parallel)

	entries := make([]Entry, len(texts))
	var firstErr error
	var once sync.Once
	var wg sync.WaitGroup

	for idx, node := range texts {
		wg.Add(1)
		go func(idx int, node design.SceneNode) {
			defer wg.Done()

			select {
			case pool <- struct{}{}:
				defer func() { <-pool }()
			case <-ctx.Done():
				once.Do(func() { firstErr = fberrors.NewTranslationError(node.ID, ctx.Err()) })
				return
			}

			if err := ctx.Err(); err != nil {
				once.Do(func() { firstErr = fberrors.NewTranslationError(node.ID, err) })
				return
			}

			widget, err := s.maker.MakeText(node.Text)
			if err != nil {
				once.Do(func() {
					firstErr = fberrors.NewTranslationError(node.ID, err)
					cancel()
				})
				return
			}

			entries[idx] = Entry{
				NodeID:     node.ID,
				NodeName:   node.Name,
				Widget:     widget,
				Expression: widget.Expression(),
			}
		}(idx, node)
	}

	wg.Wait()

	if firstErr != nil {
		s.logger.Error(firstErr, "generation failed")
		return nil, firstErr
	}

	result.Entries = entries
	result.File.Widgets = make([]flutter.Widget, 0, len(entries))
	for _, entry := range entries {
		result.File.Widgets = append(result.File.Widgets, entry.Widget)
	}

	s.logger.WithFields(map[string]any{
		"document": doc.Name,
		"widgets":  len(entries),
		"skipped":  len(result.Skipped),
	}).Info(fmt.Sprintf("generated %d widgets", len(entries)))

	return result, nil
}

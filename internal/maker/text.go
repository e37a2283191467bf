// Package maker translates design nodes into Flutter widgets.
package maker

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/flutterbuild/internal/design"
	"github.com/alexisbeaulieu97/flutterbuild/internal/flutter"
	"github.com/alexisbeaulieu97/flutterbuild/internal/logger"
	fberrors "github.com/alexisbeaulieu97/flutterbuild/pkg/errors"
)

// Translator builds Text widgets from text nodes. It holds no per-call state
// and may be shared between goroutines.
type Translator struct {
	Styles StyleResolver
	Logger *logger.Logger
}

// NewTranslator returns a Translator using the default style resolver.
func NewTranslator(log *logger.Logger) *Translator {
	return &Translator{Styles: DefaultStyleResolver{}, Logger: log}
}

// MakeText converts a text node into a Text widget. Alignment is omitted when
// it resolves to left, which Flutter applies natively. A nil Translator
// behaves like the zero value.
func (t *Translator) MakeText(node *design.TextNode) (*flutter.Text, error) {
	if t == nil {
		t = &Translator{}
	}
	if node == nil {
		return nil, fberrors.NewPreconditionError("make text", "text node is nil")
	}

	var textAlign *flutter.TextAlign
	if align, ok := textAlignFor(node.TextAlignHorizontal); ok {
		textAlign = &align
	}

	text := ApplyTextCase(node.Characters, node.TextCase)
	escaped := EscapeDartString(text)

	if t.Logger.DebugEnabled() {
		t.Logger.WithFields(map[string]any{
			"node":     node.ID,
			"original": text,
			"escaped":  escaped,
		}).Debug("escaped text content")
	}

	var style *flutter.TextStyle
	if t.Styles != nil {
		style = t.Styles.ResolveStyle(node)
	}

	return &flutter.Text{
		Content: escaped,
		Align:   textAlign,
		Style:   style,
	}, nil
}

// NormalizeAlignment lowercases a horizontal alignment into Flutter's
// vocabulary. Unset maps to "left" and JUSTIFIED is renamed to "justify";
// anything else passes through lowercased.
func NormalizeAlignment(align design.TextAlignHorizontal) string {
	normalized := strings.ToLower(string(align))
	switch normalized {
	case "":
		return string(flutter.TextAlignLeft)
	case "justified":
		return string(flutter.TextAlignJustify)
	default:
		return normalized
	}
}

func textAlignFor(align design.TextAlignHorizontal) (flutter.TextAlign, bool) {
	normalized := NormalizeAlignment(align)
	if normalized == string(flutter.TextAlignLeft) {
		return "", false
	}
	return flutter.TextAlign(normalized), true
}

// ApplyTextCase applies the node's case transform to its characters. The
// case value is matched case-insensitively.
func ApplyTextCase(text string, textCase design.TextCase) string {
	switch design.TextCase(strings.ToUpper(string(textCase))) {
	case design.CaseUpper:
		return cases.Upper(language.Und).String(text)
	case design.CaseLower:
		return cases.Lower(language.Und).String(text)
	case design.CaseTitle:
		// TODO: title casing is not implemented; characters pass through unchanged.
		return text
	default:
		return text
	}
}

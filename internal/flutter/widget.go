// Package flutter holds the Flutter widget vocabulary emitted by the code
// generator and renders it as Dart source.
package flutter

import (
	"fmt"
	"strconv"
	"strings"
)

// Widget is anything that renders to a Dart widget-construction expression.
type Widget interface {
	Expression() string
}

// TextAlign mirrors Flutter's TextAlign enum. Values outside the known set are
// emitted as given.
type TextAlign string

const (
	TextAlignLeft    TextAlign = "left"
	TextAlignRight   TextAlign = "right"
	TextAlignCenter  TextAlign = "center"
	TextAlignJustify TextAlign = "justify"
	TextAlignStart   TextAlign = "start"
	TextAlignEnd     TextAlign = "end"
)

func (a TextAlign) String() string {
	return "TextAlign." + string(a)
}

// FontWeight is a numeric weight in the 100..900 range.
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

func (w FontWeight) String() string {
	return fmt.Sprintf("FontWeight.w%d", int(w))
}

// FontStyle mirrors Flutter's FontStyle enum.
type FontStyle string

const (
	FontStyleNormal FontStyle = "normal"
	FontStyleItalic FontStyle = "italic"
)

func (s FontStyle) String() string {
	return "FontStyle." + string(s)
}

// TextDecoration mirrors the constants on Flutter's TextDecoration class.
type TextDecoration string

const (
	TextDecorationNone        TextDecoration = "none"
	TextDecorationUnderline   TextDecoration = "underline"
	TextDecorationLineThrough TextDecoration = "lineThrough"
)

func (d TextDecoration) String() string {
	return "TextDecoration." + string(d)
}

// Color is a 32-bit ARGB value.
type Color uint32

// ColorFromRGBA builds a Color from channels in the [0,1] range.
func ColorFromRGBA(r, g, b, a float64) Color {
	return Color(channel(a)<<24 | channel(r)<<16 | channel(g)<<8 | channel(b))
}

func channel(v float64) uint32 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint32(v*255 + 0.5)
	}
}

func (c Color) String() string {
	return fmt.Sprintf("Color(0x%08X)", uint32(c))
}

// TextStyle is the subset of Flutter's TextStyle produced from design nodes.
// Zero-valued fields are omitted from the rendered expression.
type TextStyle struct {
	// FontFamily must already be escaped for a double-quoted Dart literal.
	FontFamily    string
	FontSize      float64
	FontWeight    FontWeight
	FontStyle     FontStyle
	Color         *Color
	Decoration    TextDecoration
	LetterSpacing float64
	// Height is the line height as a multiple of FontSize.
	Height float64
}

// IsZero reports whether the style sets nothing, in which case Text omits it.
func (s *TextStyle) IsZero() bool {
	return s == nil || *s == (TextStyle{})
}

// Expression renders the style constructor call.
func (s *TextStyle) Expression() string {
	if s == nil {
		return "TextStyle()"
	}

	var args []string
	if s.FontFamily != "" {
		args = append(args, `fontFamily: "`+s.FontFamily+`"`)
	}
	if s.FontSize > 0 {
		args = append(args, "fontSize: "+Number(s.FontSize))
	}
	if s.FontWeight != 0 {
		args = append(args, "fontWeight: "+s.FontWeight.String())
	}
	if s.FontStyle != "" {
		args = append(args, "fontStyle: "+s.FontStyle.String())
	}
	if s.Color != nil {
		args = append(args, "color: "+s.Color.String())
	}
	if s.Decoration != "" {
		args = append(args, "decoration: "+s.Decoration.String())
	}
	if s.LetterSpacing != 0 {
		args = append(args, "letterSpacing: "+Number(s.LetterSpacing))
	}
	if s.Height > 0 {
		args = append(args, "height: "+Number(s.Height))
	}

	return "TextStyle(" + strings.Join(args, ", ") + ")"
}

// Text is a Flutter Text widget. Content is the body of a double-quoted Dart
// string literal and must already be escaped. Align is nil when the default
// (left) alignment applies.
type Text struct {
	Content string
	Align   *TextAlign
	Style   *TextStyle
}

var _ Widget = (*Text)(nil)

// Expression renders the Text constructor call.
func (t *Text) Expression() string {
	if t == nil {
		return `Text("")`
	}

	var b strings.Builder
	b.WriteString(`Text("`)
	b.WriteString(t.Content)
	b.WriteString(`"`)
	if !t.Style.IsZero() {
		b.WriteString(", style: ")
		b.WriteString(t.Style.Expression())
	}
	if t.Align != nil {
		b.WriteString(", textAlign: ")
		b.WriteString(t.Align.String())
	}
	b.WriteString(")")
	return b.String()
}

// Number formats a float as the shortest Dart numeric literal.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package maker

import (
	"math"
	"strings"

	"github.com/alexisbeaulieu97/flutterbuild/internal/design"
	"github.com/alexisbeaulieu97/flutterbuild/internal/flutter"
)

// StyleResolver produces the style attached to a generated Text widget. The
// translator embeds the result without inspecting it.
type StyleResolver interface {
	ResolveStyle(node *design.TextNode) *flutter.TextStyle
}

// StyleResolverFunc adapts a function to StyleResolver.
type StyleResolverFunc func(node *design.TextNode) *flutter.TextStyle

// ResolveStyle calls f(node).
func (f StyleResolverFunc) ResolveStyle(node *design.TextNode) *flutter.TextStyle {
	return f(node)
}

// DefaultStyleResolver maps node typography onto a Flutter TextStyle.
type DefaultStyleResolver struct{}

var _ StyleResolver = DefaultStyleResolver{}

// ResolveStyle implements StyleResolver.
func (DefaultStyleResolver) ResolveStyle(node *design.TextNode) *flutter.TextStyle {
	if node == nil {
		return nil
	}

	style := &flutter.TextStyle{
		FontFamily: EscapeDartString(node.FontName.Family),
		FontSize:   node.FontSize,
		FontWeight: fontWeightFor(node.FontName.Style),
		Decoration: decorationFor(node.TextDecoration),
	}
	if isItalic(node.FontName.Style) {
		style.FontStyle = flutter.FontStyleItalic
	}
	if color, ok := textColor(node.Fills); ok {
		style.Color = &color
	}
	style.LetterSpacing = letterSpacing(node.LetterSpacing, node.FontSize)
	style.Height = lineHeight(node.LineHeight, node.FontSize)

	return style
}

// weightsByKeyword is checked in order; compound names come before the
// plain words they contain.
var weightsByKeyword = []struct {
	keywords []string
	weight   flutter.FontWeight
}{
	{[]string{"thin", "hairline"}, 100},
	{[]string{"extralight", "ultralight"}, 200},
	{[]string{"semibold", "demibold"}, 600},
	{[]string{"extrabold", "ultrabold"}, 800},
	{[]string{"black", "heavy"}, 900},
	{[]string{"light"}, 300},
	{[]string{"medium"}, 500},
	{[]string{"bold"}, flutter.FontWeightBold},
}

// fontWeightFor returns zero for regular weights so the attribute is omitted.
func fontWeightFor(styleName string) flutter.FontWeight {
	compact := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(styleName))
	for _, entry := range weightsByKeyword {
		for _, keyword := range entry.keywords {
			if strings.Contains(compact, keyword) {
				return entry.weight
			}
		}
	}
	return 0
}

func isItalic(styleName string) bool {
	lower := strings.ToLower(styleName)
	return strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
}

func decorationFor(decoration design.TextDecoration) flutter.TextDecoration {
	switch decoration {
	case design.DecorationUnderline:
		return flutter.TextDecorationUnderline
	case design.DecorationStrikethrough:
		return flutter.TextDecorationLineThrough
	default:
		return ""
	}
}

// textColor picks the first fill that is not fully transparent.
func textColor(fills []design.Color) (flutter.Color, bool) {
	for _, fill := range fills {
		if fill.A > 0 {
			return flutter.ColorFromRGBA(fill.R, fill.G, fill.B, fill.A), true
		}
	}
	return 0, false
}

func letterSpacing(spacing design.LetterSpacing, fontSize float64) float64 {
	switch spacing.Unit {
	case design.UnitPixels:
		return round(spacing.Value)
	case design.UnitPercent:
		return round(spacing.Value / 100 * fontSize)
	default:
		return 0
	}
}

// lineHeight expresses the design line height as a multiple of the font size.
func lineHeight(height design.LineHeight, fontSize float64) float64 {
	switch height.Unit {
	case design.UnitPixels:
		if fontSize <= 0 {
			return 0
		}
		return round(height.Value / fontSize)
	case design.UnitPercent:
		return round(height.Value / 100)
	default:
		return 0
	}
}

func round(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

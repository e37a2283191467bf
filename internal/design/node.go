// Package design models the nodes exported from a design document. Values are
// read-only once constructed; translators never mutate them.
package design

// TextAlignHorizontal is the horizontal alignment reported for a text layer.
// The zero value means the attribute was not set.
type TextAlignHorizontal string

const (
	AlignLeft      TextAlignHorizontal = "LEFT"
	AlignRight     TextAlignHorizontal = "RIGHT"
	AlignCenter    TextAlignHorizontal = "CENTER"
	AlignJustified TextAlignHorizontal = "JUSTIFIED"
)

// TextCase is the case transform applied to a text layer's characters.
type TextCase string

const (
	CaseOriginal TextCase = "ORIGINAL"
	CaseUpper    TextCase = "UPPER"
	CaseLower    TextCase = "LOWER"
	CaseTitle    TextCase = "TITLE"
)

// TextDecoration is the line decoration drawn with the text.
type TextDecoration string

const (
	DecorationNone          TextDecoration = "NONE"
	DecorationUnderline     TextDecoration = "UNDERLINE"
	DecorationStrikethrough TextDecoration = "STRIKETHROUGH"
)

// Unit qualifies numeric typography values.
type Unit string

const (
	UnitAuto    Unit = "AUTO"
	UnitPixels  Unit = "PIXELS"
	UnitPercent Unit = "PERCENT"
)

// FontName identifies a font face by family and style name, e.g. Roboto / Bold Italic.
type FontName struct {
	Family string
	Style  string
}

// Color is an RGBA colour with channels in the [0,1] range.
type Color struct {
	R, G, B, A float64
}

// LineHeight is either AUTO or a pixel/percent value.
type LineHeight struct {
	Unit  Unit
	Value float64
}

// LetterSpacing is a pixel or percent (of font size) value.
type LetterSpacing struct {
	Unit  Unit
	Value float64
}

// TextNode is a text layer from the design tree.
type TextNode struct {
	ID                  string
	Name                string
	Characters          string
	TextAlignHorizontal TextAlignHorizontal
	TextCase            TextCase
	FontName            FontName
	FontSize            float64
	// Fills are ordered bottom to top; the first one is used as the text colour.
	Fills          []Color
	TextDecoration TextDecoration
	LineHeight     LineHeight
	LetterSpacing  LetterSpacing
}

// SceneNodeType is the kind of a node in the design tree.
type SceneNodeType string

const (
	NodeText         SceneNodeType = "TEXT"
	NodeFrame        SceneNodeType = "FRAME"
	NodeGroup        SceneNodeType = "GROUP"
	NodeComponent    SceneNodeType = "COMPONENT"
	NodeComponentSet SceneNodeType = "COMPONENT_SET"
	NodeInstance     SceneNodeType = "INSTANCE"
)

// SceneNode is any node in the design tree. Text is set only for TEXT nodes.
type SceneNode struct {
	ID   string
	Name string
	Type SceneNodeType
	Text *TextNode
}

// IsText reports whether the node carries text content.
func (n SceneNode) IsText() bool {
	return n.Type == NodeText && n.Text != nil
}

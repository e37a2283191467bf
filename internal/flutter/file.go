package flutter

import (
	"strings"
)

// GeneratedHeader marks files written by flutterbuild.
const GeneratedHeader = "// Code generated by flutterbuild. DO NOT EDIT."

// DefaultClassName is used when a document does not name its widget class.
const DefaultClassName = "GeneratedTexts"

// File is a Dart source file exposing one StatelessWidget that lays the
// generated widgets out in a Column.
type File struct {
	ClassName string
	Widgets   []Widget
}

// Render returns the Dart source for the file using the given indent width.
func (f File) Render(indent int) string {
	if indent <= 0 {
		indent = 2
	}
	className := f.ClassName
	if className == "" {
		className = DefaultClassName
	}

	pad := func(level int) string {
		return strings.Repeat(" ", indent*level)
	}

	var b strings.Builder
	line := func(level int, s string) {
		if s != "" {
			b.WriteString(pad(level))
			b.WriteString(s)
		}
		b.WriteString("\n")
	}

	line(0, GeneratedHeader)
	line(0, "")
	line(0, "import 'package:flutter/material.dart';")
	line(0, "")
	line(0, "class "+className+" extends StatelessWidget {")
	line(1, "const "+className+"({super.key});")
	line(0, "")
	line(1, "@override")
	line(1, "Widget build(BuildContext context) {")
	line(2, "return Column(")
	line(3, "crossAxisAlignment: CrossAxisAlignment.start,")
	line(3, "children: <Widget>[")
	for _, w := range f.Widgets {
		if w == nil {
			continue
		}
		line(4, w.Expression()+",")
	}
	line(3, "],")
	line(2, ");")
	line(1, "}")
	line(0, "}")

	return b.String()
}

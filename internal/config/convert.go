package config

import (
	"github.com/alexisbeaulieu97/flutterbuild/internal/design"
)

func nodeType(node Node) design.SceneNodeType {
	if node.Type == "" {
		return design.NodeText
	}
	return design.SceneNodeType(canonical(node.Type))
}

// SceneNodes converts the document nodes into design nodes with canonical
// enum values. Order is preserved.
func (d *Document) SceneNodes() []design.SceneNode {
	if d == nil {
		return nil
	}

	nodes := make([]design.SceneNode, 0, len(d.Nodes))
	for _, node := range d.Nodes {
		scene := design.SceneNode{
			ID:   node.ID,
			Name: node.Name,
			Type: nodeType(node),
		}
		if scene.Type == design.NodeText && node.Characters != nil {
			scene.Text = node.textNode()
		}
		nodes = append(nodes, scene)
	}
	return nodes
}

func (n Node) textNode() *design.TextNode {
	text := &design.TextNode{
		ID:                  n.ID,
		Name:                n.Name,
		Characters:          *n.Characters,
		TextAlignHorizontal: design.TextAlignHorizontal(canonical(n.TextAlignHorizontal)),
		TextCase:            design.TextCase(canonical(n.TextCase)),
		TextDecoration:      design.TextDecoration(canonical(n.TextDecoration)),
		FontName:            design.FontName{Family: n.Font.Family, Style: n.Font.Style},
		FontSize:            n.FontSize,
	}
	if text.TextCase == "" {
		text.TextCase = design.CaseOriginal
	}

	for _, fill := range n.Fills {
		alpha := 1.0
		if fill.A != nil {
			alpha = *fill.A
		}
		text.Fills = append(text.Fills, design.Color{R: fill.R, G: fill.G, B: fill.B, A: alpha})
	}

	if n.LineHeight != nil {
		text.LineHeight = design.LineHeight{Unit: design.Unit(canonical(n.LineHeight.Unit)), Value: n.LineHeight.Value}
	}
	if n.LetterSpacing != nil {
		text.LetterSpacing = design.LetterSpacing{Unit: design.Unit(canonical(n.LetterSpacing.Unit)), Value: n.LetterSpacing.Value}
	}

	return text
}

package design

// EditorMode is the schema editing mode derived from the current selection.
type EditorMode string

const (
	ModeNoSelection         EditorMode = "no-selection"
	ModeSingleLayerProperty EditorMode = "single-layer-property"
	ModeMasterComponent     EditorMode = "master-component"
	ModeMasterVariantSet    EditorMode = "master-variant-set"
	ModeInstance            EditorMode = "instance"
)

// AnalyzeSelection classifies a selected node. Components, variant sets and
// instances get their own modes; every other layer is edited as a single
// layer property.
func AnalyzeSelection(node *SceneNode) EditorMode {
	if node == nil {
		return ModeNoSelection
	}

	switch node.Type {
	case NodeComponent:
		return ModeMasterComponent
	case NodeComponentSet:
		return ModeMasterVariantSet
	case NodeInstance:
		return ModeInstance
	default:
		return ModeSingleLayerProperty
	}
}

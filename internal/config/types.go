package config

// Document is a design export handed to flutterbuild: a flat list of nodes
// plus generation settings.
type Document struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Settings    Settings `yaml:"settings,omitempty"`
	Nodes       []Node   `yaml:"nodes" validate:"required,min=1,dive"`
}

// Settings holds generation parameters.
type Settings struct {
	ClassName string `yaml:"class_name,omitempty" validate:"omitempty,dart_class"`
	Indent    int    `yaml:"indent,omitempty" validate:"omitempty,min=1,max=8"`
	Parallel  int    `yaml:"parallel,omitempty" validate:"omitempty,min=1,max=32"`
}

// Node describes one design node. Text attributes are only read for TEXT
// nodes. A missing type means TEXT.
type Node struct {
	ID   string `yaml:"id" validate:"required,node_id"`
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type,omitempty" validate:"omitempty,node_type"`

	// Characters is a pointer so an absent value can be told apart from "".
	Characters          *string  `yaml:"characters,omitempty"`
	TextAlignHorizontal string   `yaml:"text_align_horizontal,omitempty" validate:"omitempty,text_align"`
	TextCase            string   `yaml:"text_case,omitempty" validate:"omitempty,text_case"`
	TextDecoration      string   `yaml:"text_decoration,omitempty" validate:"omitempty,text_decoration"`
	Font                Font     `yaml:"font,omitempty"`
	FontSize            float64  `yaml:"font_size,omitempty" validate:"omitempty,finite,gt=0"`
	Fills               []Fill   `yaml:"fills,omitempty" validate:"omitempty,dive"`
	LineHeight          *Measure `yaml:"line_height,omitempty"`
	LetterSpacing       *Measure `yaml:"letter_spacing,omitempty"`
}

// Font names a font face.
type Font struct {
	Family string `yaml:"family,omitempty"`
	Style  string `yaml:"style,omitempty"`
}

// Fill is a solid colour; channels are in [0,1] and alpha defaults to 1.
type Fill struct {
	R float64  `yaml:"r" validate:"finite,min=0,max=1"`
	G float64  `yaml:"g" validate:"finite,min=0,max=1"`
	B float64  `yaml:"b" validate:"finite,min=0,max=1"`
	A *float64 `yaml:"a,omitempty" validate:"omitempty,finite,min=0,max=1"`
}

// Measure is a typography value with its unit.
type Measure struct {
	Unit  string  `yaml:"unit" validate:"required,measure_unit"`
	Value float64 `yaml:"value,omitempty" validate:"finite"`
}

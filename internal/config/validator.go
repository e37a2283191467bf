package config

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/flutterbuild/internal/design"
	fberrors "github.com/alexisbeaulieu97/flutterbuild/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	nodeIDPattern    = regexp.MustCompile(`^[A-Za-z0-9:;_-]+$`)
	dartClassPattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

	nodeTypes = enumSet(design.NodeText, design.NodeFrame, design.NodeGroup,
		design.NodeComponent, design.NodeComponentSet, design.NodeInstance)
	textAligns      = enumSet(design.AlignLeft, design.AlignRight, design.AlignCenter, design.AlignJustified)
	textCases       = enumSet(design.CaseOriginal, design.CaseUpper, design.CaseLower, design.CaseTitle)
	textDecorations = enumSet(design.DecorationNone, design.DecorationUnderline, design.DecorationStrikethrough)
	measureUnits    = enumSet(design.UnitAuto, design.UnitPixels, design.UnitPercent)
)

func enumSet[T ~string](values ...T) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[string(v)] = struct{}{}
	}
	return set
}

// oneOfFold matches enum values case-insensitively against their canonical upper-case form.
func oneOfFold(set map[string]struct{}) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, ok := set[canonical(fl.Field().String())]
		return ok
	}
}

func canonical(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report yaml names so errors point at the document keys.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("node_id", func(fl validator.FieldLevel) bool {
			return nodeIDPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("dart_class", func(fl validator.FieldLevel) bool {
			return dartClassPattern.MatchString(fl.Field().String())
		})
		// Dart has no literal for NaN or infinity.
		_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})
		_ = v.RegisterValidation("node_type", oneOfFold(nodeTypes))
		_ = v.RegisterValidation("text_align", oneOfFold(textAligns))
		_ = v.RegisterValidation("text_case", oneOfFold(textCases))
		_ = v.RegisterValidation("text_decoration", oneOfFold(textDecorations))
		_ = v.RegisterValidation("measure_unit", oneOfFold(measureUnits))

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on the document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fberrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Nodes))
	for i, node := range doc.Nodes {
		if first, exists := seen[node.ID]; exists {
			return fberrors.NewValidationError(fieldForNode(i, "id"),
				fmt.Sprintf("duplicate node id %q (first used by nodes[%d])", node.ID, first), nil)
		}
		seen[node.ID] = i

		if nodeType(node) == design.NodeText && node.Characters == nil {
			return fberrors.NewValidationError(fieldForNode(i, "characters"), "is required for TEXT nodes", nil)
		}
	}

	return nil
}
